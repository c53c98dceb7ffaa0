// Package tui provides the interactive prompt that collects the game
// parameters the flags and config file left unset.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/cardrace/internal/pack"
)

// ErrAborted is returned when the user quits the setup prompt.
var ErrAborted = errors.New("setup aborted")

type step int

const (
	stepPlayers step = iota
	stepPack
	stepDone
)

// Model is the Bubble Tea model for the setup prompt. It asks for the
// number of players, then for a pack file, and re-prompts with an
// inline error until both answers are usable.
type Model struct {
	input textinput.Model
	step  step

	players  int
	packFile string
	errMsg   string
	aborted  bool
}

// NewModel creates the setup model, prefilled with any values already
// known.
func NewModel(players int, packFile string) Model {
	ti := textinput.New()
	ti.Placeholder = "4"
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 48
	ti.Prompt = "> "
	if players > 0 {
		ti.SetValue(strconv.Itoa(players))
	}
	return Model{
		input:    ti,
		step:     stepPlayers,
		packFile: packFile,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit validates the current answer and advances to the next step,
// or records an inline error and stays.
func (m Model) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.step {
	case stepPlayers:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			m.errMsg = fmt.Sprintf("%q is not a valid number of players", value)
			return m, nil
		}
		m.players = n
		m.errMsg = ""
		m.step = stepPack
		m.input.SetValue(m.packFile)
		m.input.Placeholder = "pack.txt"
		return m, nil

	case stepPack:
		if _, err := pack.Load(value, m.players); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.packFile = value
		m.errMsg = ""
		m.step = stepDone
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("cardrace setup"))
	b.WriteString("\n\n")

	switch m.step {
	case stepPlayers:
		b.WriteString(labelStyle.Render("Number of players"))
	case stepPack:
		b.WriteString(labelStyle.Render(fmt.Sprintf("Pack file for %d players", m.players)))
	case stepDone:
		return ""
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter to confirm · esc to quit"))
	b.WriteString("\n")
	return b.String()
}

// Players returns the confirmed player count.
func (m Model) Players() int { return m.players }

// PackFile returns the confirmed pack file path.
func (m Model) PackFile() string { return m.packFile }

// Configure runs the setup prompt and returns the chosen player count
// and pack file. Values passed in are offered as prefilled answers.
func Configure(players int, packFile string) (int, string, error) {
	final, err := tea.NewProgram(NewModel(players, packFile)).Run()
	if err != nil {
		return 0, "", fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return 0, "", fmt.Errorf("tui: unexpected model %T", final)
	}
	if m.aborted || m.step != stepDone {
		return 0, "", ErrAborted
	}
	return m.players, m.packFile, nil
}
