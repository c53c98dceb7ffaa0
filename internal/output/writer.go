// Package output renders game events into the per-player and per-deck
// result files.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/lox/cardrace/internal/deck"
	"github.com/lox/cardrace/internal/fileutil"
	"github.com/lox/cardrace/internal/game"
)

// GameWriter appends each player's events to player<N>_output.txt in
// the output directory, one line per event as it happens. A write
// failure loses that line only and is logged; output problems never
// stop the game itself.
type GameWriter struct {
	dir    string
	logger *log.Logger

	mu    sync.Mutex
	files map[int]*os.File
}

// NewGameWriter creates the output directory if needed and returns a
// writer for it.
func NewGameWriter(dir string, logger *log.Logger) (*GameWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("output: create %s: %w", dir, err)
	}
	return &GameWriter{
		dir:    dir,
		logger: logger.WithPrefix("output"),
		files:  make(map[int]*os.File),
	}, nil
}

// OnEvent implements game.EventSink.
func (w *GameWriter) OnEvent(ev game.Event) {
	line, ok := Line(ev)
	if !ok {
		return
	}
	f, err := w.file(ev.Player)
	if err != nil {
		w.logger.Error("opening player output file", "player", ev.Player, "error", err)
		return
	}
	if _, err := fmt.Fprintln(f, line); err != nil {
		w.logger.Error("writing player output", "player", ev.Player, "event", ev.Type, "error", err)
	}
}

// file returns the player's open output file, creating it on first
// use. Events for one player always come from one goroutine, but
// different players share the map.
func (w *GameWriter) file(player int) (*os.File, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if f, ok := w.files[player]; ok {
		return f, nil
	}
	path := filepath.Join(w.dir, fmt.Sprintf("player%d_output.txt", player))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	w.files[player] = f
	return f, nil
}

// Close closes every player file. The writer is done once the game
// has joined.
func (w *GameWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	var first error
	for _, f := range w.files {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}
	w.files = make(map[int]*os.File)
	return first
}

// Line renders an event as its player log line. ok is false for
// events that have no line of their own.
func Line(ev game.Event) (string, bool) {
	switch ev.Type {
	case game.EventTypeInitialHand:
		return fmt.Sprintf("player %d initial hand %s", ev.Player, deck.Format(ev.Hand)), true
	case game.EventTypeDraw:
		return fmt.Sprintf("player %d draws a %s from deck %d", ev.Player, ev.Card, ev.Deck), true
	case game.EventTypeDiscard:
		return fmt.Sprintf("player %d discards a %s to deck %d", ev.Player, ev.Card, ev.Deck), true
	case game.EventTypeHand:
		return fmt.Sprintf("player %d current hand is %s", ev.Player, deck.Format(ev.Hand)), true
	case game.EventTypeWin:
		return fmt.Sprintf("player %d wins", ev.Player), true
	case game.EventTypeInformed:
		return fmt.Sprintf("player %d has informed player %d that player %d has won", ev.Winner, ev.Player, ev.Winner), true
	case game.EventTypeExit:
		return fmt.Sprintf("player %d exits", ev.Player), true
	case game.EventTypeFinalHand:
		if ev.Won {
			return fmt.Sprintf("player %d final hand: %s", ev.Player, deck.Format(ev.Hand)), true
		}
		return fmt.Sprintf("player %d hand: %s", ev.Player, deck.Format(ev.Hand)), true
	}
	return "", false
}

// WriteDeck stores a deck's final contents as deck<D>_output.txt in
// dir, written atomically after the game has joined.
func WriteDeck(dir string, d *deck.Deck) error {
	var b strings.Builder
	fmt.Fprintf(&b, "deck %d contents:", d.ID())
	for _, c := range d.Snapshot() {
		fmt.Fprintf(&b, " %s", c)
	}
	b.WriteByte('\n')

	path := filepath.Join(dir, fmt.Sprintf("deck%d_output.txt", d.ID()))
	if err := fileutil.WriteFileAtomic(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("output: deck %d: %w", d.ID(), err)
	}
	return nil
}
