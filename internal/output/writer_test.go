package output

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/cardrace/internal/deck"
	"github.com/lox/cardrace/internal/game"
)

func hand(values ...int) []deck.Card {
	cards := make([]deck.Card, len(values))
	for i, v := range values {
		cards[i] = deck.NewCard(v)
	}
	return cards
}

func TestLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ev   game.Event
		want string
	}{
		{
			name: "initial hand",
			ev:   game.Event{Type: game.EventTypeInitialHand, Player: 1, Hand: hand(1, 2, 3, 4)},
			want: "player 1 initial hand 1 2 3 4",
		},
		{
			name: "draw",
			ev:   game.Event{Type: game.EventTypeDraw, Player: 2, Card: deck.NewCard(5), Deck: 2},
			want: "player 2 draws a 5 from deck 2",
		},
		{
			name: "discard",
			ev:   game.Event{Type: game.EventTypeDiscard, Player: 2, Card: deck.NewCard(9), Deck: 3},
			want: "player 2 discards a 9 to deck 3",
		},
		{
			name: "current hand",
			ev:   game.Event{Type: game.EventTypeHand, Player: 2, Hand: hand(2, 2, 5, 2)},
			want: "player 2 current hand is 2 2 5 2",
		},
		{
			name: "win",
			ev:   game.Event{Type: game.EventTypeWin, Player: 3, Winner: 3, Won: true},
			want: "player 3 wins",
		},
		{
			name: "informed",
			ev:   game.Event{Type: game.EventTypeInformed, Player: 1, Winner: 2},
			want: "player 2 has informed player 1 that player 2 has won",
		},
		{
			name: "exit",
			ev:   game.Event{Type: game.EventTypeExit, Player: 4},
			want: "player 4 exits",
		},
		{
			name: "winner final hand",
			ev:   game.Event{Type: game.EventTypeFinalHand, Player: 3, Hand: hand(3, 3, 3, 3), Won: true},
			want: "player 3 final hand: 3 3 3 3",
		},
		{
			name: "loser final hand",
			ev:   game.Event{Type: game.EventTypeFinalHand, Player: 1, Hand: hand(1, 2, 3, 4)},
			want: "player 1 hand: 1 2 3 4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			line, ok := Line(tt.ev)
			require.True(t, ok)
			assert.Equal(t, tt.want, line)
		})
	}
}

func TestGameWriterWritesPlayerFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w, err := NewGameWriter(dir, testLogger())
	require.NoError(t, err)

	w.OnEvent(game.Event{Type: game.EventTypeInitialHand, Player: 1, Hand: hand(1, 2, 3, 4)})
	w.OnEvent(game.Event{Type: game.EventTypeDraw, Player: 1, Card: deck.NewCard(1), Deck: 1})
	w.OnEvent(game.Event{Type: game.EventTypeDiscard, Player: 1, Card: deck.NewCard(2), Deck: 2})
	w.OnEvent(game.Event{Type: game.EventTypeHand, Player: 1, Hand: hand(1, 1, 3, 4)})
	w.OnEvent(game.Event{Type: game.EventTypeInformed, Player: 2, Winner: 1})
	require.NoError(t, w.Close())

	got, err := os.ReadFile(filepath.Join(dir, "player1_output.txt"))
	require.NoError(t, err)
	want := "player 1 initial hand 1 2 3 4\n" +
		"player 1 draws a 1 from deck 1\n" +
		"player 1 discards a 2 to deck 2\n" +
		"player 1 current hand is 1 1 3 4\n"
	assert.Equal(t, want, string(got))

	got, err = os.ReadFile(filepath.Join(dir, "player2_output.txt"))
	require.NoError(t, err)
	assert.Equal(t, "player 1 has informed player 2 that player 1 has won\n", string(got))
}

func TestGameWriterCreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "results", "run1")
	w, err := NewGameWriter(dir, testLogger())
	require.NoError(t, err)
	defer w.Close()

	w.OnEvent(game.Event{Type: game.EventTypeExit, Player: 1})
	require.NoError(t, w.Close())

	got, err := os.ReadFile(filepath.Join(dir, "player1_output.txt"))
	require.NoError(t, err)
	assert.Equal(t, "player 1 exits\n", string(got))
}

func TestGameWriterTruncatesPreviousRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "player1_output.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale lines from last run\n"), 0o644))

	w, err := NewGameWriter(dir, testLogger())
	require.NoError(t, err)
	w.OnEvent(game.Event{Type: game.EventTypeExit, Player: 1})
	require.NoError(t, w.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "player 1 exits\n", string(got))
}

func TestWriteDeck(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	d := deck.New(1)
	d.Append(deck.NewCard(9))
	d.Append(deck.NewCard(8))
	d.Append(deck.NewCard(7))
	require.NoError(t, WriteDeck(dir, d))

	got, err := os.ReadFile(filepath.Join(dir, "deck1_output.txt"))
	require.NoError(t, err)
	assert.Equal(t, "deck 1 contents: 9 8 7\n", string(got))
}

func TestWriteDeckEmpty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, WriteDeck(dir, deck.New(2)))

	got, err := os.ReadFile(filepath.Join(dir, "deck2_output.txt"))
	require.NoError(t, err)
	assert.Equal(t, "deck 2 contents:\n", string(got))
}

func TestAnnouncerPrintsWinOnly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	a := Announcer{W: &buf}

	a.OnEvent(game.Event{Type: game.EventTypeInitialHand, Player: 1, Hand: hand(1, 2, 3, 4)})
	a.OnEvent(game.Event{Type: game.EventTypeDraw, Player: 1, Card: deck.NewCard(1), Deck: 1})
	a.OnEvent(game.Event{Type: game.EventTypeWin, Player: 2, Winner: 2, Won: true})
	a.OnEvent(game.Event{Type: game.EventTypeExit, Player: 2})

	assert.Equal(t, "player 2 wins\n", buf.String())
}

func testLogger() *log.Logger {
	return log.New(io.Discard)
}
