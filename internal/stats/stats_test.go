package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/cardrace/internal/deck"
)

func hand(values ...int) []deck.Card {
	cards := make([]deck.Card, len(values))
	for i, v := range values {
		cards[i] = deck.NewCard(v)
	}
	return cards
}

func validRun() *Run {
	return &Run{
		Players: []PlayerResult{
			{ID: 1, Turns: 10, Draws: 8, Skips: 2, Won: true, FinalHand: hand(1, 1, 1, 1)},
			{ID: 2, Turns: 9, Draws: 9, Won: false, FinalHand: hand(2, 3, 2, 2)},
		},
		Winner:    1,
		Duration:  2 * time.Second,
		DeckCards: 8,
	}
}

func TestRunTotals(t *testing.T) {
	t.Parallel()

	r := validRun()
	assert.Equal(t, 16, r.TotalCards())
	assert.Equal(t, 19, r.TotalTurns())
	assert.InDelta(t, 9.5, r.TurnsPerSecond(), 0.001)
}

func TestTurnsPerSecondZeroDuration(t *testing.T) {
	t.Parallel()

	r := validRun()
	r.Duration = 0
	assert.Zero(t, r.TurnsPerSecond())
}

func TestRunValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Run)
		wantErr string
	}{
		{
			name:   "valid run",
			mutate: func(*Run) {},
		},
		{
			name:    "lost card",
			mutate:  func(r *Run) { r.DeckCards = 7 },
			wantErr: "15 cards",
		},
		{
			name:    "conjured card",
			mutate:  func(r *Run) { r.DeckCards = 9 },
			wantErr: "17 cards",
		},
		{
			name:    "no winner",
			mutate:  func(r *Run) { r.Players[0].Won = false },
			wantErr: "0 winners",
		},
		{
			name: "two winners",
			mutate: func(r *Run) {
				r.Players[1].Won = true
			},
			wantErr: "2 winners",
		},
		{
			name:    "winner id out of range",
			mutate:  func(r *Run) { r.Winner = 5 },
			wantErr: "not a player",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := validRun()
			tt.mutate(r)
			err := r.Validate(16)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
