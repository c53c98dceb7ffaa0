// Package stats aggregates the outcome of a finished game.
package stats

import (
	"fmt"
	"time"

	"github.com/lox/cardrace/internal/deck"
)

// PlayerResult summarises one player's run.
type PlayerResult struct {
	ID        int
	Turns     int // turns taken, counting skips
	Draws     int // turns that moved a card
	Skips     int // turns that found the draw deck empty
	Won       bool
	FinalHand []deck.Card
}

// Run holds the aggregate outcome of a game, assembled after every
// player has joined.
type Run struct {
	Players   []PlayerResult
	Winner    int
	Duration  time.Duration
	DeckCards int // cards left across all decks
}

// TotalCards counts every card across final hands and decks.
func (r *Run) TotalCards() int {
	total := r.DeckCards
	for _, p := range r.Players {
		total += len(p.FinalHand)
	}
	return total
}

// TotalTurns sums turns across all players.
func (r *Run) TotalTurns() int {
	total := 0
	for _, p := range r.Players {
		total += p.Turns
	}
	return total
}

// TurnsPerSecond returns the run's turn throughput.
func (r *Run) TurnsPerSecond() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.TotalTurns()) / r.Duration.Seconds()
}

// Validate checks the run for outcomes the game rules make
// impossible: cards must be conserved, exactly one player may win and
// the recorded winner must be one of the players.
func (r *Run) Validate(expectedCards int) error {
	if got := r.TotalCards(); got != expectedCards {
		return fmt.Errorf("stats: %d cards at end of game, expected %d", got, expectedCards)
	}
	winners := 0
	for _, p := range r.Players {
		if p.Won {
			winners++
		}
	}
	if winners != 1 {
		return fmt.Errorf("stats: %d winners, expected exactly one", winners)
	}
	if r.Winner < 1 || r.Winner > len(r.Players) {
		return fmt.Errorf("stats: winner %d is not a player id", r.Winner)
	}
	return nil
}
