package deck

import (
	"fmt"
	"sync"
)

// Deck is a FIFO pile of cards shared between two players: one draws
// from the front while the other discards to the back. Every method
// takes the deck's mutex; the compound draw+discard step in the game
// package holds two decks at once via LockPair instead.
type Deck struct {
	id    int
	mu    sync.Mutex
	cards []Card
}

// New creates an empty deck. Ids are positive and unique within a
// game; LockPair relies on them for its lock ordering.
func New(id int) *Deck {
	if id < 1 {
		panic(fmt.Sprintf("deck: invalid deck id %d", id))
	}
	return &Deck{id: id}
}

// ID returns the deck's identity.
func (d *Deck) ID() int {
	return d.id
}

// Draw removes and returns the front card. It returns false when the
// deck is empty; it never blocks waiting for a card to arrive.
func (d *Deck) Draw() (Card, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.draw()
}

// Append adds a card to the back of the deck.
func (d *Deck) Append(c Card) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.append(c)
}

// Size returns the number of cards currently in the deck.
func (d *Deck) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.cards)
}

// Snapshot returns a copy of the deck's contents in draw order. The
// copy is independent of any later mutation.
func (d *Deck) Snapshot() []Card {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// draw and append are the lock-free internals shared with Pair, which
// holds the mutex across a whole compound operation.

func (d *Deck) draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, true
}

func (d *Deck) append(c Card) {
	d.cards = append(d.cards, c)
}
