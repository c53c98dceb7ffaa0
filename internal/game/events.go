package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/lox/cardrace/internal/deck"
)

// EventType identifies a lifecycle event in a player's game log.
type EventType string

// EventType constants for the events every player produces, in the
// order they can appear: an initial hand, any number of
// draw/discard/hand triples, exactly one of win or informed, then
// exit and final hand.
const (
	EventTypeInitialHand EventType = "initial_hand"
	EventTypeDraw        EventType = "draw"
	EventTypeDiscard     EventType = "discard"
	EventTypeHand        EventType = "hand"
	EventTypeWin         EventType = "win"
	EventTypeInformed    EventType = "informed"
	EventTypeExit        EventType = "exit"
	EventTypeFinalHand   EventType = "final_hand"
)

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}

// Event records a single observable action by a player. Events are
// emitted the moment the action happens, never batched, and always
// outside any deck lock.
type Event struct {
	ID     uuid.UUID
	Type   EventType
	Player int         // player the event belongs to
	Card   deck.Card   // card moved, for draw and discard
	Deck   int         // deck drawn from or discarded to
	Hand   []deck.Card // hand snapshot, for hand events
	Winner int         // winning player, once known
	Won    bool        // whether Player is the winner
	Time   time.Time
}

// EventSink receives events as they happen. A sink must tolerate
// concurrent calls for different players; events for any one player
// arrive in order from that player's goroutine.
type EventSink interface {
	OnEvent(Event)
}

// NopSink discards all events.
type NopSink struct{}

// OnEvent implements EventSink.
func (NopSink) OnEvent(Event) {}

// MultiSink fans each event out to every sink, in order.
func MultiSink(sinks ...EventSink) EventSink {
	return multiSink(sinks)
}

type multiSink []EventSink

func (m multiSink) OnEvent(ev Event) {
	for _, s := range m {
		s.OnEvent(ev)
	}
}
