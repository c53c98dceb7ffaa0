package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "initial_hand", EventTypeInitialHand.String())
	assert.Equal(t, "win", EventTypeWin.String())
}

func TestMultiSinkFansOut(t *testing.T) {
	t.Parallel()

	a := &captureSink{}
	b := &captureSink{}
	sink := MultiSink(a, b)

	sink.OnEvent(Event{Type: EventTypeWin, Player: 2})
	sink.OnEvent(Event{Type: EventTypeExit, Player: 2})

	assert.Len(t, a.forPlayer(2), 2)
	assert.Len(t, b.forPlayer(2), 2)
	assert.Equal(t, a.forPlayer(2), b.forPlayer(2))
}

func TestNopSink(t *testing.T) {
	t.Parallel()

	// Just must not panic.
	NopSink{}.OnEvent(Event{Type: EventTypeDraw})
}
