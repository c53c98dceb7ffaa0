package output

import (
	"fmt"
	"io"

	"github.com/lox/cardrace/internal/game"
)

// Announcer prints the single console win line the moment the winner
// claims the game. Every other event is file-only.
type Announcer struct {
	W io.Writer
}

// OnEvent implements game.EventSink.
func (a Announcer) OnEvent(ev game.Event) {
	if ev.Type != game.EventTypeWin {
		return
	}
	fmt.Fprintf(a.W, "player %d wins\n", ev.Player)
}
