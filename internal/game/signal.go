package game

import "sync/atomic"

// WinnerSignal coordinates the end of a game. The first player to
// claim it becomes the sole winner; everyone else observes the
// outcome.
//
// The flag is a compare-and-swap cell, so exactly one claim succeeds
// no matter how many players complete a hand in the same instant. The
// winner id is stored before done is closed and only read after done
// is observed closed, so a player that sees the game finished always
// sees who won.
type WinnerSignal struct {
	won    atomic.Bool
	winner atomic.Int64
	done   chan struct{}
}

// NewWinnerSignal returns a signal with no winner claimed.
func NewWinnerSignal() *WinnerSignal {
	return &WinnerSignal{done: make(chan struct{})}
}

// Claim attempts to end the game with player id as the winner. It
// returns true for exactly one caller per game.
func (s *WinnerSignal) Claim(id int) bool {
	if !s.won.CompareAndSwap(false, true) {
		return false
	}
	s.winner.Store(int64(id))
	close(s.done)
	return true
}

// Finished reports whether a winner has been declared.
func (s *WinnerSignal) Finished() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Done returns a channel that is closed when the game ends. Players
// select on it to cut their pacing delay short.
func (s *WinnerSignal) Done() <-chan struct{} {
	return s.done
}

// Winner returns the winning player id. ok is false until a claim has
// completed.
func (s *WinnerSignal) Winner() (id int, ok bool) {
	select {
	case <-s.done:
		return int(s.winner.Load()), true
	default:
		return 0, false
	}
}
