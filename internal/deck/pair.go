package deck

// Pair holds the locks of a draw source and a discard target so a
// player can move a card between them as a single atomic step. Locks
// are always acquired in ascending deck id order, which rules out
// deadlock between players whose deck pairs overlap.
type Pair struct {
	src *Deck
	dst *Deck
}

// LockPair locks src and dst in ascending id order and returns a Pair
// operating on them. When src and dst are the same deck (a one player
// ring) the lock is taken once. Callers must call Unlock.
func LockPair(src, dst *Deck) Pair {
	switch {
	case src == dst:
		src.mu.Lock()
	case src.id < dst.id:
		src.mu.Lock()
		dst.mu.Lock()
	default:
		dst.mu.Lock()
		src.mu.Lock()
	}
	return Pair{src: src, dst: dst}
}

// Draw removes the front card of the source deck. It returns false if
// the source is empty.
func (p Pair) Draw() (Card, bool) {
	return p.src.draw()
}

// Append adds a card to the back of the target deck.
func (p Pair) Append(c Card) {
	p.dst.append(c)
}

// Unlock releases both locks in reverse acquisition order.
func (p Pair) Unlock() {
	switch {
	case p.src == p.dst:
		p.src.mu.Unlock()
	case p.src.id < p.dst.id:
		p.dst.mu.Unlock()
		p.src.mu.Unlock()
	default:
		p.src.mu.Unlock()
		p.dst.mu.Unlock()
	}
}
