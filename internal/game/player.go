package game

import (
	"context"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/cardrace/internal/deck"
)

// handSize is the number of cards a player holds between turns. A
// hand momentarily grows to five inside a turn, between the draw and
// the discard.
const handSize = 4

// PlayerConfig carries everything a player needs to run. All fields
// are required unless noted.
type PlayerConfig struct {
	ID        int
	Left      *deck.Deck   // draw source
	Right     *deck.Deck   // discard target
	Signal    *WinnerSignal
	Notify    <-chan int   // this player's win notification mailbox
	Peers     []chan<- int // every player's mailbox, indexed by id-1
	RNG       *rand.Rand   // drives discard choices
	Clock     quartz.Clock
	TurnDelay time.Duration // optional pause between turns
	Sink      EventSink
	Logger    *log.Logger
}

// Player is one participant in the ring. It runs on its own goroutine
// and owns its hand outright; the only shared state it touches is its
// two decks, the winner signal and the notification mailboxes.
type Player struct {
	id        int
	hand      []deck.Card
	left      *deck.Deck
	right     *deck.Deck
	signal    *WinnerSignal
	notify    <-chan int
	peers     []chan<- int
	rng       *rand.Rand
	clock     quartz.Clock
	turnDelay time.Duration
	sink      EventSink
	logger    *log.Logger

	// counters are written by the player goroutine only and read
	// after Run returns.
	turns int
	draws int
	skips int
}

// NewPlayer creates a player. Call Deal before Run.
func NewPlayer(cfg PlayerConfig) *Player {
	return &Player{
		id:        cfg.ID,
		hand:      make([]deck.Card, 0, handSize+1),
		left:      cfg.Left,
		right:     cfg.Right,
		signal:    cfg.Signal,
		notify:    cfg.Notify,
		peers:     cfg.Peers,
		rng:       cfg.RNG,
		clock:     cfg.Clock,
		turnDelay: cfg.TurnDelay,
		sink:      cfg.Sink,
		logger:    cfg.Logger,
	}
}

// ID returns the player's id, which is also its preferred card value.
func (p *Player) ID() int {
	return p.id
}

// Deal gives the player its four starting cards. It must be called
// exactly once, before Run.
func (p *Player) Deal(cards []deck.Card) {
	p.hand = append(p.hand[:0], cards...)
}

// Hand returns a copy of the player's current hand. Only safe to call
// before Run starts or after it returns.
func (p *Player) Hand() []deck.Card {
	return append([]deck.Card(nil), p.hand...)
}

// Turns returns how many turns the player took, counting skips.
func (p *Player) Turns() int { return p.turns }

// Draws returns how many turns actually moved a card.
func (p *Player) Draws() int { return p.draws }

// Skips returns how many turns found the draw deck empty.
func (p *Player) Skips() int { return p.skips }

// Run plays until the game ends. A player stops for exactly three
// reasons: it won, somebody else won, or it lost the claim race with
// a completed hand. The context is only consulted while pacing and
// waiting, as an escape hatch for process shutdown; the game itself
// never cancels a player.
func (p *Player) Run(ctx context.Context) error {
	p.emitHand(EventTypeInitialHand)

	// A dealt four of a kind wins before any turn is taken.
	if p.hasWon() {
		if p.signal.Claim(p.id) {
			p.finishAsWinner()
			return nil
		}
		return p.finishInformed(ctx)
	}

	for !p.signal.Finished() {
		p.takeTurn()
		if p.hasWon() {
			if p.signal.Claim(p.id) {
				p.finishAsWinner()
				return nil
			}
			// Lost the race with a completed hand; the winner is
			// already notifying us.
			break
		}
		if err := p.pace(ctx); err != nil {
			return err
		}
	}
	return p.finishInformed(ctx)
}

// takeTurn moves one card: draw from the left deck, discard to the
// right one, both under the same lock pair so other players never
// observe the hand mid-swap. An empty draw deck makes the turn a
// no-op rather than an error. Events are emitted after the locks are
// released.
func (p *Player) takeTurn() {
	p.turns++

	pair := deck.LockPair(p.left, p.right)
	drawn, ok := pair.Draw()
	if !ok {
		pair.Unlock()
		p.skips++
		return
	}
	p.hand = append(p.hand, drawn)
	idx := p.chooseDiscard()
	discard := p.hand[idx]
	p.hand = append(p.hand[:idx], p.hand[idx+1:]...)
	pair.Append(discard)
	pair.Unlock()

	p.draws++
	p.emit(Event{Type: EventTypeDraw, Card: drawn, Deck: p.left.ID()})
	p.emit(Event{Type: EventTypeDiscard, Card: discard, Deck: p.right.ID()})
	p.emitHand(EventTypeHand)
}

// chooseDiscard picks which of the five cards to give up. Cards whose
// value matches the player's id are kept; the choice among the rest
// is uniform, so no unwanted card can sit in a hand forever. The win
// check between turns keeps at most four of the five matching, but if
// every card matches the oldest goes.
func (p *Player) chooseDiscard() int {
	candidates := make([]int, 0, len(p.hand))
	for i, c := range p.hand {
		if c.Value() != p.id {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return 0
	}
	return candidates[p.rng.IntN(len(candidates))]
}

// hasWon reports whether all four cards share one value. Any value
// wins, not just the preferred one.
func (p *Player) hasWon() bool {
	if len(p.hand) != handSize {
		return false
	}
	v := p.hand[0].Value()
	for _, c := range p.hand[1:] {
		if c.Value() != v {
			return false
		}
	}
	return true
}

// pace yields between turns so no player monopolises its decks. The
// delay has no correctness role; the select wakes early the moment
// the game ends.
func (p *Player) pace(ctx context.Context) error {
	if p.turnDelay <= 0 {
		return nil
	}
	fired := make(chan struct{})
	timer := p.clock.AfterFunc(p.turnDelay, func() { close(fired) })
	defer timer.Stop()

	select {
	case <-fired:
	case <-p.signal.Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

// finishAsWinner announces the win, tells every other player who won
// and emits the terminal events. Only the player whose Claim
// succeeded may call it.
func (p *Player) finishAsWinner() {
	p.logger.Info("won the game", "turns", p.turns)
	p.emit(Event{Type: EventTypeWin, Winner: p.id, Won: true})

	// Mailboxes hold one value and only the single winner ever
	// sends, so none of these sends can block.
	for i, peer := range p.peers {
		if i+1 == p.id {
			continue
		}
		peer <- p.id
	}

	p.emit(Event{Type: EventTypeExit, Winner: p.id, Won: true})
	p.emit(Event{Type: EventTypeFinalHand, Hand: p.Hand(), Winner: p.id, Won: true})
}

// finishInformed learns who won and emits the terminal events. A
// direct notification takes precedence; when none has arrived yet the
// player falls back to the signal's record, which names the same
// winner.
func (p *Player) finishInformed(ctx context.Context) error {
	var winner int
	select {
	case winner = <-p.notify:
	default:
		select {
		case winner = <-p.notify:
		case <-p.signal.Done():
			winner, _ = p.signal.Winner()
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	p.logger.Debug("informed of winner", "winner", winner, "turns", p.turns)
	if winner != p.id {
		p.emit(Event{Type: EventTypeInformed, Winner: winner})
	}
	p.emit(Event{Type: EventTypeExit, Winner: winner})
	p.emit(Event{Type: EventTypeFinalHand, Hand: p.Hand(), Winner: winner})
	return nil
}

func (p *Player) emit(ev Event) {
	ev.ID = uuid.New()
	ev.Player = p.id
	ev.Time = p.clock.Now()
	p.sink.OnEvent(ev)
}

func (p *Player) emitHand(t EventType) {
	p.emit(Event{Type: t, Hand: p.Hand()})
}
