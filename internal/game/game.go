package game

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/cardrace/internal/deck"
	"github.com/lox/cardrace/internal/randutil"
	"github.com/lox/cardrace/internal/stats"
)

// Config holds everything needed to assemble a game.
type Config struct {
	Players   int
	Pack      []deck.Card   // exactly 8 cards per player
	TurnDelay time.Duration // pause between a player's turns
	Seed      int64         // drives every player's discard stream
	Clock     quartz.Clock  // defaults to the real clock
	Sink      EventSink     // defaults to discarding events
	Logger    *log.Logger   // defaults to a silent logger
}

// Game wires players and decks into a ring and runs them to
// completion.
type Game struct {
	players []*Player
	decks   []*deck.Deck
	signal  *WinnerSignal
	clock   quartz.Clock
	logger  *log.Logger
}

// New builds the ring. Player i draws from deck i and discards to
// deck i+1 (the last player wraps around to deck 1). The first four
// rounds of the pack are dealt to hands, the rest to the decks, both
// round-robin.
func New(cfg Config) (*Game, error) {
	if cfg.Players < 1 {
		return nil, fmt.Errorf("game: need at least one player, got %d", cfg.Players)
	}
	if len(cfg.Pack) != 8*cfg.Players {
		return nil, fmt.Errorf("game: pack holds %d cards, %d players need %d", len(cfg.Pack), cfg.Players, 8*cfg.Players)
	}

	clock := cfg.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	sink := cfg.Sink
	if sink == nil {
		sink = NopSink{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.WithPrefix("game")

	n := cfg.Players
	decks := make([]*deck.Deck, n)
	for i := range decks {
		decks[i] = deck.New(i + 1)
	}

	// One buffered mailbox per player. Only the single winner ever
	// sends, so capacity one is enough to make every send
	// non-blocking.
	mailboxes := make([]chan int, n)
	peers := make([]chan<- int, n)
	for i := range mailboxes {
		mailboxes[i] = make(chan int, 1)
		peers[i] = mailboxes[i]
	}

	signal := NewWinnerSignal()
	hands := dealHands(cfg.Pack, n)

	players := make([]*Player, n)
	for i := 0; i < n; i++ {
		players[i] = NewPlayer(PlayerConfig{
			ID:        i + 1,
			Left:      decks[i],
			Right:     decks[(i+1)%n],
			Signal:    signal,
			Notify:    mailboxes[i],
			Peers:     peers,
			RNG:       randutil.Derive(cfg.Seed, uint64(i+1)),
			Clock:     clock,
			TurnDelay: cfg.TurnDelay,
			Sink:      sink,
			Logger:    logger.With("player", i+1),
		})
		players[i].Deal(hands[i])
	}
	for i, c := range cfg.Pack[4*n:] {
		decks[i%n].Append(c)
	}

	return &Game{
		players: players,
		decks:   decks,
		signal:  signal,
		clock:   clock,
		logger:  logger,
	}, nil
}

// dealHands distributes the first four rounds of the pack, one card
// per player per round.
func dealHands(pack []deck.Card, n int) [][]deck.Card {
	hands := make([][]deck.Card, n)
	for i := range hands {
		hands[i] = make([]deck.Card, 0, handSize)
	}
	for i, c := range pack[:4*n] {
		hands[i%n] = append(hands[i%n], c)
	}
	return hands
}

// Decks returns the game's decks in id order, for snapshotting after
// the game ends.
func (g *Game) Decks() []*deck.Deck {
	return g.decks
}

// Winner returns the winning player id once the game has finished.
func (g *Game) Winner() (int, bool) {
	return g.signal.Winner()
}

// Run starts every player on its own goroutine and waits for all of
// them to finish. Between launch and join the orchestrator touches no
// deck or hand; the players coordinate entirely through the signal.
// The returned stats cover the whole run and are validated for card
// conservation before being returned.
func (g *Game) Run(ctx context.Context) (*stats.Run, error) {
	start := g.clock.Now()
	g.logger.Info("game starting", "players", len(g.players))

	eg, ctx := errgroup.WithContext(ctx)
	for _, p := range g.players {
		eg.Go(func() error {
			return p.Run(ctx)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	run := g.collect(g.clock.Since(start))
	if err := run.Validate(8 * len(g.players)); err != nil {
		return nil, err
	}
	g.logger.Info("game finished",
		"winner", run.Winner,
		"turns", run.TotalTurns(),
		"duration", run.Duration,
	)
	return run, nil
}

func (g *Game) collect(d time.Duration) *stats.Run {
	winner, _ := g.signal.Winner()
	results := make([]stats.PlayerResult, len(g.players))
	for i, p := range g.players {
		results[i] = stats.PlayerResult{
			ID:        p.ID(),
			Turns:     p.Turns(),
			Draws:     p.Draws(),
			Skips:     p.Skips(),
			Won:       p.ID() == winner,
			FinalHand: p.Hand(),
		}
	}
	deckCards := 0
	for _, dk := range g.decks {
		deckCards += dk.Size()
	}
	return &stats.Run{
		Players:   results,
		Winner:    winner,
		Duration:  d,
		DeckCards: deckCards,
	}
}
