// Package game implements the four-of-a-kind race: a ring of players
// draining and feeding shared decks until one of them holds four cards
// of equal value.
//
// Player i draws from deck i and discards to deck i+1, wrapping back
// to deck 1, so neighbouring players contend for the deck between
// them. A turn moves one card under both deck locks (taken in deck id
// order), the first player to assemble four of a kind ends the game
// with a single compare-and-swap on the shared WinnerSignal, and every
// other player learns the winner before exiting.
//
// # Basic Usage
//
//	g, err := game.New(game.Config{
//	    Players: 4,
//	    Pack:    cards, // 8 per player
//	    Seed:    42,
//	})
//	if err != nil {
//	    return err
//	}
//	run, err := g.Run(ctx)
//
// # Deterministic Testing
//
// Discard choices come from per-player streams derived from
// Config.Seed, and all timing goes through the injected quartz.Clock,
// so a mock clock and a fixed seed give fully reproducible games.
package game
