// Package pack reads, validates and generates the card packs a game
// is dealt from. A pack is a text file with one non-negative integer
// per line and holds exactly eight cards per player.
package pack

import (
	"bufio"
	"fmt"
	"io"
	rand "math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/lox/cardrace/internal/deck"
	"github.com/lox/cardrace/internal/fileutil"
)

// CardsPerPlayer is how many cards the pack must hold per player:
// four for the hand and four for the deck.
const CardsPerPlayer = 8

// Size returns the number of cards a pack must hold for n players.
func Size(players int) int {
	return CardsPerPlayer * players
}

// Parse reads a pack for the given number of players. Blank lines are
// skipped; anything else must be a non-negative integer.
func Parse(r io.Reader, players int) ([]deck.Card, error) {
	cards := make([]deck.Card, 0, Size(players))
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		v, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("pack: line %d: %q is not an integer", line, text)
		}
		if v < 0 {
			return nil, fmt.Errorf("pack: line %d: card value %d is negative", line, v)
		}
		cards = append(cards, deck.NewCard(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("pack: read: %w", err)
	}
	if len(cards) != Size(players) {
		return nil, fmt.Errorf("pack: %d cards for %d players, need %d", len(cards), players, Size(players))
	}
	return cards, nil
}

// Load reads a pack file from disk.
func Load(path string, players int) ([]deck.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pack: %w", err)
	}
	defer f.Close()
	return Parse(f, players)
}

// Generate builds a shuffled pack of eight cards of each value 1..n.
// Every game dealt from such a pack can be won, since some player can
// always assemble four of one value.
func Generate(players int, rng *rand.Rand) []deck.Card {
	cards := make([]deck.Card, 0, Size(players))
	for v := 1; v <= players; v++ {
		for i := 0; i < CardsPerPlayer; i++ {
			cards = append(cards, deck.NewCard(v))
		}
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards
}

// Write stores a pack as one value per line, atomically.
func Write(path string, cards []deck.Card) error {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	if err := fileutil.WriteFileAtomic(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("pack: %w", err)
	}
	return nil
}
