package deck

import (
	"strconv"
	"strings"
)

// Card is a single denomination card. Values are plain non-negative
// integers with no suit; two cards match when their values are equal.
type Card struct {
	value int
}

// NewCard creates a card with the given denomination. It panics on a
// negative value: packs are validated on load, so a negative value
// reaching this point is a programming error.
func NewCard(value int) Card {
	if value < 0 {
		panic("deck: card value cannot be negative")
	}
	return Card{value: value}
}

// Value returns the card's denomination.
func (c Card) Value() int {
	return c.value
}

// String returns the denomination in decimal.
func (c Card) String() string {
	return strconv.Itoa(c.value)
}

// Format renders cards as space-separated values, the form used for
// hands in player log lines and result files.
func Format(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
