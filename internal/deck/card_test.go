package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	t.Parallel()

	c := NewCard(7)
	assert.Equal(t, 7, c.Value())
	assert.Equal(t, "7", c.String())

	zero := NewCard(0)
	assert.Equal(t, 0, zero.Value())
}

func TestNewCardRejectsNegative(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		NewCard(-1)
	})
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cards    []Card
		expected string
	}{
		{
			name:     "empty",
			cards:    nil,
			expected: "",
		},
		{
			name:     "single card",
			cards:    []Card{NewCard(4)},
			expected: "4",
		},
		{
			name:     "full hand",
			cards:    []Card{NewCard(1), NewCard(12), NewCard(3), NewCard(1)},
			expected: "1 12 3 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.cards))
		})
	}
}
