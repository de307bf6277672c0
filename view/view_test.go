package view

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"klondike/engine"
)

func plainView() *TextView {
	return &TextView{Color: false}
}

func TestRenderHeaderLine(t *testing.T) {
	b := engine.NewBoard()
	b.Stock.Push(engine.Card{Rank: 4, Suit: engine.Clubs})
	b.Waste.Push(engine.Card{Rank: 10, Suit: engine.Diamonds})
	b.Foundations[engine.Hearts].Push(engine.Card{Rank: engine.Ace, Suit: engine.Hearts})
	b.MoveCount = 12

	out := plainView().Render(b)
	first := strings.SplitN(out, "\n", 2)[0]

	assert.Contains(t, first, "Stock: [#]")
	assert.Contains(t, first, "10♦")
	assert.Contains(t, first, " A♥")
	assert.Contains(t, first, "[♦]") // empty foundation placeholder
	assert.Contains(t, first, "Moves: 12/999")
}

func TestRenderEmptyStockPlaceholder(t *testing.T) {
	b := engine.NewBoard()
	out := plainView().Render(b)
	assert.Contains(t, out, "Stock: [ ]")
}

func TestRenderTableauRows(t *testing.T) {
	b := engine.NewBoard()
	b.Tableaus[0].Down = []engine.Card{{Rank: 2, Suit: engine.Spades}}
	b.Tableaus[0].Cards = []engine.Card{{Rank: 9, Suit: engine.Clubs}}

	out := plainView().Render(b)
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 6)

	// Row one: face-down marker; row two: the visible card.
	assert.Contains(t, lines[4], "[#]")
	assert.Contains(t, lines[5], "9♣")
	// Hidden cards never leak their identity.
	assert.NotContains(t, out, "2♠")
}

func TestRenderAlignsFullDeal(t *testing.T) {
	b := engine.NewBoard()
	b.Setup(rand.New(rand.NewSource(5)))

	v := New(&bytes.Buffer{})
	v.ClearScreen = false
	out := v.Render(b)

	lines := strings.Split(out, "\n")
	// Header, blank, column labels, rule, then 7 card rows (deepest pile).
	require.Len(t, lines, 4+7)

	// Every tableau row is exactly 7 columns wide.
	want := engine.NumTableaus*5 + engine.NumTableaus - 1
	for _, line := range lines[2:] {
		assert.Equal(t, want, visibleLen(line))
	}
}

func TestDisplayClearsScreen(t *testing.T) {
	var buf bytes.Buffer
	v := New(&buf)
	v.Display(engine.NewBoard())
	assert.True(t, strings.HasPrefix(buf.String(), "\033[H\033[2J"))
}

func TestColoredOutput(t *testing.T) {
	b := engine.NewBoard()
	b.Waste.Push(engine.Card{Rank: 5, Suit: engine.Hearts})
	v := New(&bytes.Buffer{})
	out := v.Render(b)
	assert.Contains(t, out, colorRed+" 5♥"+colorReset)
}
