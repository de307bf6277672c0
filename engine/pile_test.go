package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockNeverAccepts(t *testing.T) {
	p := Pile{Kind: StockPile}
	for _, c := range NewDeck() {
		assert.False(t, p.CanAccept(c))
	}
}

func TestWasteAlwaysAccepts(t *testing.T) {
	p := Pile{Kind: WastePile}
	for _, c := range NewDeck() {
		assert.True(t, p.CanAccept(c))
	}
}

func TestFoundationAccepts(t *testing.T) {
	tests := []struct {
		name  string
		cards []Card
		card  Card
		want  bool
	}{
		{"empty accepts matching ace", nil, Card{Rank: Ace, Suit: Hearts}, true},
		{"empty rejects matching two", nil, Card{Rank: 2, Suit: Hearts}, false},
		{"empty rejects foreign ace", nil, Card{Rank: Ace, Suit: Spades}, false},
		{"accepts next rank up", []Card{{Rank: Ace, Suit: Hearts}, {Rank: 2, Suit: Hearts}}, Card{Rank: 3, Suit: Hearts}, true},
		{"rejects rank gap", []Card{{Rank: Ace, Suit: Hearts}}, Card{Rank: 3, Suit: Hearts}, false},
		{"rejects same rank", []Card{{Rank: Ace, Suit: Hearts}}, Card{Rank: Ace, Suit: Hearts}, false},
		{"rejects foreign suit at next rank", []Card{{Rank: Ace, Suit: Hearts}}, Card{Rank: 2, Suit: Diamonds}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pile{Kind: FoundationPile, Suit: Hearts, Cards: tt.cards}
			assert.Equal(t, tt.want, p.CanAccept(tt.card))
		})
	}
}

func TestTableauAccepts(t *testing.T) {
	tests := []struct {
		name  string
		cards []Card
		card  Card
		want  bool
	}{
		{"empty accepts king", nil, Card{Rank: King, Suit: Spades}, true},
		{"empty rejects queen", nil, Card{Rank: Queen, Suit: Spades}, false},
		{"accepts alternating color rank down", []Card{{Rank: 8, Suit: Hearts}}, Card{Rank: 7, Suit: Clubs}, true},
		{"rejects same color rank down", []Card{{Rank: 8, Suit: Hearts}}, Card{Rank: 7, Suit: Diamonds}, false},
		{"rejects alternating color wrong rank", []Card{{Rank: 8, Suit: Hearts}}, Card{Rank: 6, Suit: Clubs}, false},
		{"rejects rank up", []Card{{Rank: 8, Suit: Hearts}}, Card{Rank: 9, Suit: Spades}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pile{Kind: TableauPile, Cards: tt.cards}
			assert.Equal(t, tt.want, p.CanAccept(tt.card))
		})
	}
}

func TestPushPopTop(t *testing.T) {
	p := Pile{Kind: WastePile}
	_, ok := p.Top()
	assert.False(t, ok)

	c1 := Card{Rank: 5, Suit: Clubs}
	c2 := Card{Rank: 9, Suit: Hearts}
	p.Push(c1)
	p.Push(c2)

	top, ok := p.Top()
	require.True(t, ok)
	assert.Equal(t, c2, top)
	assert.Equal(t, 2, p.Len())

	assert.Equal(t, c2, p.Pop())
	assert.Equal(t, c1, p.Pop())
	assert.Equal(t, 0, p.Len())
}

func TestFlipTop(t *testing.T) {
	hidden := Card{Rank: 4, Suit: Diamonds}
	p := Pile{Kind: TableauPile, Down: []Card{hidden}}

	// Flips only when no face-up card remains.
	p.Push(Card{Rank: 9, Suit: Spades})
	assert.False(t, p.flipTop())

	p.Pop()
	require.True(t, p.flipTop())
	top, ok := p.Top()
	require.True(t, ok)
	assert.Equal(t, hidden, top)
	assert.Empty(t, p.Down)

	// Nothing left to flip.
	p.Pop()
	assert.False(t, p.flipTop())
}

func TestPopRunPreservesOrder(t *testing.T) {
	run := []Card{
		{Rank: 9, Suit: Spades},
		{Rank: 8, Suit: Hearts},
		{Rank: 7, Suit: Clubs},
	}
	p := Pile{Kind: TableauPile, Cards: append([]Card{{Rank: 12, Suit: Hearts}}, run...)}

	got := p.popRun(3)
	assert.Equal(t, run, got)
	assert.Equal(t, 1, p.Len())
}
