package engine

import (
	"fmt"
	"math/rand"
)

// MaxMoves is the move-count cap; reaching it ends the game as a loss.
const MaxMoves = 999

// NumTableaus is the number of tableau columns on the board.
const NumTableaus = 7

// MaxScenarioHidden is the largest face-down card count accepted by
// SetupRandomScenario (52 minus one potential face-up card per tableau).
const MaxScenarioHidden = 45

// WinHiddenThreshold is the win heuristic: a position with this many or
// fewer face-down cards is assumed trivially solvable.
const WinHiddenThreshold = 2

// Board owns every pile plus the move counter. It is a pure value: cloning
// it yields an independent game, and no playthrough history is baked in —
// the visited-fingerprint set belongs to the owning game loop.
type Board struct {
	Stock       Pile
	Waste       Pile
	Foundations [NumSuits]Pile
	Tableaus    [NumTableaus]Pile
	MoveCount   int
}

// NewBoard returns an empty board with foundation suits fixed in
// Hearts, Diamonds, Clubs, Spades order.
func NewBoard() *Board {
	b := &Board{}
	b.reset()
	return b
}

func (b *Board) reset() {
	b.Stock = Pile{Kind: StockPile}
	b.Waste = Pile{Kind: WastePile}
	for s := Hearts; s <= Spades; s++ {
		b.Foundations[s] = Pile{Kind: FoundationPile, Suit: s}
	}
	for i := range b.Tableaus {
		b.Tableaus[i] = Pile{Kind: TableauPile}
	}
	b.MoveCount = 0
}

// Setup deals a fresh shuffled deck: tableau i receives i face-down cards
// plus one face-up card, the remainder goes to the stock.
func (b *Board) Setup(rng *rand.Rand) {
	b.reset()

	deck := NewDeck()
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	pop := func() Card {
		c := deck[len(deck)-1]
		deck = deck[:len(deck)-1]
		return c
	}

	for i := range b.Tableaus {
		for n := 0; n < i; n++ {
			b.Tableaus[i].Down = append(b.Tableaus[i].Down, pop())
		}
		b.Tableaus[i].Push(pop())
	}

	for _, c := range deck {
		b.Stock.Push(c)
	}
}

// SetupRandomScenario builds a partially played position with exactly
// hidden face-down cards spread arbitrarily across the tableaus. The rest
// of the deck is placed greedily: matching foundation first, then the first
// accepting tableau, then the stock. Every tableau left with face-down
// cards but no face-up card flips one. Used to grade difficulty during
// training.
func (b *Board) SetupRandomScenario(hidden int, rng *rand.Rand) error {
	if hidden < 0 || hidden > MaxScenarioHidden {
		return fmt.Errorf("hidden card count %d out of range [0, %d]", hidden, MaxScenarioHidden)
	}

	b.reset()

	deck := NewDeck()
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	for n := 0; n < hidden; n++ {
		c := deck[len(deck)-1]
		deck = deck[:len(deck)-1]
		t := rng.Intn(NumTableaus)
		b.Tableaus[t].Down = append(b.Tableaus[t].Down, c)
	}

	for _, c := range deck {
		if f := &b.Foundations[c.Suit]; f.CanAccept(c) {
			f.Push(c)
			continue
		}
		placed := false
		for i := range b.Tableaus {
			if b.Tableaus[i].CanAccept(c) {
				b.Tableaus[i].Push(c)
				placed = true
				break
			}
		}
		if !placed {
			b.Stock.Push(c)
		}
	}

	for i := range b.Tableaus {
		b.Tableaus[i].flipTop()
	}
	return nil
}

// Clone returns an independent deep copy of the board.
func (b *Board) Clone() *Board {
	nb := &Board{MoveCount: b.MoveCount}
	nb.Stock = clonePile(&b.Stock)
	nb.Waste = clonePile(&b.Waste)
	for i := range b.Foundations {
		nb.Foundations[i] = clonePile(&b.Foundations[i])
	}
	for i := range b.Tableaus {
		nb.Tableaus[i] = clonePile(&b.Tableaus[i])
	}
	return nb
}

func clonePile(p *Pile) Pile {
	np := Pile{Kind: p.Kind, Suit: p.Suit}
	if len(p.Cards) > 0 {
		np.Cards = append(np.Cards, p.Cards...)
	}
	if len(p.Down) > 0 {
		np.Down = append(np.Down, p.Down...)
	}
	return np
}

// HiddenCount returns the total number of face-down cards across tableaus.
func (b *Board) HiddenCount() int {
	n := 0
	for i := range b.Tableaus {
		n += len(b.Tableaus[i].Down)
	}
	return n
}

// IsWon reports the win heuristic: two or fewer face-down cards remain.
func (b *Board) IsWon() bool {
	return b.HiddenCount() <= WinHiddenThreshold
}

// HasWasteCardBeenSeen reports whether a card of the same rank and color
// as the current waste top appears lower in the waste pile. Interactive
// play surfaces this as a hint that the stock cycle is repeating itself.
func (b *Board) HasWasteCardBeenSeen() bool {
	top, ok := b.Waste.Top()
	if !ok || len(b.Waste.Cards) <= 1 {
		return false
	}
	for _, c := range b.Waste.Cards[:len(b.Waste.Cards)-1] {
		if c.Rank == top.Rank && c.Suit.Color() == top.Suit.Color() {
			return true
		}
	}
	return false
}
