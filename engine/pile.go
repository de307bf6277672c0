package engine

// PileKind discriminates the four pile types on a board. The set is closed:
// acceptance rules and move execution switch over it exhaustively.
type PileKind uint8

const (
	StockPile PileKind = iota
	WastePile
	FoundationPile
	TableauPile
)

// Pile is one stack of cards. Cards holds the face-up cards bottom-first.
// Foundation piles carry a fixed Suit assigned at board construction.
// Tableau piles additionally hold a face-down tail in Down, bottom-first;
// only Cards is ever consulted for legality or display.
type Pile struct {
	Kind  PileKind
	Suit  Suit // foundation piles only
	Cards []Card
	Down  []Card // tableau piles only
}

// Len returns the number of face-up cards.
func (p *Pile) Len() int {
	return len(p.Cards)
}

// Top returns the top face-up card, or false when the pile is empty.
func (p *Pile) Top() (Card, bool) {
	if len(p.Cards) == 0 {
		return Card{}, false
	}
	return p.Cards[len(p.Cards)-1], true
}

// Push places a card on top of the pile. It does not check legality;
// callers use CanAccept first.
func (p *Pile) Push(c Card) {
	p.Cards = append(p.Cards, c)
}

// Pop removes and returns the top card. Popping an empty pile is a
// programmer error and panics.
func (p *Pile) Pop() Card {
	c := p.Cards[len(p.Cards)-1]
	p.Cards = p.Cards[:len(p.Cards)-1]
	return c
}

// CanAccept reports whether the card may be legally pushed onto this pile:
//   - stock: never (cards only leave it via a draw)
//   - waste: always (cards only arrive from the stock)
//   - foundation: matching suit, ascending from Ace
//   - tableau: King on an empty column, otherwise descending and
//     alternating in color
func (p *Pile) CanAccept(c Card) bool {
	switch p.Kind {
	case StockPile:
		return false
	case WastePile:
		return true
	case FoundationPile:
		if c.Suit != p.Suit {
			return false
		}
		top, ok := p.Top()
		if !ok {
			return c.Rank == Ace
		}
		return c.Rank == top.Rank+1
	case TableauPile:
		top, ok := p.Top()
		if !ok {
			return c.Rank == King
		}
		return c.Suit.Color() != top.Suit.Color() && c.Rank == top.Rank-1
	}
	return false
}

// popRun removes the top n face-up cards as a block, preserving order.
func (p *Pile) popRun(n int) []Card {
	run := p.Cards[len(p.Cards)-n:]
	p.Cards = p.Cards[:len(p.Cards)-n]
	return run
}

// flipTop flips the next face-down card face-up. A flip only happens when
// no face-up card remains; the face-down tail shrinks one card at a time.
func (p *Pile) flipTop() bool {
	if len(p.Cards) == 0 && len(p.Down) > 0 {
		p.Push(p.Down[len(p.Down)-1])
		p.Down = p.Down[:len(p.Down)-1]
		return true
	}
	return false
}

// unflipTop reverses flipTop: the single face-up card goes back face-down.
// Only Undo calls this, and only for reveal moves where the flip is known
// to have happened.
func (p *Pile) unflipTop() {
	p.Down = append(p.Down, p.Pop())
}
