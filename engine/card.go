package engine

// Suit identifies one of the four suits. The zero-based value doubles as
// the index of the matching foundation pile.
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// NumSuits is the number of suits in a standard deck.
const NumSuits = 4

// Color is the suit color used by the tableau stacking rule.
type Color uint8

const (
	Red Color = iota
	Black
)

// Color returns the color of the suit: Hearts and Diamonds are red,
// Clubs and Spades are black.
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// String returns the suit glyph.
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	}
	return "?"
}

// Rank is a card rank from Ace (1) through King (13).
type Rank uint8

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// NumRanks is the number of ranks per suit.
const NumRanks = 13

// String returns the short rank label ("A", "2".."10", "J", "Q", "K").
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case 10:
		return "10"
	}
	if r >= 2 && r <= 9 {
		return string('0' + byte(r))
	}
	return "?"
}

// Card is an immutable rank/suit pair. Exactly 52 distinct cards exist on
// a board at all times, each in exactly one pile.
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns a human-friendly label like "A♥" or "10♦".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// packed encodes the card into one byte: suit in the upper four bits, rank
// in the lower four. Fingerprints use this form.
func (c Card) packed() byte {
	return byte(c.Suit)<<4 | byte(c.Rank)&0x0F
}

// NewDeck returns all 52 cards in suit-major order.
func NewDeck() []Card {
	deck := make([]Card, 0, NumSuits*NumRanks)
	for s := Hearts; s <= Spades; s++ {
		for r := Ace; r <= King; r++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}
