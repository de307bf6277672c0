package engine

import "fmt"

// MoveKind discriminates the nine move variants. The set is closed: Apply
// and Undo switch over it exhaustively, so a new variant is a compile-time
// concern everywhere it must be handled.
type MoveKind uint8

const (
	DrawFromStock MoveKind = iota
	ResetStock
	WasteToFoundation
	WasteToTableau
	TableauToFoundation
	TableauToFoundationReveal
	FoundationToTableau
	TableauToTableau
	TableauToTableauReveal
)

// Move is an immutable record of one action. From and To index the
// foundation or tableau arrays depending on Kind; Count is the run length
// for tableau-to-tableau moves. Card is a denormalized copy of the moved
// card (the bottom of the run for multi-card moves), kept only so the
// description reads well — execution never consults it.
type Move struct {
	Kind  MoveKind
	From  int
	To    int
	Count int
	Card  Card
}

// String returns a human-readable description of the move.
func (m Move) String() string {
	switch m.Kind {
	case DrawFromStock:
		return "Draw card from Stock"
	case ResetStock:
		return "Reset Stock from Waste"
	case WasteToFoundation:
		return fmt.Sprintf("Move %v from Waste to Foundation %v", m.Card, m.Card.Suit)
	case WasteToTableau:
		return fmt.Sprintf("Move %v from Waste to Tableau %d", m.Card, m.To+1)
	case TableauToFoundation, TableauToFoundationReveal:
		return fmt.Sprintf("Move %v to Foundation %v", m.Card, m.Card.Suit)
	case FoundationToTableau:
		return fmt.Sprintf("Move %v from Foundation %v to Tableau %d", m.Card, m.Card.Suit, m.To+1)
	case TableauToTableau, TableauToTableauReveal:
		plural := ""
		if m.Count > 1 {
			plural = "s"
		}
		return fmt.Sprintf("Move %d card%s (starting with %v) from Tableau %d to Tableau %d",
			m.Count, plural, m.Card, m.From+1, m.To+1)
	}
	return "unknown move"
}

// Reveals reports whether executing the move flips a face-down card.
func (m Move) Reveals() bool {
	return m.Kind == TableauToFoundationReveal || m.Kind == TableauToTableauReveal
}

// Apply executes a move and increments the move counter. Only moves
// produced by LegalMoves are valid input; applying a move that addresses
// an empty or mismatched pile is a programmer error and panics.
func (b *Board) Apply(m Move) {
	switch m.Kind {
	case DrawFromStock:
		b.Waste.Push(b.Stock.Pop())

	case ResetStock:
		// Popping the waste card by card reverses it back into draw order.
		for len(b.Waste.Cards) > 0 {
			b.Stock.Push(b.Waste.Pop())
		}

	case WasteToFoundation:
		b.Foundations[m.To].Push(b.Waste.Pop())

	case WasteToTableau:
		b.Tableaus[m.To].Push(b.Waste.Pop())

	case TableauToFoundation:
		b.Foundations[m.To].Push(b.Tableaus[m.From].Pop())

	case TableauToFoundationReveal:
		b.Foundations[m.To].Push(b.Tableaus[m.From].Pop())
		b.Tableaus[m.From].flipTop()

	case FoundationToTableau:
		b.Tableaus[m.To].Push(b.Foundations[m.From].Pop())

	case TableauToTableau:
		run := b.Tableaus[m.From].popRun(m.Count)
		b.Tableaus[m.To].Cards = append(b.Tableaus[m.To].Cards, run...)

	case TableauToTableauReveal:
		run := b.Tableaus[m.From].popRun(m.Count)
		b.Tableaus[m.To].Cards = append(b.Tableaus[m.To].Cards, run...)
		b.Tableaus[m.From].flipTop()

	default:
		panic(fmt.Sprintf("engine: invalid move kind %d", m.Kind))
	}
	b.MoveCount++
}

// Undo reverses a move that was just applied with Apply, restoring the
// prior board state and move counter. The cycle-avoidance scout uses
// Apply/Fingerprint/Undo instead of cloning the board once per candidate.
func (b *Board) Undo(m Move) {
	switch m.Kind {
	case DrawFromStock:
		b.Stock.Push(b.Waste.Pop())

	case ResetStock:
		// A reset is only legal when the stock is empty, so everything now
		// in the stock came from the waste.
		for len(b.Stock.Cards) > 0 {
			b.Waste.Push(b.Stock.Pop())
		}

	case WasteToFoundation:
		b.Waste.Push(b.Foundations[m.To].Pop())

	case WasteToTableau:
		b.Waste.Push(b.Tableaus[m.To].Pop())

	case TableauToFoundation:
		b.Tableaus[m.From].Push(b.Foundations[m.To].Pop())

	case TableauToFoundationReveal:
		b.Tableaus[m.From].unflipTop()
		b.Tableaus[m.From].Push(b.Foundations[m.To].Pop())

	case FoundationToTableau:
		b.Foundations[m.From].Push(b.Tableaus[m.To].Pop())

	case TableauToTableau:
		run := b.Tableaus[m.To].popRun(m.Count)
		b.Tableaus[m.From].Cards = append(b.Tableaus[m.From].Cards, run...)

	case TableauToTableauReveal:
		b.Tableaus[m.From].unflipTop()
		run := b.Tableaus[m.To].popRun(m.Count)
		b.Tableaus[m.From].Cards = append(b.Tableaus[m.From].Cards, run...)

	default:
		panic(fmt.Sprintf("engine: invalid move kind %d", m.Kind))
	}
	b.MoveCount--
}
