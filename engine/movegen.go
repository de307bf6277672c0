package engine

// LegalMoves scans the board and returns every currently legal move. The
// order is deterministic for a given board state: stock/waste first, then
// waste destinations, then each tableau (top card to foundation, then every
// movable suffix of its visible run against every other tableau), then
// foundation pull-backs. Callers relying on "pick the first move" get
// reproducible behavior.
func (b *Board) LegalMoves() []Move {
	moves := make([]Move, 0, 16)

	// A draw and a reset are mutually exclusive: reset only becomes legal
	// once the stock has run dry.
	if len(b.Stock.Cards) > 0 {
		moves = append(moves, Move{Kind: DrawFromStock})
	} else if len(b.Waste.Cards) > 0 {
		moves = append(moves, Move{Kind: ResetStock})
	}

	if top, ok := b.Waste.Top(); ok {
		fi := int(top.Suit)
		if b.Foundations[fi].CanAccept(top) {
			moves = append(moves, Move{Kind: WasteToFoundation, To: fi, Card: top})
		}
		for ti := range b.Tableaus {
			if b.Tableaus[ti].CanAccept(top) {
				moves = append(moves, Move{Kind: WasteToTableau, To: ti, Card: top})
			}
		}
	}

	for si := range b.Tableaus {
		src := &b.Tableaus[si]

		// Single top card to its foundation. The move reveals a card when
		// it empties the visible run over a non-empty face-down tail.
		if top, ok := src.Top(); ok {
			fi := int(top.Suit)
			if b.Foundations[fi].CanAccept(top) {
				kind := TableauToFoundation
				if len(src.Cards) == 1 && len(src.Down) > 0 {
					kind = TableauToFoundationReveal
				}
				moves = append(moves, Move{Kind: kind, From: si, To: fi, Card: top})
			}
		}

		// Every contiguous suffix of the visible run. The card at the
		// suffix bottom must satisfy the destination; the rest rides along.
		for pos, card := range src.Cards {
			count := len(src.Cards) - pos
			reveals := pos == 0 && len(src.Down) > 0

			// Multiple empty columns are interchangeable for a King run, so
			// at most one king-to-empty move is offered per source run, and
			// none at all unless it would flip a face-down card.
			kingToEmptyEmitted := false

			for di := range b.Tableaus {
				if di == si {
					continue
				}
				dst := &b.Tableaus[di]
				if !dst.CanAccept(card) {
					continue
				}
				if card.Rank == King && len(dst.Cards) == 0 {
					if !reveals {
						continue
					}
					if kingToEmptyEmitted {
						continue
					}
					kingToEmptyEmitted = true
				}
				kind := TableauToTableau
				if reveals {
					kind = TableauToTableauReveal
				}
				moves = append(moves, Move{Kind: kind, From: si, To: di, Count: count, Card: card})
			}
		}
	}

	// Cards may be pulled back off a foundation onto a tableau.
	for fi := range b.Foundations {
		top, ok := b.Foundations[fi].Top()
		if !ok {
			continue
		}
		for ti := range b.Tableaus {
			if b.Tableaus[ti].CanAccept(top) {
				moves = append(moves, Move{Kind: FoundationToTableau, From: fi, To: ti, Card: top})
			}
		}
	}

	return moves
}
