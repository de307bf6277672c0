package engine

// Fingerprint is a comparable snapshot of board state used for cycle
// detection. It covers the full stock and waste order, each foundation's
// top card only (a foundation holds exactly Ace through its top, so the
// top determines the rest), and each tableau's face-down count plus full
// visible sequence.
type Fingerprint string

// Packed cards occupy values 0x01..0x3D, so these markers cannot collide
// with card bytes.
const (
	fpEmpty byte = 0xFF
	fpSep   byte = 0xFE
)

// Fingerprint computes the board's fingerprint.
func (b *Board) Fingerprint() Fingerprint {
	buf := make([]byte, 0, 80)

	for _, c := range b.Stock.Cards {
		buf = append(buf, c.packed())
	}
	buf = append(buf, fpSep)

	for _, c := range b.Waste.Cards {
		buf = append(buf, c.packed())
	}
	buf = append(buf, fpSep)

	for i := range b.Foundations {
		if top, ok := b.Foundations[i].Top(); ok {
			buf = append(buf, top.packed())
		} else {
			buf = append(buf, fpEmpty)
		}
	}

	for i := range b.Tableaus {
		t := &b.Tableaus[i]
		buf = append(buf, fpSep, byte(len(t.Down)))
		for _, c := range t.Cards {
			buf = append(buf, c.packed())
		}
	}

	return Fingerprint(buf)
}
