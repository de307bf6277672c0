// Package view renders a board snapshot as colored terminal text. It reads
// the board through its public accessors only and performs no game logic.
package view

import (
	"fmt"
	"io"
	"strings"

	"klondike/engine"
)

// ANSI SGR codes for terminal output.
const (
	colorRed   = "\033[91m"
	colorBlue  = "\033[94m"
	colorReset = "\033[0m"
)

const colWidth = 5

// TextView writes board snapshots to Out.
type TextView struct {
	Out io.Writer

	// Color disables ANSI codes when false (e.g. for piped output).
	Color bool

	// ClearScreen, when set, homes the cursor and wipes the screen before
	// each snapshot.
	ClearScreen bool
}

// New returns a TextView writing colored snapshots to out.
func New(out io.Writer) *TextView {
	return &TextView{Out: out, Color: true, ClearScreen: true}
}

// Display renders the board to Out.
func (v *TextView) Display(b *engine.Board) {
	if v.ClearScreen {
		fmt.Fprint(v.Out, "\033[H\033[2J")
	}
	fmt.Fprintln(v.Out, v.Render(b))
}

// Render returns the full board snapshot as a string.
func (v *TextView) Render(b *engine.Board) string {
	var lines []string

	stock := "[ ]"
	if len(b.Stock.Cards) > 0 {
		stock = v.paint("[#]", colorBlue)
	}

	waste := "   "
	if top, ok := b.Waste.Top(); ok {
		waste = v.formatCard(top)
	}

	founds := make([]string, 0, engine.NumSuits)
	for i := range b.Foundations {
		f := &b.Foundations[i]
		if top, ok := f.Top(); ok {
			founds = append(founds, v.formatCard(top))
			continue
		}
		// Empty foundation shows a placeholder for its suit.
		glyph := f.Suit.String()
		if f.Suit.Color() == engine.Red {
			glyph = v.paint(glyph, colorRed)
		}
		founds = append(founds, "["+glyph+"]")
	}

	lines = append(lines, fmt.Sprintf("Stock: %s   Waste: %s   Foundations: %s   Moves: %d/%d",
		stock, waste, strings.Join(founds, " "), b.MoveCount, engine.MaxMoves))
	lines = append(lines, "")

	// Tableau header.
	header := make([]string, engine.NumTableaus)
	rule := make([]string, engine.NumTableaus)
	for i := range header {
		header[i] = center(fmt.Sprintf("%d", i+1), colWidth)
		rule[i] = center("---", colWidth)
	}
	lines = append(lines, strings.Join(header, " "), strings.Join(rule, " "))

	maxLen := 0
	for i := range b.Tableaus {
		if n := len(b.Tableaus[i].Down) + len(b.Tableaus[i].Cards); n > maxLen {
			maxLen = n
		}
	}

	for row := 0; row < maxLen; row++ {
		cells := make([]string, engine.NumTableaus)
		for col := range b.Tableaus {
			pile := &b.Tableaus[col]
			cell := ""
			switch {
			case row < len(pile.Down):
				cell = v.paint("[#]", colorBlue)
			case row < len(pile.Down)+len(pile.Cards):
				cell = v.formatCard(pile.Cards[row-len(pile.Down)])
			}
			cells[col] = v.centerANSI(cell, colWidth)
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

// formatCard renders a card label, right-padding the rank to two cells and
// painting red suits.
func (v *TextView) formatCard(c engine.Card) string {
	label := fmt.Sprintf("%2s%s", c.Rank, c.Suit)
	if c.Suit.Color() == engine.Red {
		return v.paint(label, colorRed)
	}
	return label
}

func (v *TextView) paint(s, color string) string {
	if !v.Color {
		return s
	}
	return color + s + colorReset
}

// visibleLen counts display cells, skipping SGR escape sequences.
func visibleLen(s string) int {
	n := 0
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\033':
			inEscape = true
		default:
			n++
		}
	}
	return n
}

// centerANSI centers a string that may contain color codes.
func (v *TextView) centerANSI(s string, width int) string {
	pad := width - visibleLen(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
