// Package player provides move-selection strategies for the game loop:
// a first-move picker used during training and an interactive prompt for
// human play.
package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"klondike/engine"
)

// Player selects one move from a non-empty list of legal moves. Returning
// ok=false signals a voluntary quit; the game loop treats it as a
// non-win termination.
type Player interface {
	SelectMove(b *engine.Board, legal []engine.Move) (engine.Move, bool)
}

// AutoMoveNotifier is implemented by players that want to be told when the
// loop executes the only available move without asking.
type AutoMoveNotifier interface {
	NotifyAutoMove(m engine.Move)
}

// FirstMove always picks the first legal move. It stands in for a real
// strategy: the enumeration order is deterministic, so games driven by it
// are reproducible.
type FirstMove struct {
	// Out, when non-nil, receives a line per selection.
	Out io.Writer
}

// SelectMove returns legal[0].
func (p *FirstMove) SelectMove(b *engine.Board, legal []engine.Move) (engine.Move, bool) {
	m := legal[0]
	if p.Out != nil {
		fmt.Fprintf(p.Out, "\nSelecting: %v\n", m)
	}
	return m, true
}

// Human prompts on Out and reads selections from In. Entering "q" or
// "quit" abandons the game.
type Human struct {
	In  io.Reader
	Out io.Writer

	// AutoMovePause is how long to linger after an automatic move so the
	// player can see what happened. Zero disables the pause.
	AutoMovePause time.Duration

	scanner *bufio.Scanner
}

// NewHuman returns a Human reading from in and writing to out.
func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{In: in, Out: out, AutoMovePause: 750 * time.Millisecond}
}

// SelectMove lists the legal moves and prompts until the input names one
// of them or quits.
func (p *Human) SelectMove(b *engine.Board, legal []engine.Move) (engine.Move, bool) {
	if p.scanner == nil {
		p.scanner = bufio.NewScanner(p.In)
	}

	fmt.Fprintln(p.Out, "\nAvailable Moves:")
	for i, m := range legal {
		fmt.Fprintf(p.Out, "  %d: %v\n", i+1, m)
	}

	if b.HasWasteCardBeenSeen() {
		fmt.Fprintln(p.Out, "\nHint: A card with this rank and color has been seen in this cycle.")
	}

	for {
		fmt.Fprintf(p.Out, "\nSelect a move (1-%d) or type 'q' to quit: ", len(legal))
		if !p.scanner.Scan() {
			// Input closed counts as quitting.
			return engine.Move{}, false
		}
		choice := strings.ToLower(strings.TrimSpace(p.scanner.Text()))

		if choice == "q" || choice == "quit" {
			return engine.Move{}, false
		}

		n, err := strconv.Atoi(choice)
		if err != nil {
			fmt.Fprintln(p.Out, "Invalid input. Please enter a number or 'q'.")
			continue
		}
		if n < 1 || n > len(legal) {
			fmt.Fprintln(p.Out, "Invalid number. Please try again.")
			continue
		}
		return legal[n-1], true
	}
}

// NotifyAutoMove announces a forced move and pauses so it can be seen.
func (p *Human) NotifyAutoMove(m engine.Move) {
	fmt.Fprintf(p.Out, "\nOnly one move available. Automatically executing: %v\n", m)
	if p.AutoMovePause > 0 {
		time.Sleep(p.AutoMovePause)
	}
}
