// Package simulation drives complete games: a single-game loop with
// fingerprint-based cycle avoidance, a parallel batch runner, and the
// difficulty-graded training sweep.
package simulation

import (
	"time"

	"github.com/google/uuid"

	"klondike/engine"
	"klondike/player"
)

// Outcome is the tagged result of one game. The three non-win endings stay
// distinct here even though the CLI collapses them to "not won".
type Outcome uint8

const (
	// OutcomeUnknown is the zero value: a result that never went through
	// the game loop reads as unknown, not as a win.
	OutcomeUnknown Outcome = iota
	OutcomeWon
	OutcomeStuck
	OutcomeMoveCapReached
	OutcomeQuit
)

// String returns the outcome label.
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeStuck:
		return "stuck"
	case OutcomeMoveCapReached:
		return "move cap reached"
	case OutcomeQuit:
		return "quit"
	}
	return "unknown"
}

// Won reports whether the game ended in a win.
func (o Outcome) Won() bool {
	return o == OutcomeWon
}

// Display receives a board snapshot before each decision.
type Display interface {
	Display(b *engine.Board)
}

// Options tunes one game run.
type Options struct {
	// MaxMoves caps the game length; zero means engine.MaxMoves.
	MaxMoves int

	// View, when non-nil, is shown the board before every decision.
	View Display

	// AutoPlayForced executes a sole candidate move without consulting the
	// player, notifying it instead. Interactive play sets this.
	AutoPlayForced bool
}

// GameResult records one finished game.
type GameResult struct {
	ID       uuid.UUID     `json:"id"`
	Outcome  Outcome       `json:"outcome"`
	Moves    int           `json:"moves"`
	Duration time.Duration `json:"duration"`
}

// RunGame drives a board to termination: enumerate legal moves, drop the
// ones leading to already-seen states, let the player choose, apply,
// record the new fingerprint, repeat. The visited set belongs to this run,
// not to the board — the board stays a pure value.
func RunGame(b *engine.Board, p player.Player, opts Options) GameResult {
	start := time.Now()

	maxMoves := opts.MaxMoves
	if maxMoves <= 0 {
		maxMoves = engine.MaxMoves
	}

	seen := map[engine.Fingerprint]struct{}{b.Fingerprint(): {}}
	outcome := runLoop(b, p, opts, maxMoves, seen)

	return GameResult{
		ID:       uuid.New(),
		Outcome:  outcome,
		Moves:    b.MoveCount,
		Duration: time.Since(start),
	}
}

func runLoop(b *engine.Board, p player.Player, opts Options, maxMoves int, seen map[engine.Fingerprint]struct{}) Outcome {
	for !b.IsWon() {
		if b.MoveCount >= maxMoves {
			return OutcomeMoveCapReached
		}
		if opts.View != nil {
			opts.View.Display(b)
		}

		legal := b.LegalMoves()
		if len(legal) == 0 {
			return OutcomeStuck
		}

		// Prefer moves leading to unseen states; when everything has been
		// tried before, offer the full list — there is no other way out of
		// a dead end.
		candidates := productiveMoves(b, legal, seen)
		if len(candidates) == 0 {
			candidates = legal
		}

		var m engine.Move
		if len(candidates) == 1 && opts.AutoPlayForced {
			m = candidates[0]
			if n, ok := p.(player.AutoMoveNotifier); ok {
				n.NotifyAutoMove(m)
			}
		} else {
			var ok bool
			m, ok = p.SelectMove(b, candidates)
			if !ok {
				return OutcomeQuit
			}
		}

		b.Apply(m)
		seen[b.Fingerprint()] = struct{}{}
	}

	if opts.View != nil {
		opts.View.Display(b)
	}
	return OutcomeWon
}

// productiveMoves keeps the moves whose resulting fingerprint has not been
// seen this game. Each candidate is scouted with Apply/Fingerprint/Undo on
// the live board. This is the hot path of a training workload; no board is
// cloned here.
func productiveMoves(b *engine.Board, legal []engine.Move, seen map[engine.Fingerprint]struct{}) []engine.Move {
	out := make([]engine.Move, 0, len(legal))
	for _, m := range legal {
		b.Apply(m)
		fp := b.Fingerprint()
		b.Undo(m)
		if _, dup := seen[fp]; !dup {
			out = append(out, m)
		}
	}
	return out
}
