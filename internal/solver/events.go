package solver

import (
	"context"
	"errors"
	"time"

	"github.com/git-akihakune/sudoku-solver/internal/board"
)

// ErrNoSolver is returned when a solve is requested but no strategy has
// been configured. This is a caller precondition violation, reported
// immediately rather than defaulted around.
var ErrNoSolver = errors.New("no solver strategy configured")

// EventKind distinguishes the two board mutations a backtracking search
// performs.
type EventKind int

const (
	// EventPlace reports a tentative value written to an empty cell.
	EventPlace EventKind = iota
	// EventUndo reports a tentative value removed during backtracking.
	EventUndo
)

// Event describes one mutation of the board under search. Step carries the
// solver's step counter at the time the event fired.
type Event struct {
	Kind  EventKind
	Row   int
	Col   int
	Value int
	Step  int
}

// Observer receives events synchronously, in the order the mutations
// happen. Observers must not mutate the board under search; consumers that
// want to track board state should apply events to their own copy.
type Observer func(Event)

// Strategy is a solving algorithm. Implementations must leave the input
// board untouched and report the solved board, the number of search steps
// taken, and ErrNoSolution when the puzzle is unsatisfiable.
type Strategy interface {
	Solve(ctx context.Context, b *board.Board, obs Observer) (*board.Board, int, error)
}

// Backtracking is the exhaustive depth-first Strategy.
type Backtracking struct {
	// Timeout bounds wall-clock search time when positive.
	Timeout time.Duration
}

// Solve runs the backtracking search on a clone of b.
func (bt Backtracking) Solve(ctx context.Context, b *board.Board, obs Observer) (*board.Board, int, error) {
	s := New(b, &Options{
		Observer: obs,
		Timeout:  bt.Timeout,
	})
	solved, err := s.Solve(ctx)
	return solved, s.Steps(), err
}
