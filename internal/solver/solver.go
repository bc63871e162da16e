package solver

import (
	"context"
	"errors"

	"github.com/git-akihakune/sudoku-solver/internal/board"
)

var (
	ErrNoSolution = errors.New("puzzle has no solution")
	ErrTimeout    = errors.New("solver timeout exceeded")
)

// Solver runs an exhaustive backtracking search over a Sudoku board.
//
// Cells are visited in row-major order and candidate values tried in
// ascending order, so a solve is fully deterministic for a given puzzle.
// The search stops at the first solution found.
type Solver struct {
	Board   *board.Board
	options *Options
	steps   int
}

// New creates a solver for the given board.
// The board is cloned; the caller's copy is never mutated.
func New(b *board.Board, options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}
	return &Solver{
		Board:   b.Clone(),
		options: options,
	}
}

// Solve attempts to solve the puzzle.
// Returns the solved board, ErrNoSolution if the search space is exhausted,
// or the context error if the search was cancelled. The step counter is
// reset at entry and readable via Steps afterwards.
func (s *Solver) Solve(ctx context.Context) (*board.Board, error) {
	if s.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.options.Timeout)
		defer cancel()
	}

	s.steps = 0
	ok, err := s.backtrack(ctx, 0, 0)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, err
	}
	if !ok {
		return nil, ErrNoSolution
	}
	return s.Board, nil
}

// Steps returns the number of cell visits performed by the last Solve call.
// Every visited (row, col) pair counts once, whether the visit was a skip,
// a successful placement, or a dead end.
func (s *Solver) Steps() int {
	return s.steps
}

// backtrack advances through the grid one cell at a time.
//
// Walking off the end of a row wraps to the next one; walking off the last
// row means every cell was filled validly and the search succeeded. Filled
// cells are skipped, empty cells try each candidate in ascending order and
// undo on failure. The bool result distinguishes exhaustion from success;
// a non-nil error is always a cancellation propagating up the stack.
func (s *Solver) backtrack(ctx context.Context, row, col int) (bool, error) {
	size := s.Board.Size()
	if col == size {
		row, col = row+1, 0
	}
	if row == size {
		return true, nil
	}

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	s.steps++

	if s.Board.Get(row, col) != board.EmptyCell {
		return s.backtrack(ctx, row, col+1)
	}

	for val := 1; val <= size; val++ {
		if !s.Board.IsValidPlacement(row, col, val) {
			continue
		}

		s.Board.SetForce(row, col, val)
		s.emit(EventPlace, row, col, val)

		ok, err := s.backtrack(ctx, row, col+1)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}

		s.Board.Clear(row, col)
		s.emit(EventUndo, row, col, val)
	}

	return false, nil
}

// emit delivers an event to the configured observer, if any.
func (s *Solver) emit(kind EventKind, row, col, val int) {
	if s.options.Observer == nil {
		return
	}
	s.options.Observer(Event{
		Kind:  kind,
		Row:   row,
		Col:   col,
		Value: val,
		Step:  s.steps,
	})
}
