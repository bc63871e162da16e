package solver

import (
	"context"

	"github.com/git-akihakune/sudoku-solver/internal/board"
)

// CountSolutions counts completions of b, stopping once limit solutions have
// been found. A puzzle has a unique solution iff CountSolutions(ctx, b, 2)
// reports exactly 1. The input board is never mutated.
func CountSolutions(ctx context.Context, b *board.Board, limit int) (int, error) {
	if limit <= 0 {
		return 0, nil
	}

	work := b.Clone()
	count := 0

	var search func() error
	search = func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		row, col, ok := work.FindEmpty()
		if !ok {
			count++
			return nil
		}

		for val := 1; val <= work.Size(); val++ {
			if count >= limit {
				return nil
			}
			if !work.IsValidPlacement(row, col, val) {
				continue
			}
			work.SetForce(row, col, val)
			err := search()
			work.Clear(row, col)
			if err != nil {
				return err
			}
		}
		return nil
	}

	if err := search(); err != nil {
		return count, err
	}
	return count, nil
}
