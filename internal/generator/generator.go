package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/git-akihakune/sudoku-solver/internal/board"
	"github.com/git-akihakune/sudoku-solver/internal/solver"
)

var (
	ErrInvalidDifficulty = errors.New("difficulty must be between 0 and 1")
	ErrGenerationFailed  = errors.New("failed to generate valid puzzle")

	// ErrSeedUnsolvable flags a freshly seeded grid the solver could not
	// complete. Diagonal boxes share no constraints, so a correct seeding is
	// always completable; hitting this error means a bug in the seeding code,
	// not a property of the puzzle.
	ErrSeedUnsolvable = errors.New("internal error: seeded board has no completion")
)

// Generator creates Sudoku puzzles by filling a complete grid and then
// blanking a fraction of its cells.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

// New creates a puzzle generator with the given options.
func New(options *Options) (*Generator, error) {
	if options == nil {
		options = DefaultOptions()
	}
	if options.Difficulty < 0 || options.Difficulty > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidDifficulty, options.Difficulty)
	}
	if _, err := board.New(options.Size); err != nil {
		return nil, err
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}, nil
}

// Generate creates a new Sudoku puzzle.
// Returns the puzzle and the full solution it was derived from. The two
// boards are independent copies; the solution is complete and valid, the
// puzzle has floor(size²·difficulty) cells blanked.
func (g *Generator) Generate(ctx context.Context) (puzzle, solution *board.Board, err error) {
	start := time.Now()

	for {
		if g.options.Timeout > 0 && time.Since(start) >= g.options.Timeout {
			return nil, nil, ErrGenerationFailed
		}

		solution, err = g.generateSolution(ctx)
		if err != nil {
			return nil, nil, err
		}

		puzzle = g.removeCells(solution)

		if g.options.EnsureUnique {
			count, err := solver.CountSolutions(ctx, puzzle, 2)
			if err != nil {
				return nil, nil, err
			}
			if count != 1 {
				continue
			}
		}

		return puzzle, solution, nil
	}
}

// generateSolution produces a complete valid grid: the diagonal boxes are
// seeded with independent random permutations, then the solver's
// backtracking fills the rest.
func (g *Generator) generateSolution(ctx context.Context) (*board.Board, error) {
	b, err := board.New(g.options.Size)
	if err != nil {
		return nil, err
	}
	g.fillDiagonalBoxes(b)

	s := solver.New(b, &solver.Options{Timeout: g.options.Timeout})
	solved, err := s.Solve(ctx)
	if err != nil {
		if errors.Is(err, solver.ErrNoSolution) {
			return nil, fmt.Errorf("%w: %s", ErrSeedUnsolvable, b)
		}
		return nil, err
	}
	return solved, nil
}

// fillDiagonalBoxes fills each box along the main diagonal with a random
// permutation of 1..size. The diagonal boxes pairwise share no row, column,
// or box, so they can be filled independently without validation.
func (g *Generator) fillDiagonalBoxes(b *board.Board) {
	size, boxSize := b.Size(), b.BoxSize()

	for corner := 0; corner < size; corner += boxSize {
		perm := g.rng.Perm(size)
		for i, v := range perm {
			b.SetForce(corner+i/boxSize, corner+i%boxSize, v+1)
		}
	}
}

// removeCells blanks floor(size²·difficulty) cells on a copy of the solved
// grid: the full coordinate list is shuffled and a prefix zeroed. The input
// board is left untouched.
func (g *Generator) removeCells(solution *board.Board) *board.Board {
	puzzle := solution.Clone()
	size := puzzle.Size()

	target := int(float64(size*size) * g.options.Difficulty)
	for _, pos := range g.rng.Perm(size * size)[:target] {
		puzzle.Clear(pos/size, pos%size)
	}
	return puzzle
}

// Generate is a convenience function for one-off generation with default
// options at the given difficulty.
func Generate(ctx context.Context, difficulty float64) (*board.Board, *board.Board, error) {
	opts := DefaultOptions()
	opts.Difficulty = difficulty
	gen, err := New(opts)
	if err != nil {
		return nil, nil, err
	}
	return gen.Generate(ctx)
}
