package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/git-akihakune/sudoku-solver/internal/board"
)

// A classic, solvable Sudoku (0 = empty).
var sample = [][]int{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func mustBoard(t *testing.T, rows [][]int) *board.Board {
	t.Helper()
	b, err := board.NewFromRows(rows)
	require.NoError(t, err)
	return b
}

func TestSolveClassic(t *testing.T) {
	puzzle := mustBoard(t, sample)
	s := New(puzzle, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	solved, err := s.Solve(ctx)
	require.NoError(t, err)
	assert.True(t, solved.IsComplete())
	assert.True(t, solved.IsValid())
	assert.Positive(t, s.Steps())

	// Clues survive into the solution.
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if v := puzzle.Get(row, col); v != board.EmptyCell {
				assert.Equal(t, v, solved.Get(row, col))
			}
		}
	}

	// The caller's board is never touched.
	assert.Equal(t, mustBoard(t, sample).String(), puzzle.String())
}

func TestSolveAlreadyComplete(t *testing.T) {
	full := mustBoard(t, [][]int{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	})

	var events []Event
	s := New(full, &Options{Observer: func(ev Event) { events = append(events, ev) }})

	solved, err := s.Solve(context.Background())
	require.NoError(t, err)
	assert.True(t, solved.IsComplete())

	// One visit per cell, all skips: size² steps, zero placements.
	assert.Equal(t, 16, s.Steps())
	assert.Empty(t, events)
}

func TestSolveUnsatisfiable(t *testing.T) {
	// Two 1s in the top row: no completion exists, and the solver must
	// discover that by exhausting the search rather than crashing.
	b := mustBoard(t, [][]int{
		{1, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	_, err := New(b, nil).Solve(context.Background())
	assert.ErrorIs(t, err, ErrNoSolution)
}

func TestSolveDiagonalSeeded4x4(t *testing.T) {
	// Diagonal boxes filled, off-diagonal empty — the generator's seed shape.
	b := mustBoard(t, [][]int{
		{1, 2, 0, 0},
		{3, 4, 0, 0},
		{0, 0, 3, 4},
		{0, 0, 1, 2},
	})

	solved, err := New(b, nil).Solve(context.Background())
	require.NoError(t, err)
	assert.True(t, solved.IsComplete())
	assert.True(t, solved.IsValid())
}

func TestObserverEvents(t *testing.T) {
	b := mustBoard(t, [][]int{
		{1, 2, 0, 0},
		{3, 4, 0, 0},
		{0, 0, 3, 4},
		{0, 0, 1, 2},
	})
	emptyBefore := b.EmptyCount()

	var places, undos int
	var lastStep int
	s := New(b, &Options{Observer: func(ev Event) {
		switch ev.Kind {
		case EventPlace:
			places++
		case EventUndo:
			undos++
		}
		assert.GreaterOrEqual(t, ev.Step, lastStep, "steps are monotonic")
		lastStep = ev.Step
		assert.NotZero(t, ev.Value)
	}})

	_, err := s.Solve(context.Background())
	require.NoError(t, err)

	// Every undone placement pairs with an undo; the surviving placements
	// are exactly the cells that were empty at the start.
	assert.Equal(t, emptyBefore, places-undos)
}

func TestSolveCancellation(t *testing.T) {
	b, err := board.New(9)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = New(b, nil).Solve(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolveTimeout(t *testing.T) {
	// An empty 16×16 board is far beyond what row-major brute force can
	// finish in 50ms, so the deadline always fires first.
	b, err := board.New(16)
	require.NoError(t, err)

	_, err = New(b, &Options{Timeout: 50 * time.Millisecond}).Solve(context.Background())
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestBacktrackingStrategy(t *testing.T) {
	puzzle := mustBoard(t, sample)

	solved, steps, err := Backtracking{}.Solve(context.Background(), puzzle, nil)
	require.NoError(t, err)
	assert.True(t, solved.IsComplete())
	assert.True(t, solved.IsValid())
	assert.Positive(t, steps)
	assert.Equal(t, mustBoard(t, sample).String(), puzzle.String())
}

func TestSolveDeterministic(t *testing.T) {
	first, err := New(mustBoard(t, sample), nil).Solve(context.Background())
	require.NoError(t, err)
	second, err := New(mustBoard(t, sample), nil).Solve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String(),
		"row-major ascending search has no randomness")
}

func TestCountSolutions(t *testing.T) {
	t.Run("unique classic puzzle", func(t *testing.T) {
		count, err := CountSolutions(context.Background(), mustBoard(t, sample), 2)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("empty board hits the limit", func(t *testing.T) {
		b, err := board.New(4)
		require.NoError(t, err)
		count, err := CountSolutions(context.Background(), b, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("unsatisfiable board", func(t *testing.T) {
		b := mustBoard(t, [][]int{
			{1, 1, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		})
		count, err := CountSolutions(context.Background(), b, 2)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("input board untouched", func(t *testing.T) {
		b := mustBoard(t, sample)
		_, err := CountSolutions(context.Background(), b, 2)
		require.NoError(t, err)
		assert.Equal(t, mustBoard(t, sample).String(), b.String())
	})
}
