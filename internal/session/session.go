// Package session orchestrates one solve run: it hands the puzzle to a
// solving strategy and feeds every search event to a renderer, with
// optional pacing delays so a human can follow along.
package session

import (
	"context"
	"time"

	"github.com/git-akihakune/sudoku-solver/internal/board"
	"github.com/git-akihakune/sudoku-solver/internal/render"
	"github.com/git-akihakune/sudoku-solver/internal/solver"
)

// Session runs a solving strategy against a puzzle while driving a
// renderer. The renderer never sees the board under search: events are
// replayed onto a private display copy, keeping the algorithm and its
// visualization fully decoupled.
type Session struct {
	puzzle   *board.Board
	strategy solver.Strategy
	renderer render.Renderer

	startPause time.Duration
	placeDelay time.Duration
	undoDelay  time.Duration
}

// Option configures a Session.
type Option func(*Session)

// WithStrategy sets the solving algorithm.
func WithStrategy(s solver.Strategy) Option {
	return func(sess *Session) { sess.strategy = s }
}

// WithRenderer sets the display collaborator.
func WithRenderer(r render.Renderer) Option {
	return func(sess *Session) { sess.renderer = r }
}

// WithPacing sets the delay after each placement; undo frames run at half
// that delay, matching the faster rewind feel when the search retreats.
func WithPacing(place time.Duration) Option {
	return func(sess *Session) {
		sess.placeDelay = place
		sess.undoDelay = place / 2
	}
}

// WithStartPause sets how long the initial board stays on screen before
// the search begins.
func WithStartPause(d time.Duration) Option {
	return func(sess *Session) { sess.startPause = d }
}

// New creates a session for the given puzzle. The puzzle is cloned; the
// caller's board is never mutated.
func New(puzzle *board.Board, opts ...Option) *Session {
	s := &Session{
		puzzle:   puzzle.Clone(),
		renderer: render.Noop{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run renders the initial board, then drives the strategy to completion.
// Returns the solved board and the step count, solver.ErrNoSolver when no
// strategy was configured, solver.ErrNoSolution when the puzzle is
// unsatisfiable, or the context error on cancellation.
func (s *Session) Run(ctx context.Context) (*board.Board, int, error) {
	if s.strategy == nil {
		return nil, 0, solver.ErrNoSolver
	}

	s.renderer.Render(s.puzzle, 0)
	if err := sleep(ctx, s.startPause); err != nil {
		return nil, 0, err
	}

	display := s.puzzle.Clone()
	observer := func(ev solver.Event) {
		switch ev.Kind {
		case solver.EventPlace:
			display.SetForce(ev.Row, ev.Col, ev.Value)
			s.renderer.Render(display, ev.Step)
			sleep(ctx, s.placeDelay)
		case solver.EventUndo:
			display.Clear(ev.Row, ev.Col)
			s.renderer.Render(display, ev.Step)
			sleep(ctx, s.undoDelay)
		}
	}

	solved, steps, err := s.strategy.Solve(ctx, s.puzzle, observer)
	if err != nil {
		return nil, steps, err
	}

	s.renderer.Render(solved, steps)
	return solved, steps, nil
}

// sleep blocks for d or until the context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
