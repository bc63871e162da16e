package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/git-akihakune/sudoku-solver/internal/generator"
	"github.com/git-akihakune/sudoku-solver/internal/render"
	"github.com/git-akihakune/sudoku-solver/internal/session"
	"github.com/git-akihakune/sudoku-solver/internal/solver"
)

var (
	solveSize       int
	solveDifficulty float64
	solveSeed       int64
	solveDelay      time.Duration
	solvePause      time.Duration
	solveUnique     bool
	solveNoColor    bool
	solveQuiet      bool
	solveConfigPath string
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Generate a puzzle and watch it being solved",
		Long: `Generate a Sudoku puzzle and solve it by exhaustive backtracking,
redrawing the board after every placement and undo.

Examples:
  sudoku-solver solve
  sudoku-solver solve --difficulty 0.5 --delay 50ms
  sudoku-solver solve --size 16 --seed 42 --quiet`,
		RunE: runSolve,
	}

	solveCmd.Flags().IntVar(&solveSize, "size", generator.DefaultSize, "Board dimension (positive perfect square)")
	solveCmd.Flags().Float64VarP(&solveDifficulty, "difficulty", "d", generator.DefaultDifficulty, "Fraction of cells to blank, 0-1")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "Random seed for reproducible puzzles (0 = random)")
	solveCmd.Flags().DurationVar(&solveDelay, "delay", 100*time.Millisecond, "Pause after each placement (undos run at half)")
	solveCmd.Flags().DurationVar(&solvePause, "start-pause", 2*time.Second, "How long to show the initial board")
	solveCmd.Flags().BoolVar(&solveUnique, "unique", false, "Regenerate until the puzzle has a unique solution")
	solveCmd.Flags().BoolVar(&solveNoColor, "no-color", false, "Disable colored output")
	solveCmd.Flags().BoolVarP(&solveQuiet, "quiet", "q", false, "Skip animation, print only the result")
	solveCmd.Flags().StringVar(&solveConfigPath, "config", "", "YAML config file with defaults")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	if solveConfigPath != "" {
		cfg, err := loadConfig(solveConfigPath)
		if err != nil {
			return err
		}
		cfg.apply(cmd.Flags())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	gen, err := generator.New(&generator.Options{
		Size:         solveSize,
		Difficulty:   solveDifficulty,
		Seed:         solveSeed,
		EnsureUnique: solveUnique,
		Timeout:      30 * time.Second,
	})
	if err != nil {
		return err
	}

	genStart := time.Now()
	puzzle, _, err := gen.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	slog.Debug("puzzle generated",
		"size", solveSize,
		"blanks", puzzle.EmptyCount(),
		"duration", time.Since(genStart))

	opts := []session.Option{
		session.WithStrategy(solver.Backtracking{}),
	}
	if solveQuiet {
		opts = append(opts, session.WithRenderer(render.Noop{}))
	} else {
		term := render.NewTerminal(os.Stdout, puzzle)
		if solveNoColor {
			term.SetColor(false)
		}
		opts = append(opts,
			session.WithRenderer(term),
			session.WithPacing(solveDelay),
			session.WithStartPause(solvePause),
		)
	}

	solveStart := time.Now()
	solved, steps, err := session.New(puzzle, opts...).Run(ctx)
	switch {
	case errors.Is(err, solver.ErrNoSolution):
		fmt.Println("\nNo solution exists.")
		return nil
	case err != nil:
		return err
	}

	slog.Debug("puzzle solved", "steps", steps, "duration", time.Since(solveStart))
	if solveQuiet {
		fmt.Println(solved.Format())
	}
	fmt.Printf("\nSolved successfully in %d steps!\n", steps)
	return nil
}
