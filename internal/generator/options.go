package generator

import "time"

// DefaultDifficulty is the fraction of cells blanked when none is specified.
const DefaultDifficulty = 0.7

// DefaultSize is the classic 9×9 board dimension.
const DefaultSize = 9

// Options configures puzzle generation behavior.
type Options struct {
	// Size is the board dimension; must be a positive perfect square.
	Size int

	// Difficulty is the fraction of cells to blank, in [0, 1].
	// 1 blanks the entire board.
	Difficulty float64

	// Seed makes generation reproducible (0 = time-derived).
	Seed int64

	// Timeout limits total generation time. Mostly relevant with
	// EnsureUnique, which may regenerate repeatedly. 0 means no limit.
	Timeout time.Duration

	// EnsureUnique regenerates until the puzzle has exactly one solution.
	// Off by default: the base contract is removal-ratio only.
	EnsureUnique bool
}

// DefaultOptions returns standard generator options.
func DefaultOptions() *Options {
	return &Options{
		Size:       DefaultSize,
		Difficulty: DefaultDifficulty,
		Timeout:    10 * time.Second,
	}
}
