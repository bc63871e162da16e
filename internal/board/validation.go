package board

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidSize     = errors.New("size must be a positive perfect square")
	ErrInvalidPosition = errors.New("position out of bounds")
	ErrInvalidValue    = errors.New("value out of range")
	ErrIllegalMove     = errors.New("move violates Sudoku constraints")
)

// checkSize validates a board dimension and returns the box size.
func checkSize(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if size > MaxSize {
		return 0, fmt.Errorf("%w: got %d, maximum supported size is %d", ErrInvalidSize, size, MaxSize)
	}
	boxSize := int(math.Sqrt(float64(size)))
	if boxSize*boxSize != size {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	return boxSize, nil
}

// IsValid reports whether the board satisfies Sudoku constraints.
// Empty cells are ignored for validation.
//
// The scan rebuilds unit masks from scratch rather than trusting the cached
// ones: boards loaded via NewFromRows may carry duplicate clues, which the
// cached masks cannot represent.
func (b *Board) IsValid() bool {
	rowCheck := make([]uint64, b.size)
	colCheck := make([]uint64, b.size)
	boxCheck := make([]uint64, b.size)

	for pos, val := range b.cells {
		if val == EmptyCell {
			continue
		}

		row, col, box := pos/b.size, pos%b.size, b.posToBox[pos]
		mask := uint64(1) << (val - 1)

		if rowCheck[row]&mask != 0 ||
			colCheck[col]&mask != 0 ||
			boxCheck[box]&mask != 0 {
			return false
		}

		rowCheck[row] |= mask
		colCheck[col] |= mask
		boxCheck[box] |= mask
	}

	return true
}

// validateCoords checks that (row, col) is within board bounds.
func (b *Board) validateCoords(row, col int) error {
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		return fmt.Errorf("%w: (%d,%d) must be within [0,%d)", ErrInvalidPosition, row, col, b.size)
	}
	return nil
}

// validateValue checks that val is EmptyCell or within 1..size.
func (b *Board) validateValue(val int) error {
	if val != EmptyCell && (val < 1 || val > b.size) {
		return fmt.Errorf("%w: got %d, want 1-%d", ErrInvalidValue, val, b.size)
	}
	return nil
}
