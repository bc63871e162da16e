package board

import (
	"fmt"
	"strings"
)

// EmptyCell marks an unfilled cell.
const EmptyCell = 0

// InvalidCell is returned by Get for out-of-range coordinates.
const InvalidCell = -1

// MaxSize bounds the board dimension so that a single uint64 bitmask can
// track every digit in a unit.
const MaxSize = 64

// Board represents a size×size Sudoku grid. size must be a perfect square;
// boxes are boxSize×boxSize sub-grids where boxSize = sqrt(size).
//
// Cells hold values 0 (empty) or 1..size, stored row-major.
type Board struct {
	size    int
	boxSize int
	cells   []int

	// Bitmasks track placed digits in each unit (row/col/box).
	// Bit i represents digit i+1. This allows for O(1) validation.
	rowMasks []uint64
	colMasks []uint64
	boxMasks []uint64

	// posToBox maps a linear cell position to its box index. Precomputed at
	// construction; Clone shares the slice since it is never mutated.
	posToBox []int

	// emptyCount tracks unfilled cells for quick completion checks.
	// Once initialized, emptyCount should only be touched inside the
	// mutation methods.
	emptyCount int
}

// New creates an empty Board of the given dimension.
// size must be a positive perfect square no larger than MaxSize.
func New(size int) (*Board, error) {
	boxSize, err := checkSize(size)
	if err != nil {
		return nil, err
	}

	b := &Board{
		size:       size,
		boxSize:    boxSize,
		cells:      make([]int, size*size),
		rowMasks:   make([]uint64, size),
		colMasks:   make([]uint64, size),
		boxMasks:   make([]uint64, size),
		posToBox:   make([]int, size*size),
		emptyCount: size * size,
	}
	for pos := range b.posToBox {
		row, col := pos/size, pos%size
		b.posToBox[pos] = (row/boxSize)*boxSize + col/boxSize
	}
	return b, nil
}

// NewFromRows creates a Board from a literal grid. Values are range-checked
// but constraint violations are permitted: a board with duplicate clues is
// constructible so that a solver can search it and report no solution.
func NewFromRows(rows [][]int) (*Board, error) {
	b, err := New(len(rows))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != b.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidSize, r, len(row), b.size)
		}
		for c, val := range row {
			if val == EmptyCell {
				continue
			}
			if val < 1 || val > b.size {
				return nil, fmt.Errorf("%w: got %d at (%d,%d)", ErrInvalidValue, val, r, c)
			}
			b.SetForce(r, c, val)
		}
	}
	return b, nil
}

// NewFromString creates a classic 9×9 Board from an 81-character string.
// Use '.' or '0' for empty cells, '1'-'9' for filled cells.
// Placements are validated; an inconsistent string is rejected.
func NewFromString(s string) (*Board, error) {
	const classic = 9
	if len(s) != classic*classic {
		return nil, fmt.Errorf("string must be exactly %d characters, got %d", classic*classic, len(s))
	}

	b, err := New(classic)
	if err != nil {
		return nil, err
	}
	for pos := 0; pos < len(s); pos++ {
		ch := s[pos]
		switch ch {
		case '.', '0':
			// Empty cell, already initialized
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if err := b.Set(pos/classic, pos%classic, int(ch-'0')); err != nil {
				return nil, fmt.Errorf("invalid board at position %d: %w", pos, err)
			}
		default:
			return nil, fmt.Errorf("invalid character '%c' at position %d", ch, pos)
		}
	}
	return b, nil
}

// Clone creates an independent deep copy of the Board.
// The posToBox table is shared — it is immutable after construction.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	clone := *b
	clone.cells = append([]int(nil), b.cells...)
	clone.rowMasks = append([]uint64(nil), b.rowMasks...)
	clone.colMasks = append([]uint64(nil), b.colMasks...)
	clone.boxMasks = append([]uint64(nil), b.boxMasks...)
	return &clone
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// BoxSize returns the sub-grid dimension, sqrt(Size).
func (b *Board) BoxSize() int {
	return b.boxSize
}

// Set attempts to place a value 1..size at (row, col).
// Returns an error if the placement violates Sudoku rules or parameters
// are invalid.
func (b *Board) Set(row, col, val int) error {
	if err := b.validateCoords(row, col); err != nil {
		return err
	}
	if err := b.validateValue(val); err != nil {
		return err
	}
	if val == EmptyCell {
		b.Clear(row, col)
		return nil
	}
	if b.cells[row*b.size+col] != EmptyCell {
		b.Clear(row, col)
	}

	box := b.posToBox[row*b.size+col]
	mask := uint64(1) << (val - 1)

	if b.rowMasks[row]&mask != 0 {
		return fmt.Errorf("%w: value %d already in row %d", ErrIllegalMove, val, row)
	}
	if b.colMasks[col]&mask != 0 {
		return fmt.Errorf("%w: value %d already in column %d", ErrIllegalMove, val, col)
	}
	if b.boxMasks[box]&mask != 0 {
		return fmt.Errorf("%w: value %d already in box %d", ErrIllegalMove, val, box)
	}

	// Modify the board only once we know it's legal to do so
	b.cells[row*b.size+col] = val
	b.rowMasks[row] |= mask
	b.colMasks[col] |= mask
	b.boxMasks[box] |= mask
	b.emptyCount--

	return nil
}

// SetForce places a value without validation checks.
// Use only when certain the move is valid; backtracking relies on this for
// placements already vetted by IsValidPlacement.
func (b *Board) SetForce(row, col, val int) {
	box := b.posToBox[row*b.size+col]
	mask := uint64(1) << (val - 1)

	b.cells[row*b.size+col] = val
	b.rowMasks[row] |= mask
	b.colMasks[col] |= mask
	b.boxMasks[box] |= mask
	b.emptyCount--
}

// Clear removes the value at (row, col).
// No harm is done calling Clear on an already empty cell.
func (b *Board) Clear(row, col int) {
	val := b.cells[row*b.size+col]
	if val == EmptyCell {
		return
	}

	box := b.posToBox[row*b.size+col]
	mask := uint64(1) << (val - 1)

	b.cells[row*b.size+col] = EmptyCell
	b.rowMasks[row] &^= mask
	b.colMasks[col] &^= mask
	b.boxMasks[box] &^= mask
	b.emptyCount++
}

// Get returns the value at (row, col).
// Returns InvalidCell for out-of-range coordinates.
func (b *Board) Get(row, col int) int {
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		return InvalidCell
	}
	return b.cells[row*b.size+col]
}

// IsValidPlacement reports whether val may be placed at (row, col): val must
// not already appear anywhere in the row, the column, or the box containing
// the cell. The probed cell itself is not excluded from the scan, so callers
// must target an empty cell.
func (b *Board) IsValidPlacement(row, col, val int) bool {
	if row < 0 || row >= b.size || col < 0 || col >= b.size || val < 1 || val > b.size {
		return false
	}
	box := b.posToBox[row*b.size+col]
	mask := uint64(1) << (val - 1)
	return b.rowMasks[row]&mask == 0 &&
		b.colMasks[col]&mask == 0 &&
		b.boxMasks[box]&mask == 0
}

// FindEmpty returns the first empty cell in row-major order.
// ok is false when the board is completely filled.
func (b *Board) FindEmpty() (row, col int, ok bool) {
	if b.emptyCount == 0 {
		return 0, 0, false
	}
	for pos, val := range b.cells {
		if val == EmptyCell {
			return pos / b.size, pos % b.size, true
		}
	}
	return 0, 0, false
}

// EmptyCount returns the number of empty cells on the board.
func (b *Board) EmptyCount() int {
	return b.emptyCount
}

// IsComplete reports whether every cell is filled.
func (b *Board) IsComplete() bool {
	return b.emptyCount == 0
}

// String returns the board as a size² character string, one character per
// cell, row-major. Empty cells are '.', filled cells render in base 36
// ('1'-'9', then 'a' onward for larger boards).
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(len(b.cells))

	for _, cell := range b.cells {
		switch {
		case cell == EmptyCell:
			sb.WriteByte('.')
		case cell < 10:
			sb.WriteByte('0' + byte(cell))
		default:
			sb.WriteByte('a' + byte(cell-10))
		}
	}
	return sb.String()
}

// Format returns a human-readable board representation with grid lines
// separating boxes. Cell width adapts to the largest digit.
func (b *Board) Format() string {
	width := len(fmt.Sprint(b.size))

	var sb strings.Builder
	segment := strings.Repeat("-", b.boxSize*(width+1)+1)
	line := "+" + strings.Repeat(segment+"+", b.boxSize) + "\n"
	sb.WriteString(line)

	for row := 0; row < b.size; row++ {
		sb.WriteString("|")
		for col := 0; col < b.size; col++ {
			val := b.Get(row, col)
			if val == EmptyCell {
				fmt.Fprintf(&sb, " %*s", width, ".")
			} else {
				fmt.Fprintf(&sb, " %*d", width, val)
			}
			if (col+1)%b.boxSize == 0 {
				sb.WriteString(" |")
			}
		}
		sb.WriteString("\n")

		if (row+1)%b.boxSize == 0 {
			sb.WriteString(line)
		}
	}
	return sb.String()
}
