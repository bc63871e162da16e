// Package render draws board snapshots to a terminal. It is presentation
// glue: the solving core only ever sees the Renderer interface.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/git-akihakune/sudoku-solver/internal/board"
)

// Renderer displays one board snapshot together with the solver's step
// counter. Implementations must not mutate the board.
type Renderer interface {
	Render(b *board.Board, steps int)
}

// Noop discards every snapshot. Used for headless runs and tests.
type Noop struct{}

func (Noop) Render(*board.Board, int) {}

// clearScreen moves the cursor home and wipes the terminal.
const clearScreen = "\x1b[2J\x1b[H"

// Terminal renders boards as a styled text grid, redrawing in place by
// clearing the screen before each frame. Clue digits and solver-placed
// digits are styled differently so the search is visible.
type Terminal struct {
	w     io.Writer
	clues *board.Board
	color bool
	clear bool

	headerStyle lipgloss.Style
	clueStyle   lipgloss.Style
	placedStyle lipgloss.Style
	emptyStyle  lipgloss.Style
}

// NewTerminal creates a renderer writing to w. clues is the initial puzzle;
// cells filled there are styled as givens, everything else as solver
// placements. Styling and screen clearing are enabled only when w is a TTY.
func NewTerminal(w io.Writer, clues *board.Board) *Terminal {
	t := &Terminal{
		w:           w,
		clues:       clues.Clone(),
		headerStyle: lipgloss.NewStyle().Bold(true),
		clueStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		placedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		emptyStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		t.color = true
		t.clear = true
	}
	return t
}

// SetColor overrides TTY autodetection for digit styling.
func (t *Terminal) SetColor(enabled bool) {
	t.color = enabled
}

// SetClear overrides TTY autodetection for in-place redrawing.
func (t *Terminal) SetClear(enabled bool) {
	t.clear = enabled
}

// Render draws one frame: optional screen clear, header with the step
// counter, then the grid with box separators.
func (t *Terminal) Render(b *board.Board, steps int) {
	var sb strings.Builder

	if t.clear {
		sb.WriteString(clearScreen)
	}
	sb.WriteString("\n  ")
	sb.WriteString(t.style(t.headerStyle, fmt.Sprintf("SUDOKU SOLVER  |  Steps: %d", steps)))
	sb.WriteString("\n\n")

	size, boxSize := b.Size(), b.BoxSize()
	width := len(fmt.Sprint(size))

	segment := strings.Repeat("-", boxSize*(width+1)+1)
	hLine := "  " + strings.TrimSuffix(strings.Repeat(segment+"+", boxSize), "+")

	for row := 0; row < size; row++ {
		if row%boxSize == 0 {
			sb.WriteString(hLine)
			sb.WriteString("\n")
		}

		sb.WriteString("  ")
		for col := 0; col < size; col++ {
			if col%boxSize == 0 {
				sb.WriteString("| ")
			}
			sb.WriteString(t.cell(b, row, col, width))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(hLine)
	sb.WriteString("\n\n")

	io.WriteString(t.w, sb.String())
}

// cell formats a single cell, padded to width.
func (t *Terminal) cell(b *board.Board, row, col, width int) string {
	val := b.Get(row, col)
	if val == board.EmptyCell {
		return t.style(t.emptyStyle, fmt.Sprintf("%*s", width, "."))
	}

	text := fmt.Sprintf("%*d", width, val)
	if t.clues != nil && t.clues.Get(row, col) != board.EmptyCell {
		return t.style(t.clueStyle, text)
	}
	return t.style(t.placedStyle, text)
}

func (t *Terminal) style(s lipgloss.Style, text string) string {
	if !t.color {
		return text
	}
	return s.Render(text)
}
