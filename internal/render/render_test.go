package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/git-akihakune/sudoku-solver/internal/board"
)

func testBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.NewFromRows([][]int{
		{1, 2, 0, 0},
		{3, 4, 0, 0},
		{0, 0, 3, 4},
		{0, 0, 1, 2},
	})
	require.NoError(t, err)
	return b
}

func TestTerminalRender(t *testing.T) {
	b := testBoard(t)

	var buf bytes.Buffer
	term := NewTerminal(&buf, b)
	term.Render(b, 42)

	out := buf.String()
	assert.Contains(t, out, "SUDOKU SOLVER")
	assert.Contains(t, out, "Steps: 42")
	assert.Contains(t, out, "| 1 2 |")
	assert.Contains(t, out, ".")
	assert.NotContains(t, out, clearScreen, "no screen clearing off-TTY")
	assert.NotContains(t, out, "\x1b[38;", "no color styling off-TTY")
}

func TestTerminalClearOverride(t *testing.T) {
	b := testBoard(t)

	var buf bytes.Buffer
	term := NewTerminal(&buf, b)
	term.SetClear(true)
	term.Render(b, 0)

	assert.True(t, strings.HasPrefix(buf.String(), clearScreen))
}

func TestTerminalGridShape(t *testing.T) {
	b := testBoard(t)

	var buf bytes.Buffer
	NewTerminal(&buf, b).Render(b, 0)

	lines := strings.Split(buf.String(), "\n")
	gridRows := 0
	for _, line := range lines {
		if strings.Contains(line, "|") && !strings.Contains(line, "SUDOKU") {
			gridRows++
		}
	}
	assert.Equal(t, 4, gridRows, "one grid line per board row")
}

func TestTerminalWideBoard(t *testing.T) {
	b, err := board.New(16)
	require.NoError(t, err)
	b.SetForce(0, 0, 16)

	var buf bytes.Buffer
	NewTerminal(&buf, b).Render(b, 0)

	assert.Contains(t, buf.String(), "| 16", "double-digit values keep alignment")
}

func TestNoopRender(t *testing.T) {
	assert.NotPanics(t, func() {
		Noop{}.Render(testBoard(t), 0)
	})
}
