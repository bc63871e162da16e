package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/git-akihakune/sudoku-solver/internal/board"
	"github.com/git-akihakune/sudoku-solver/internal/generator"
)

var (
	numPuzzles    int
	genSize       int
	genDifficulty string
	genSeed       int64
	genUnique     bool
	genTimeout    time.Duration
	outputFile    string
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Sudoku puzzles",
		Long: `Generate one or more Sudoku puzzles with a specified difficulty ratio.

Examples:
  sudoku-solver gen --difficulty 0.6
  sudoku-solver gen -n 5 --difficulty 0.4:0.6
  sudoku-solver gen -n 10 --unique --timeout 15s -o puzzles.html`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&numPuzzles, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().IntVar(&genSize, "size", generator.DefaultSize, "Board dimension (positive perfect square)")
	genCmd.Flags().StringVarP(&genDifficulty, "difficulty", "d", fmt.Sprint(generator.DefaultDifficulty), "Blank ratio 0-1 or range like 0.4:0.6")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed for reproducible puzzles (0 = random)")
	genCmd.Flags().BoolVar(&genUnique, "unique", false, "Only emit puzzles with a unique solution")
	genCmd.Flags().DurationVar(&genTimeout, "timeout", 10*time.Second, "Generation timeout per puzzle")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (e.g., puzzles.html)")

	rootCmd.AddCommand(genCmd)
}

// parseDifficultyRange parses a difficulty string which can be:
// - A single ratio: "0.6"
// - A range: "0.4:0.6"
// Returns min, max, and an error
func parseDifficultyRange(s string) (min, max float64, err error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		val, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid difficulty: %w", err)
		}
		return val, val, nil
	case 2:
		minVal, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid difficulty min: %w", err)
		}
		maxVal, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid difficulty max: %w", err)
		}
		if minVal > maxVal {
			return 0, 0, fmt.Errorf("difficulty min (%v) cannot be greater than max (%v)", minVal, maxVal)
		}
		return minVal, maxVal, nil
	}
	return 0, 0, fmt.Errorf("invalid difficulty format: %s (use format like '0.6' or '0.4:0.6')", s)
}

func runGen(cmd *cobra.Command, args []string) error {
	minDiff, maxDiff, err := parseDifficultyRange(genDifficulty)
	if err != nil {
		return err
	}
	if minDiff < 0 || maxDiff > 1 {
		return fmt.Errorf("difficulty range [%v, %v] must lie within [0, 1]", minDiff, maxDiff)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var puzzles []*board.Board
	var solutions []*board.Board
	outputHTML := outputFile != ""

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < numPuzzles; i++ {
		difficulty := minDiff
		if maxDiff > minDiff {
			difficulty = minDiff + rng.Float64()*(maxDiff-minDiff)
		}

		// Offset the seed per puzzle so a fixed seed still yields a
		// reproducible but distinct batch.
		seed := genSeed
		if seed != 0 {
			seed += int64(i)
		}

		gen, err := generator.New(&generator.Options{
			Size:         genSize,
			Difficulty:   difficulty,
			Seed:         seed,
			EnsureUnique: genUnique,
			Timeout:      genTimeout,
		})
		if err != nil {
			return err
		}

		puzzle, solution, err := gen.Generate(ctx)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		if outputHTML {
			puzzles = append(puzzles, puzzle)
			solutions = append(solutions, solution)
		} else {
			fmt.Printf("Puzzle #%d (Blanks: %d):\n", i+1, puzzle.EmptyCount())
			fmt.Println(puzzle.Format())
			fmt.Println("\nSolution:")
			fmt.Println(solution.Format())
			fmt.Println()
		}
	}

	if outputHTML {
		filename := outputFile
		if filepath.Ext(filename) != ".html" {
			filename = filename + ".html"
		}

		if err := generateHTML(filename, puzzles, solutions); err != nil {
			return fmt.Errorf("failed to write HTML file: %w", err)
		}
		fmt.Printf("Generated %d puzzle(s) in %s\n", numPuzzles, filename)
	}

	return nil
}

// generateHTML creates an HTML file with puzzles, one per page
func generateHTML(filename string, puzzles []*board.Board, solutions []*board.Board) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer file.Close()

	_, err = fmt.Fprintf(file, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Sudoku Puzzles</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .page {
            page-break-after: always;
            background-color: white;
            padding: 40px;
            margin-bottom: 20px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .page:last-child {
            page-break-after: auto;
        }
        h1 {
            color: #333;
            margin-bottom: 30px;
            text-align: center;
        }
        h2 {
            color: #666;
            margin-top: 20px;
            margin-bottom: 15px;
            font-size: 1.2em;
        }
        .sudoku-grid {
            display: inline-block;
            border: 3px solid #000;
            margin: 20px auto;
            font-family: 'Courier New', monospace;
            font-size: 24px;
            line-height: 1.5;
        }
        .sudoku-grid table {
            border-collapse: collapse;
            margin: 0 auto;
        }
        .sudoku-grid td {
            width: 40px;
            height: 40px;
            text-align: center;
            vertical-align: middle;
            border: 1px solid #333;
            padding: 0;
        }
        .sudoku-grid td.empty {
            color: #ccc;
        }
        @media print {
            body {
                background-color: white;
            }
            .page {
                margin-bottom: 0;
                box-shadow: none;
            }
        }
    </style>
</head>
<body>
`)
	if err != nil {
		return err
	}

	for i := 0; i < len(puzzles); i++ {
		_, err = fmt.Fprintf(file, `    <div class="page">
        <h1>Sudoku Puzzle #%d</h1>
        <h2>Puzzle</h2>
        %s
        <h2>Solution</h2>
        %s
    </div>
`, i+1, boardToHTML(puzzles[i]), boardToHTML(solutions[i]))
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(file, `</body>
</html>
`)
	return err
}

// boardToHTML converts a board to an HTML table representation.
// Box borders are drawn with inline styles so any perfect-square size works.
func boardToHTML(b *board.Board) string {
	size, boxSize := b.Size(), b.BoxSize()

	var sb strings.Builder
	sb.WriteString("<div class=\"sudoku-grid\"><table>")

	for row := 0; row < size; row++ {
		sb.WriteString("<tr>")
		for col := 0; col < size; col++ {
			val := b.Get(row, col)
			cellClass := ""
			cellContent := ""

			if val == board.EmptyCell {
				cellClass = "empty"
				cellContent = "·"
			} else {
				cellContent = fmt.Sprintf("%d", val)
			}

			var borders []string
			if (col+1)%boxSize == 0 && col != size-1 {
				borders = append(borders, "border-right:2px solid #000")
			}
			if (row+1)%boxSize == 0 && row != size-1 {
				borders = append(borders, "border-bottom:2px solid #000")
			}

			style := ""
			if len(borders) > 0 {
				style = fmt.Sprintf(" style=\"%s\"", strings.Join(borders, ";"))
			}
			sb.WriteString(fmt.Sprintf("<td class=\"%s\"%s>%s</td>", cellClass, style, cellContent))
		}
		sb.WriteString("</tr>")
	}

	sb.WriteString("</table></div>")
	return sb.String()
}
