package main

import "github.com/git-akihakune/sudoku-solver/cmd"

func main() {
	cmd.Execute()
}
