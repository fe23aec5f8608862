// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"fmt"

	"github.com/danielhkuo/sudoku-arena/models"
)

// buildBoard turns an 81-char puzzle and solution into the initial cell
// template, the solution digits, and the count of blank (scorable) cells.
func buildBoard(puzzle, solution string) ([]models.Cell, []int, int, error) {
	if len(puzzle) != 81 || len(solution) != 81 {
		return nil, nil, 0, fmt.Errorf("expected 81-char puzzle and solution, got %d/%d", len(puzzle), len(solution))
	}

	board := make([]models.Cell, 81)
	digits := make([]int, 81)
	empty := 0

	for i := 0; i < 81; i++ {
		sc := solution[i]
		if sc < '1' || sc > '9' {
			return nil, nil, 0, fmt.Errorf("solution has non-digit %q at %d", sc, i)
		}
		digits[i] = int(sc - '0')

		pc := puzzle[i]
		if pc >= '1' && pc <= '9' {
			d := int(pc - '0')
			if d != digits[i] {
				return nil, nil, 0, fmt.Errorf("puzzle digit %d at %d disagrees with solution", d, i)
			}
			board[i] = models.Cell{Digit: &d, IsOnCorrectPosition: true, CanBeTyped: false}
			continue
		}

		empty++
		board[i] = models.Cell{Digit: nil, IsOnCorrectPosition: true, CanBeTyped: true}
	}

	return board, digits, empty, nil
}

// cloneBoard deep-copies a board so outbound payloads and snapshots never
// alias cells the engine keeps mutating.
func cloneBoard(board []models.Cell) []models.Cell {
	if board == nil {
		return nil
	}
	out := make([]models.Cell, len(board))
	for i, c := range board {
		out[i] = c
		if c.Digit != nil {
			d := *c.Digit
			out[i].Digit = &d
		}
	}
	return out
}
