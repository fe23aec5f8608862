// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sudoku

type grid [9][9]uint8

// isValid checks row/col/box constraints for placing v at (r, c).
func isValid(b *grid, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b[r][i] == v || b[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

func findEmpty(b *grid) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// countSolutions counts solutions of b by backtracking, stopping at limit.
func countSolutions(b *grid, limit int) int {
	r, c, ok := findEmpty(b)
	if !ok {
		return 1
	}

	count := 0
	for v := uint8(1); v <= 9; v++ {
		if !isValid(b, r, c, v) {
			continue
		}
		b[r][c] = v
		count += countSolutions(b, limit-count)
		b[r][c] = 0
		if count >= limit {
			break
		}
	}
	return count
}

// hasUniqueSolution reports whether b has exactly one solution.
func hasUniqueSolution(b *grid) bool {
	work := *b
	return countSolutions(&work, 2) == 1
}
