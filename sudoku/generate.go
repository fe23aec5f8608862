// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sudoku

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/danielhkuo/sudoku-arena/models"
)

// Blank is the character used for empty cells in puzzle strings.
const Blank = '-'

// Generator produces puzzles with a unique solution.
type Generator struct{}

func NewGenerator() *Generator { return &Generator{} }

func targetGivens(difficulty string) int {
	switch difficulty {
	case models.DifficultyEasy:
		return 40
	case models.DifficultyMedium:
		return 34
	case models.DifficultyHard:
		return 28
	default:
		return 24 // expert
	}
}

// Generate returns an 81-char puzzle string (digits and '-' blanks) and the
// matching 81-char solution string for the given difficulty.
func (g *Generator) Generate(difficulty string) (puzzle, solution string, err error) {
	if !models.ValidDifficulty(difficulty) {
		return "", "", fmt.Errorf("unknown difficulty %q", difficulty)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// 1) full random solution
	var full grid
	if !fillRandom(rng, &full) {
		return "", "", fmt.Errorf("failed to fill solution grid")
	}

	// 2) carve out clues while preserving uniqueness
	puz := full
	positions := rng.Perm(81)
	target := targetGivens(difficulty)
	deadline := time.Now().Add(900 * time.Millisecond)

	givens := 81
	for _, pos := range positions {
		if givens <= target || time.Now().After(deadline) {
			break
		}
		r, c := pos/9, pos%9
		old := puz[r][c]
		puz[r][c] = 0
		if hasUniqueSolution(&puz) {
			givens--
		} else {
			puz[r][c] = old
		}
	}

	return encode(&puz), encode(&full), nil
}

// fillRandom solves an empty grid into a full valid solution by random ordering.
func fillRandom(rng *rand.Rand, b *grid) bool {
	var nums [9]uint8
	for i := 0; i < 9; i++ {
		nums[i] = uint8(i + 1)
	}

	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if r == 9 {
			return true
		}
		nr, nc := r, c+1
		if nc == 9 {
			nr, nc = r+1, 0
		}
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			if isValid(b, r, c, v) {
				b[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				b[r][c] = 0
			}
		}
		return false
	}
	return dfs(0, 0)
}

func encode(b *grid) string {
	out := make([]byte, 0, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] == 0 {
				out = append(out, Blank)
			} else {
				out = append(out, '0'+b[r][c])
			}
		}
	}
	return string(out)
}
