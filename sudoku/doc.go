// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sudoku generates puzzles for matches.

Generation fills an empty grid into a full random solution by shuffled
backtracking, then carves cells out in random order, keeping a removal only
if the puzzle still has exactly one solution. Carving stops at a
per-difficulty given-count target (easy 40, medium 34, hard 28, expert 24)
or after a wall-clock deadline, whichever comes first.

Puzzle and solution are 81-character strings: digits 1-9, with '-' for
blank puzzle cells.
*/
package sudoku
