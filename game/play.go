// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import "github.com/danielhkuo/sudoku-arena/models"

// VerifyValue arbitrates one digit submission against the solution.
//
// Malformed or illegal submissions (bad index, template cell, unknown
// caller, non-typable cell) are silently ignored; policy rejections
// (ended, mistake cap, locked cell) are notified to the caller.
func (s *Session) VerifyValue(userID string, index, value int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= 81 || value < 1 || value > 9 {
		return
	}
	if s.initialBoard == nil || s.initialBoard[index].Digit != nil {
		return
	}

	p := s.slotByUser(userID)
	if p == nil || p.board == nil {
		return
	}

	if s.ended {
		p.send(models.TypeOnly{Type: models.GameAlreadyEnded})
		return
	}

	if p.mistakes == models.TotalAllowedMistakes {
		p.send(models.BoardUpdateMsg{
			Type:             models.YourMistakesComplete,
			CurrentGameState: cloneBoard(p.board),
			Mistakes:         p.mistakes,
		})
		return
	}

	cell := &p.board[index]
	if cell.IsOnCorrectPosition && !cell.CanBeTyped {
		p.send(models.TypeOnly{Type: models.AlreadyOnCorrectPosition})
		return
	}
	if !cell.CanBeTyped {
		return
	}

	v := value
	cell.Digit = &v
	opp := s.opponentOf(p)

	if s.solution[index] != value {
		p.mistakes++
		cell.IsOnCorrectPosition = false

		if p.mistakes == models.TotalAllowedMistakes {
			p.send(models.BoardUpdateMsg{
				Type:             models.YourMistakesComplete,
				CurrentGameState: cloneBoard(p.board),
				Mistakes:         p.mistakes,
			})
			if opp != nil {
				opp.send(models.OpponentMistakesCompleteMsg{
					Type:             models.OpponentMistakesComplete,
					OpponentMistakes: p.mistakes,
				})
			}
			s.persistAsync(p)
			s.endLocked(opp, models.MistakesComplete)
			return
		}

		p.send(models.BoardUpdateMsg{
			Type:             models.WrongCell,
			CurrentGameState: cloneBoard(p.board),
			Mistakes:         p.mistakes,
		})
		if opp != nil {
			opp.send(models.OpponentMistakeMsg{
				Type:     models.OpponentMistake,
				Mistakes: p.mistakes,
			})
		}
		s.persistAsync(p)
		return
	}

	p.correct++
	cell.CanBeTyped = false
	cell.IsOnCorrectPosition = true
	p.percent = percentComplete(p.correct, s.emptyCells)
	s.persistAsync(p)

	if p.percent == 100 {
		s.endLocked(p, models.BoardComplete)
		return
	}

	p.send(models.CorrectCellMsg{
		Type:               models.CorrectCell,
		PercentageComplete: p.percent,
		CurrentGameState:   cloneBoard(p.board),
	})
	if opp != nil {
		opp.send(models.OpponentCorrectCellMsg{
			Type:               models.OpponentCorrectCell,
			PercentageComplete: p.percent,
		})
	}
}

// ClearValue blanks a cell the player typed. Mistake and progress counters
// are never decremented by a clear.
func (s *Session) ClearValue(userID string, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= 81 {
		return
	}

	p := s.slotByUser(userID)
	if p == nil || p.board == nil {
		return
	}

	if s.ended {
		p.send(models.TypeOnly{Type: models.GameAlreadyEnded})
		return
	}

	cell := &p.board[index]
	if cell.IsOnCorrectPosition && !cell.CanBeTyped {
		p.send(models.TypeOnly{Type: models.AlreadyOnCorrectPosition})
		return
	}
	if cell.Digit == nil {
		return
	}

	cell.Digit = nil
	cell.CanBeTyped = true
	cell.IsOnCorrectPosition = true
	s.persistAsync(p)

	p.send(models.CellClearedMsg{
		Type:             models.CellCleared,
		CurrentGameState: cloneBoard(p.board),
	})
}
