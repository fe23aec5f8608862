// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import "github.com/danielhkuo/sudoku-arena/models"

// FetchRoomData is the lobby-screen reconnection snapshot. It rebinds the
// caller's slot to the requesting connection and consumes the connection's
// identity binding.
func (s *Session) FetchRoomData(conn Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID, ok := s.binder.Resolve(conn)
	if !ok {
		return
	}
	p := s.slotByUser(userID)
	if p == nil {
		return
	}

	if s.ended {
		conn.Send(models.TypeOnly{Type: models.GameAlreadyEnded})
		return
	}
	if s.started {
		conn.Send(models.TypeOnly{Type: models.GameAlreadyStarted})
		return
	}

	p.conn = conn
	s.binder.Release(conn)

	data := models.RoomData{
		RoomID:        s.id,
		Role:          p.role,
		GameInitiated: p.ready,
	}
	if opp := s.opponentOf(p); opp != nil {
		data.Opponent = &models.RoomOpponent{
			ID:            opp.profile.ID,
			Name:          opp.profile.Name,
			AvatarURL:     opp.profile.AvatarURL,
			GameInitiated: opp.ready,
		}
	}

	conn.Send(models.RoomDataMsg{Type: models.DataFetched, Data: data})
}

// FetchBoardData is the board-screen reconnection snapshot: the caller gets
// their own private board back, never the opponent's.
func (s *Session) FetchBoardData(conn Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID, ok := s.binder.Resolve(conn)
	if !ok {
		return
	}
	p := s.slotByUser(userID)
	if p == nil {
		return
	}

	if s.ended {
		conn.Send(models.TypeOnly{Type: models.GameAlreadyEnded})
		return
	}
	if !s.started {
		conn.Send(models.TypeOnly{Type: models.GameNotStarted})
		return
	}

	p.conn = conn
	s.binder.Release(conn)

	opp := s.opponentOf(p)

	conn.Send(models.BoardDataMsg{
		Type: models.DataFetched,
		Data: models.BoardData{
			RoomID: s.id,
			Role:   p.role,
			Opponent: models.BoardOpponent{
				ID:                 opp.profile.ID,
				Name:               opp.profile.Name,
				AvatarURL:          opp.profile.AvatarURL,
				Mistakes:           opp.mistakes,
				PercentageComplete: opp.percent,
			},
			InitialGameState:   s.initialBoard,
			CurrentGameState:   cloneBoard(p.board),
			EmojiReactions:     Reactions,
			StartTime:          s.startTime.UnixMilli(),
			GameDuration:       s.duration.Milliseconds(),
			Mistakes:           p.mistakes,
			PercentageComplete: p.percent,
		},
	})
}
