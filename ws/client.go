// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ws

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/danielhkuo/sudoku-arena/game"
	"github.com/danielhkuo/sudoku-arena/identity"
	"github.com/danielhkuo/sudoku-arena/models"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 4096
)

// Client is one authenticated websocket connection. It satisfies the game
// engine's connection contract: Send enqueues without blocking, and a full
// queue drops the payload rather than stalling a session.
type Client struct {
	userID string
	hub    *Hub
	conn   *websocket.Conn
	send   chan any

	registry *game.Registry
	binder   *identity.Binder
}

func NewClient(hub *Hub, conn *websocket.Conn, registry *game.Registry, binder *identity.Binder, userID string) *Client {
	return &Client{
		userID:   userID,
		hub:      hub,
		conn:     conn,
		send:     make(chan any, 64),
		registry: registry,
		binder:   binder,
	}
}

// Send enqueues a payload for the write pump.
func (c *Client) Send(v any) {
	select {
	case c.send <- v:
	default:
		slog.Warn("client send queue full, dropping message", "user_id", c.userID)
	}
}

// ReadPump pumps frames from the websocket into the game engine. It owns
// the connection's read side and cleans up the client on exit.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.binder.Release(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				slog.Error("websocket read failed", "user_id", c.userID, "error", err)
			}
			break
		}

		var frame models.Frame
		if err := json.Unmarshal(message, &frame); err != nil {
			slog.Warn("dropping malformed frame", "user_id", c.userID, "error", err)
			continue
		}

		c.handleFrame(frame)
	}
}

// WritePump pumps queued payloads onto the websocket and keeps the
// connection alive with pings. It owns the connection's write side.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case v, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			data, err := json.Marshal(v)
			if err != nil {
				slog.Error("failed to marshal outbound payload", "user_id", c.userID, "error", err)
				continue
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleFrame routes one inbound frame to the engine. Unknown room IDs and
// unknown frame types are dropped; the engine handles everything else.
func (c *Client) handleFrame(frame models.Frame) {
	switch frame.Type {
	case models.CreateGame:
		c.registry.CreateSession(c, models.Options{
			Difficulty: frame.Params.Difficulty,
			GameTime:   frame.Params.GameTime,
		})

	case models.JoinGame:
		s, ok := c.registry.Get(frame.Params.RoomID)
		if !ok {
			c.Send(models.TypeOnly{Type: models.RoomJoinFailed})
			return
		}
		s.Join(c)

	case models.InitGame:
		if s, ok := c.registry.Get(frame.Params.RoomID); ok {
			s.Init(c)
		}

	case models.VerifyValue:
		s, ok := c.registry.Get(frame.Params.RoomID)
		if !ok || frame.Params.Index == nil {
			return
		}
		s.VerifyValue(c.userID, *frame.Params.Index, frame.Params.Value)

	case models.ClearValue:
		s, ok := c.registry.Get(frame.Params.RoomID)
		if !ok || frame.Params.Index == nil {
			return
		}
		s.ClearValue(c.userID, *frame.Params.Index)

	case models.EndTimer:
		if s, ok := c.registry.Get(frame.Params.RoomID); ok {
			s.EndTimer(c.userID)
		}

	case models.SendReaction:
		if s, ok := c.registry.Get(frame.Params.RoomID); ok {
			s.SendReaction(c.userID, frame.Params.ReactionID)
		}

	case models.FetchGameRoomData:
		if s, ok := c.registry.Get(frame.Params.RoomID); ok {
			s.FetchRoomData(c)
		}

	case models.FetchGameBoardScreenData:
		if s, ok := c.registry.Get(frame.Params.RoomID); ok {
			s.FetchBoardData(c)
		}

	default:
		slog.Warn("unknown frame type", "user_id", c.userID, "type", frame.Type)
	}
}
