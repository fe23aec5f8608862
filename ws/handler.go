// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ws

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/danielhkuo/sudoku-arena/auth"
	"github.com/danielhkuo/sudoku-arena/cliparse"
	"github.com/danielhkuo/sudoku-arena/game"
	"github.com/danielhkuo/sudoku-arena/identity"
)

// Handler upgrades authenticated HTTP requests into game connections.
type Handler struct {
	hub      *Hub
	registry *game.Registry
	binder   *identity.Binder
	cfg      cliparse.Config
	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub, registry *game.Registry, binder *identity.Binder, cfg cliparse.Config) *Handler {
	return &Handler{
		hub:      hub,
		registry: registry,
		binder:   binder,
		cfg:      cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if cfg.AllowedOrigin == "" || cfg.AllowedOrigin == "*" {
					return true
				}
				return r.Header.Get("Origin") == cfg.AllowedOrigin
			},
		},
	}
}

// ServeWS authenticates the signed user token from the query string, upgrades
// the connection, and binds the connection to the verified identity.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	userID, err := auth.VerifyUserToken(token, h.cfg.TokenSecret)
	if err != nil {
		slog.Warn("websocket rejected: invalid token", "remote", r.RemoteAddr)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "user_id", userID, "error", err)
		return
	}

	client := NewClient(h.hub, conn, h.registry, h.binder, userID)
	h.hub.Register(client)
	h.binder.Bind(client, userID)

	slog.Info("websocket connected", "user_id", userID, "remote", r.RemoteAddr)

	go client.WritePump()
	go client.ReadPump()
}
