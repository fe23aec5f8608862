// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/sudoku-arena/auth"
	"github.com/danielhkuo/sudoku-arena/cliparse"
	"github.com/danielhkuo/sudoku-arena/middleware"
	"github.com/danielhkuo/sudoku-arena/models"
)

type UserHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewUserHandler(db *sql.DB, cfg cliparse.Config) *UserHandler {
	return &UserHandler{db: db, cfg: cfg}
}

// Register handles POST /users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if len(req.Name) > 64 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name too long")
		return
	}

	userID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate user ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO app_user (id, name, avatar_url, created_at)
		VALUES ($1, $2, $3, $4)
	`, userID, req.Name, req.AvatarURL, time.Now())
	if err != nil {
		slog.Error("failed to insert user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	slog.Info("user registered", "user_id", userID, "name", req.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterUserResponse{
		UserID: userID,
		Token:  auth.SignUserToken(userID, h.cfg.TokenSecret),
	})
}

// GetProfile handles GET /users/{id}
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}

	var profile models.UserProfile
	err := h.db.QueryRow(`
		SELECT id, name, avatar_url FROM app_user WHERE id = $1
	`, userID).Scan(&profile.ID, &profile.Name, &profile.AvatarURL)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, profile)
}
