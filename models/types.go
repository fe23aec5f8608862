// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Difficulty constants accepted by CREATE_GAME
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
	DifficultyExpert = "expert"
)

// Match status constants
const (
	MatchActive    = "active"
	MatchCompleted = "completed"
)

// Player roles
const (
	RoleCreator = "creator"
	RoleJoiner  = "joiner"
)

// TotalAllowedMistakes is the per-player mistake cap. Hitting it ends the
// match with the opponent as winner.
const TotalAllowedMistakes = 5

// Options are the match parameters chosen by the creator. Immutable after
// creation. GameTime is in minutes.
type Options struct {
	Difficulty string `json:"difficulty"`
	GameTime   int    `json:"gameTime"`
}

// Cell is one of the 81 board cells. The JSON field names are the wire
// contract with the client and must not change.
//
// A cell with a non-nil template digit is never typable and always marked
// correct. An editable cell starts {nil, true, true}.
type Cell struct {
	Digit               *int `json:"digit"`
	IsOnCorrectPosition bool `json:"isOnCorrectPosition"`
	CanBeTyped          bool `json:"canBeTyped"`
}

// Reaction is one entry of the fixed emoji reaction catalog.
type Reaction struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

// UserProfile is the identity data cached in a player slot for the lifetime
// of a match.
type UserProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

// Snapshot is the durable per-player match state, upserted keyed by
// (match, user) after every accepted move.
type Snapshot struct {
	InitialGameState   []Cell `json:"initialGameState"`
	Solution           []int  `json:"solution"`
	CurrentGameState   []Cell `json:"currentGameState"`
	Mistakes           int    `json:"mistakes"`
	PercentageComplete int    `json:"percentageComplete"`
}

// MatchResult is the post-game view of a finished match.
type MatchResult struct {
	ID         string   `json:"id"`
	Difficulty string   `json:"difficulty"`
	GameTime   int      `json:"gameTime"`
	Status     string   `json:"status"`
	WinnerID   *string  `json:"winnerId,omitempty"`
	Draw       bool     `json:"draw"`
	PlayerIDs  []string `json:"playerIds"`
}

// HTTP request/response types

type RegisterUserRequest struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

type RegisterUserResponse struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

type LeaderboardEntry struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Draws  int    `json:"draws"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ValidDifficulty reports whether d is one of the accepted difficulty labels.
func ValidDifficulty(d string) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert:
		return true
	}
	return false
}
