// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import "github.com/danielhkuo/sudoku-arena/models"

// Reactions is the fixed emoji catalog, identical for every session.
var Reactions = []models.Reaction{
	{ID: 1, Label: "Big Brain", Emoji: "🧠"},
	{ID: 2, Label: "Close Call", Emoji: "😅"},
	{ID: 3, Label: "On Fire", Emoji: "🔥"},
	{ID: 4, Label: "Mind Blown", Emoji: "🤯"},
	{ID: 5, Label: "Well Played", Emoji: "👏"},
	{ID: 6, Label: "Too Slow", Emoji: "🐢"},
	{ID: 7, Label: "Victory!", Emoji: "🥳"},
	{ID: 8, Label: "Good Game", Emoji: "🤝"},
	{ID: 9, Label: "Oops!", Emoji: "❌"},
}

func reactionByID(id int) (models.Reaction, bool) {
	for _, r := range Reactions {
		if r.ID == id {
			return r, true
		}
	}
	return models.Reaction{}, false
}
