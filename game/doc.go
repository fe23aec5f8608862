// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package game is the authoritative session engine for two-player sudoku
races. For each match it owns board state, mistake counts, completion
percentage, win/draw arbitration, and the ready handshake that brings two
independently-connecting clients into a synchronized start.

# Lifecycle

	Registry.CreateSession → Session.Join → Session.Init (×2) → running
	→ ended (board complete | mistake cap | timer expiry)

A session is a single logical actor: every operation serializes on the
session mutex, so a mistake-cap check can never race a concurrent digit
submission from the same player. Distinct sessions share nothing.

# End triggers

Exactly one of three triggers ends a match, guarded by a monotonic ended
flag. Board completion and mistake exhaustion declare a winner outright;
timer expiry compares completion percentage, then mistakes, then draws.
After ended is set, every further mutating call replies GAME_ALREADY_ENDED
and changes nothing.

# Persistence

In-memory state and client notifications always come first; durable writes
are asynchronous and their failures are logged, never rolled back. The
three exceptions that surface a write failure to the player are room
creation, joining, and the ready snapshot.

# Reconnection

FetchRoomData and FetchBoardData rebind the caller's slot to the requesting
connection and return the caller's own private board, supporting a refresh
mid-match without losing state.
*/
package game
