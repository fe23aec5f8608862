// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and wire types for the match server.

# Domain Types

  - Options: difficulty + game time chosen at room creation
  - Cell: one board cell {digit, isOnCorrectPosition, canBeTyped}
  - Reaction: one emoji reaction catalog entry
  - UserProfile: cached player identity
  - Snapshot: durable per-player match state

# Wire Contract

messages.go enumerates every websocket message type exchanged with the
client, inbound (CREATE_GAME, JOIN_GAME, INIT_GAME, VERIFY_VALUE, ...) and
outbound (ROOM_CREATED, BOTH_USERS_GAME_INITIATED, GAME_ENDED, ...), plus
the payload structs. JSON field names there are frozen: the deployed client
reads them verbatim.

# HTTP Types

Request/response types for the small REST surface (user registration,
match results, leaderboard) live alongside the domain types.
*/
package models
