// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package ws is the websocket transport in front of the game engine. Each
// connection is authenticated at upgrade time, bound to its user identity,
// and served by a read pump that routes JSON frames into sessions and a
// write pump that drains the outbound queue.
package ws
