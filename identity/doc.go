// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity maps live connections to authenticated user IDs.

The websocket upgrade handler verifies the session token and binds the new
connection. The match engine consumes the binding (resolve, then release)
when it allocates a player slot or rebinds a reconnecting player. A binding
therefore lives only between upgrade and the first game operation on that
connection.
*/
package identity
