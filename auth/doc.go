// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides ID generation and session token signing.

# Session Tokens

Tokens are HMAC-SHA256 signatures over the user ID, issued when a user
registers and presented at websocket upgrade time:

	token := auth.SignUserToken(userID, cfg.TokenSecret)
	userID, err := auth.VerifyUserToken(token, cfg.TokenSecret)

Verification requires no server-side session state and uses constant-time
comparison.

# IDs

GenerateID produces random hex identifiers from crypto/rand. Match IDs use
google/uuid instead (see the game package).
*/
package auth
