// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the persistence layer the match engine writes through.

The engine never rolls back in-memory state when a write fails: players are
notified first and durability is best-effort. The Store interface exists so
the engine can be tested against an in-memory fake (see testutil); SQL is
the real implementation over database/sql.

Writes:

  - CreateMatch / AddPlayer: room creation and join membership
  - SaveSnapshot: per-player state upsert keyed (match, user)
  - FinalizeMatch: status + winner/draw + win/loss/draw counters, in one
    transaction
*/
package store
