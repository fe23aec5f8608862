// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import "sync"

// Binder is a short-lived table mapping live connections to authenticated
// user IDs. The transport binds a connection when its token is verified at
// upgrade time; the game engine resolves the binding when allocating a
// player slot or rebinding on reconnect, then releases it. Bindings are
// one-shot: resolve-then-release, never long-lived.
type Binder struct {
	mu       sync.Mutex
	bindings map[any]string
}

func NewBinder() *Binder {
	return &Binder{bindings: make(map[any]string)}
}

// Bind associates conn with userID, replacing any previous binding.
func (b *Binder) Bind(conn any, userID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bindings[conn] = userID
}

// Resolve returns the user ID bound to conn, if any.
func (b *Binder) Resolve(conn any) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id, ok := b.bindings[conn]
	return id, ok
}

// Release removes the binding for conn.
func (b *Binder) Release(conn any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.bindings, conn)
}

// Len returns the number of live bindings.
func (b *Binder) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.bindings)
}
