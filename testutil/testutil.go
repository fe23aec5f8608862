// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/sudoku-arena/cliparse"
	"github.com/danielhkuo/sudoku-arena/db"
	"github.com/danielhkuo/sudoku-arena/models"
)

// SetupTestDB opens a fresh in-memory sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3319,
		DatabaseURL:   ":memory:",
		DatabaseType:  "sqlite",
		TokenSecret:   "test-token-secret",
		AllowedOrigin: "*",
	}
}

// CreateTestUser inserts a user row and returns its ID
func CreateTestUser(t *testing.T, conn *sql.DB, id, name string) string {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO app_user (id, name, avatar_url, created_at)
		VALUES ($1, $2, $3, $4)
	`, id, name, "https://avatars.test/"+id, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// FakeConn records everything the engine pushes to one player. It satisfies
// the engine's connection contract without a socket.
type FakeConn struct {
	mu   sync.Mutex
	sent []any
}

func NewFakeConn() *FakeConn {
	return &FakeConn{}
}

func (c *FakeConn) Send(v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, v)
}

// Sent returns a copy of every payload received so far, in order.
func (c *FakeConn) Sent() []any {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]any, len(c.sent))
	copy(out, c.sent)
	return out
}

// Types returns the message tag of every payload received so far, in order.
func (c *FakeConn) Types(t *testing.T) []string {
	t.Helper()

	var types []string
	for _, v := range c.Sent() {
		raw, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("Failed to marshal sent payload %T: %v", v, err)
		}
		var tagged struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(raw, &tagged); err != nil {
			t.Fatalf("Failed to read type tag from %T: %v", v, err)
		}
		types = append(types, tagged.Type)
	}
	return types
}

// LastType returns the message tag of the most recent payload
func (c *FakeConn) LastType(t *testing.T) string {
	t.Helper()

	types := c.Types(t)
	if len(types) == 0 {
		t.Fatal("Expected at least one sent message, got none")
	}
	return types[len(types)-1]
}

// Reset discards every recorded payload
func (c *FakeConn) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = nil
}

// FinalizeCall is one recorded FinalizeMatch invocation.
type FinalizeCall struct {
	MatchID  string
	WinnerID string
	LoserID  string
	Draw     bool
}

// FakeStore is an in-memory Store with injectable per-call failures, so
// engine tests can exercise persistence-failure paths without a database.
type FakeStore struct {
	mu sync.Mutex

	Users map[string]models.UserProfile

	CreateMatchErr  error
	AddPlayerErr    error
	SaveSnapshotErr error
	FinalizeErr     error

	matches   map[string]models.Options
	players   map[string][]string
	snapshots map[string]models.Snapshot
	finalized []FinalizeCall
}

func NewFakeStore() *FakeStore {
	return &FakeStore{
		Users:     make(map[string]models.UserProfile),
		matches:   make(map[string]models.Options),
		players:   make(map[string][]string),
		snapshots: make(map[string]models.Snapshot),
	}
}

// AddUser registers a profile and returns its ID
func (f *FakeStore) AddUser(id, name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Users[id] = models.UserProfile{ID: id, Name: name, AvatarURL: "https://avatars.test/" + id}
	return id
}

func (f *FakeStore) GetUser(id string) (models.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.Users[id]
	if !ok {
		return models.UserProfile{}, fmt.Errorf("no such user %s", id)
	}
	return u, nil
}

func (f *FakeStore) CreateMatch(id string, opts models.Options) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CreateMatchErr != nil {
		return f.CreateMatchErr
	}
	f.matches[id] = opts
	return nil
}

func (f *FakeStore) AddPlayer(matchID, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.AddPlayerErr != nil {
		return f.AddPlayerErr
	}
	f.players[matchID] = append(f.players[matchID], userID)
	return nil
}

func (f *FakeStore) SaveSnapshot(matchID, userID string, snap models.Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SaveSnapshotErr != nil {
		return f.SaveSnapshotErr
	}
	f.snapshots[matchID+"/"+userID] = snap
	return nil
}

func (f *FakeStore) FinalizeMatch(matchID, winnerID, loserID string, draw bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FinalizeErr != nil {
		return f.FinalizeErr
	}
	f.finalized = append(f.finalized, FinalizeCall{
		MatchID:  matchID,
		WinnerID: winnerID,
		LoserID:  loserID,
		Draw:     draw,
	})
	return nil
}

// Snapshot returns the stored snapshot for a (match, user) pair, if any.
func (f *FakeStore) Snapshot(matchID, userID string) (models.Snapshot, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	snap, ok := f.snapshots[matchID+"/"+userID]
	return snap, ok
}

// Players returns the recorded membership for a match.
func (f *FakeStore) Players(matchID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.players[matchID]))
	copy(out, f.players[matchID])
	return out
}

// Finalized returns every recorded finalize call.
func (f *FakeStore) Finalized() []FinalizeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]FinalizeCall, len(f.finalized))
	copy(out, f.finalized)
	return out
}

// StubPuzzles returns a fixed puzzle/solution pair, making board layout and
// completion percentage deterministic in tests.
type StubPuzzles struct {
	Puzzle   string
	Solution string
	Err      error
}

func (s StubPuzzles) Generate(difficulty string) (string, string, error) {
	if s.Err != nil {
		return "", "", s.Err
	}
	return s.Puzzle, s.Solution, nil
}

// ValidSolution is a complete valid sudoku grid used by engine tests.
const ValidSolution = "123456789456789123789123456234567891567891234891234567345678912678912345912345678"

// PuzzleWithBlanks blanks the given cells of ValidSolution, producing a
// puzzle whose scorable cells are exactly those indices.
func PuzzleWithBlanks(indices ...int) string {
	b := []byte(ValidSolution)
	for _, i := range indices {
		b[i] = '-'
	}
	return string(b)
}
