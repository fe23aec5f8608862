// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/sudoku-arena/models"
)

func TestWithLogging(t *testing.T) {
	handlerCalled := false
	testHandler := func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	}

	wrappedHandler := WithLogging(testHandler)

	req := httptest.NewRequest("GET", "/test-path", nil)
	w := httptest.NewRecorder()
	wrappedHandler(w, req)

	if !handlerCalled {
		t.Error("Expected handler to be called")
	}
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "success" {
		t.Errorf("Expected body 'success', got '%s'", w.Body.String())
	}
}

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusCreated, models.RegisterUserResponse{UserID: "u1", Token: "t1"})

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %s", ct)
	}

	var resp models.RegisterUserResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.UserID != "u1" || resp.Token != "t1" {
		t.Errorf("Unexpected response: %+v", resp)
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusBadRequest, "name is required")

	var resp models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error != http.StatusText(http.StatusBadRequest) {
		t.Errorf("Expected error %q, got %q", http.StatusText(http.StatusBadRequest), resp.Error)
	}
	if resp.Message != "name is required" {
		t.Errorf("Expected message to be preserved, got %q", resp.Message)
	}
}

func TestParseJSONBody(t *testing.T) {
	body, _ := json.Marshal(models.RegisterUserRequest{Name: "Alice"})
	req := httptest.NewRequest("POST", "/users", bytes.NewReader(body))

	var parsed models.RegisterUserRequest
	if err := ParseJSONBody(req, &parsed); err != nil {
		t.Fatalf("Expected valid body to parse, got %v", err)
	}
	if parsed.Name != "Alice" {
		t.Errorf("Expected name Alice, got %q", parsed.Name)
	}

	bad := httptest.NewRequest("POST", "/users", strings.NewReader("{not json"))
	if err := ParseJSONBody(bad, &parsed); err == nil {
		t.Error("Expected malformed body to fail")
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("wildcard reflects origin", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/health", nil)
		req.Header.Set("Origin", "https://sudoku.example")
		w := httptest.NewRecorder()
		CORS("*", next).ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://sudoku.example" {
			t.Errorf("Expected reflected origin, got %q", got)
		}
	})

	t.Run("pinned origin", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/health", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		CORS("https://sudoku.example", next).ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://sudoku.example" {
			t.Errorf("Expected pinned origin, got %q", got)
		}
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		called := false
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
		req := httptest.NewRequest("OPTIONS", "/users", nil)
		w := httptest.NewRecorder()
		CORS("*", inner).ServeHTTP(w, req)

		if called {
			t.Error("Expected preflight to stop before the handler")
		}
		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200 for preflight, got %d", w.Code)
		}
	})
}
