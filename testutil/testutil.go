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
	"sync/atomic"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/db"
	"github.com/danielhkuo/ballotbox/engine"
)

// SetupTestDB opens an in-memory sqlite database with the full schema.
// Each call gets its own database, so tests stay independent.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// An in-memory sqlite database exists per connection
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3318,
		DatabaseType:    "sqlite",
		CallerTokenSalt: "test-caller-salt",
	}
}

var idCounter atomic.Int64

// SequentialIDs returns an id generator producing ballot-1, ballot-2, ...
// Unique across the whole test binary so parallel tests never collide.
func SequentialIDs() func() string {
	return func() string {
		return fmt.Sprintf("ballot-%d", idCounter.Add(1))
	}
}

// NewTestRegistry builds an in-memory registry with deterministic ids and
// no persistence or event sink.
func NewTestRegistry(t *testing.T) *engine.Registry {
	t.Helper()
	return engine.NewRegistry(SequentialIDs(), nil, nil)
}

// CreateTestBallot creates a ballot owned by owner and returns its id.
func CreateTestBallot(t *testing.T, reg *engine.Registry, owner string, maxVotes int, allowDelegation bool) string {
	t.Helper()

	id, err := reg.CreateBallot(owner, []string{"alpha", "beta", "gamma"}, "test ballot", maxVotes, allowDelegation)
	if err != nil {
		t.Fatalf("Failed to create test ballot: %v", err)
	}
	return id
}

// CallerHeaders returns the identity headers for callerID, using the
// standard test salt.
func CallerHeaders(callerID string) map[string]string {
	return map[string]string{
		"X-Caller-ID":    callerID,
		"X-Caller-Token": auth.GenerateCallerToken(callerID, GetTestConfig().CallerTokenSalt),
	}
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
