// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package reasoncache

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"testing"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
)

// testDBSemaphore serializes DuckDB tests.
var testDBSemaphore = make(chan struct{}, 1)

func newSQLStore(t *testing.T) Store {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	conn, err := sql.Open("duckdb", "")
	if err != nil {
		t.Fatalf("open duckdb: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = conn.Close() })

	s := NewSQLStore(conn)
	if err := s.EnsureSchema(t.Context()); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}
	// Second call must be a no-op.
	if err := s.EnsureSchema(t.Context()); err != nil {
		t.Fatalf("EnsureSchema() second call error = %v", err)
	}
	return s
}

func TestSQLStore_Contract(t *testing.T) {
	runStoreContract(t, newSQLStore)
}

var errReadOnly = errors.New("cannot update in read-only mode")

// readOnlyConnector serves one cached row to every query and fails every
// statement that writes.
type readOnlyConnector struct {
	created time.Time
}

func (c readOnlyConnector) Connect(context.Context) (driver.Conn, error) {
	return readOnlyConn(c), nil
}

func (c readOnlyConnector) Driver() driver.Driver { return c }

func (c readOnlyConnector) Open(string) (driver.Conn, error) { return readOnlyConn(c), nil }

type readOnlyConn struct {
	created time.Time
}

func (c readOnlyConn) Prepare(string) (driver.Stmt, error) { return readOnlyStmt(c), nil }
func (readOnlyConn) Close() error                          { return nil }
func (readOnlyConn) Begin() (driver.Tx, error)             { return nil, errReadOnly }

type readOnlyStmt struct {
	created time.Time
}

func (readOnlyStmt) Close() error  { return nil }
func (readOnlyStmt) NumInput() int { return -1 }

func (readOnlyStmt) Exec([]driver.Value) (driver.Result, error) { return nil, errReadOnly }

func (s readOnlyStmt) Query([]driver.Value) (driver.Rows, error) {
	return &cachedRow{created: s.created}, nil
}

type cachedRow struct {
	created time.Time
	done    bool
}

func (*cachedRow) Columns() []string {
	return []string{"cached_reason", "match_score", "created_at"}
}

func (*cachedRow) Close() error { return nil }

func (r *cachedRow) Next(dest []driver.Value) error {
	if r.done {
		return io.EOF
	}
	r.done = true
	dest[0] = "Klasyka, która się nie starzeje."
	dest[1] = int64(88)
	dest[2] = r.created
	return nil
}

func TestSQLStore_TouchFailureKeepsEntry(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	conn := sql.OpenDB(readOnlyConnector{created: created})
	t.Cleanup(func() { _ = conn.Close() })

	now := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	s := NewSQLStore(conn)
	s.now = func() time.Time { return now }

	key := Key{MovieID: "casablanca-1942", PreferencesHash: "h"}
	e, err := s.Get(t.Context(), key)
	if !errors.Is(err, ErrTouch) || !errors.Is(err, errReadOnly) {
		t.Fatalf("Get() error = %v, want ErrTouch wrapping the update error", err)
	}
	if e == nil {
		t.Fatal("Get() dropped the entry after a failed touch")
	}
	if e.CachedReason != "Klasyka, która się nie starzeje." || e.MatchScore != 88 {
		t.Errorf("entry = %+v", e)
	}
	if !e.CreatedAt.Equal(created) || !e.LastUsed.Equal(now) {
		t.Errorf("CreatedAt = %v, LastUsed = %v", e.CreatedAt, e.LastUsed)
	}

	got, ok := New(s).Lookup(t.Context(), key.MovieID, testPrefs())
	if !ok || got != "Klasyka, która się nie starzeje." {
		t.Errorf("Lookup() = %q, %v, want hit despite failed touch", got, ok)
	}
}
