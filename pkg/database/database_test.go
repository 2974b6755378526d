package database

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"github.com/ghuser/todolists/pkg/config"
	"github.com/ghuser/todolists/pkg/logger"
)

func newTestLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

func TestNewPool_InvalidURL(t *testing.T) {
	_, err := NewPool(context.Background(), "postgres://nobody@localhost:1/none?connect_timeout=1", newTestLogger())
	if err == nil {
		t.Fatal("expected error for unreachable database, got nil")
	}
}

// setupTestDB connects to TEST_DATABASE_URL and creates a scratch table.
// Skipped when no database is configured.
func setupTestDB(t *testing.T) *Database {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration tests")
	}

	ctx := context.Background()
	d, err := NewPool(ctx, url, newTestLogger())
	if err != nil {
		t.Skipf("database not available: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	if _, err := d.DB().ExecContext(ctx, `CREATE TABLE IF NOT EXISTS withtx_test (v TEXT NOT NULL)`); err != nil {
		t.Fatalf("create scratch table: %v", err)
	}
	if _, err := d.DB().ExecContext(ctx, `DELETE FROM withtx_test`); err != nil {
		t.Fatalf("clean scratch table: %v", err)
	}
	return d
}

func countRows(t *testing.T, d *Database) int {
	t.Helper()
	var n int
	if err := d.DB().QueryRowContext(context.Background(), `SELECT count(*) FROM withtx_test`).Scan(&n); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}

func TestWithTx(t *testing.T) {
	d := setupTestDB(t)
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		err := d.WithTx(ctx, func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, `INSERT INTO withtx_test (v) VALUES ('a')`)
			return err
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n := countRows(t, d); n != 1 {
			t.Fatalf("expected 1 row, got %d", n)
		}
	})

	t.Run("rolls back on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := d.WithTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, `INSERT INTO withtx_test (v) VALUES ('b')`); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		if n := countRows(t, d); n != 1 {
			t.Fatalf("expected rollback to keep 1 row, got %d", n)
		}
	})

	t.Run("rolls back on panic", func(t *testing.T) {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic to propagate")
				}
			}()
			_ = d.WithTx(ctx, func(tx *sql.Tx) error {
				_, _ = tx.ExecContext(ctx, `INSERT INTO withtx_test (v) VALUES ('c')`)
				panic("kaboom")
			})
		}()
		if n := countRows(t, d); n != 1 {
			t.Fatalf("expected rollback to keep 1 row, got %d", n)
		}
	})
}

func TestWithReadTx(t *testing.T) {
	d := setupTestDB(t)
	ctx := context.Background()

	t.Run("rejects writes", func(t *testing.T) {
		err := d.WithReadTx(ctx, func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, `INSERT INTO withtx_test (v) VALUES ('r')`)
			return err
		})
		if err == nil {
			t.Fatal("expected write in read-only transaction to fail")
		}
		if n := countRows(t, d); n != 0 {
			t.Fatalf("expected no rows, got %d", n)
		}
	})

	t.Run("reads one snapshot", func(t *testing.T) {
		var first, second int
		err := d.WithReadTx(ctx, func(tx *sql.Tx) error {
			if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM withtx_test`).Scan(&first); err != nil {
				return err
			}
			if _, err := d.DB().ExecContext(ctx, `INSERT INTO withtx_test (v) VALUES ('concurrent')`); err != nil {
				return err
			}
			return tx.QueryRowContext(ctx, `SELECT count(*) FROM withtx_test`).Scan(&second)
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first != second {
			t.Fatalf("expected a stable snapshot, got %d then %d", first, second)
		}
		if n := countRows(t, d); n != first+1 {
			t.Fatalf("expected concurrent insert to be committed, got %d rows", n)
		}
	})
}
