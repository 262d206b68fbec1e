package cleanup

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

// --- モック定義 ---

type mockExecutor struct {
	execFn func(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func (m *mockExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	if m.execFn != nil {
		return m.execFn(ctx, query, args...)
	}
	return mockResult{}, nil
}

type mockResult struct {
	rows    int64
	rowsErr error
}

func (m mockResult) LastInsertId() (int64, error) { return 0, nil }
func (m mockResult) RowsAffected() (int64, error) { return m.rows, m.rowsErr }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// --- テスト ---

func TestSessionCleanupJob_DeletesExpiredSessions(t *testing.T) {
	var gotQuery string
	exec := &mockExecutor{
		execFn: func(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
			gotQuery = query
			return mockResult{rows: 3}, nil
		},
	}

	job := NewSessionCleanupJob(exec, discardLogger())

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(gotQuery, "DELETE FROM sessions") {
		t.Errorf("query = %q, want DELETE FROM sessions", gotQuery)
	}
	if !strings.Contains(gotQuery, "expires_at < now()") {
		t.Errorf("query = %q, want expires_at predicate", gotQuery)
	}
}

func TestSessionCleanupJob_NoExpiredSessions_Succeeds(t *testing.T) {
	exec := &mockExecutor{
		execFn: func(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
			return mockResult{rows: 0}, nil
		},
	}

	job := NewSessionCleanupJob(exec, discardLogger())

	if err := job.Run(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSessionCleanupJob_ExecError_ReturnsError(t *testing.T) {
	exec := &mockExecutor{
		execFn: func(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
			return nil, errors.New("connection refused")
		},
	}

	job := NewSessionCleanupJob(exec, discardLogger())

	if err := job.Run(context.Background()); err == nil {
		t.Error("expected error when exec fails")
	}
}

func TestSessionCleanupJob_RowsAffectedError_ReturnsError(t *testing.T) {
	exec := &mockExecutor{
		execFn: func(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
			return mockResult{rowsErr: errors.New("driver does not support RowsAffected")}, nil
		},
	}

	job := NewSessionCleanupJob(exec, discardLogger())

	if err := job.Run(context.Background()); err == nil {
		t.Error("expected error when RowsAffected fails")
	}
}
