package repository

import (
	"errors"
	"net"
	"testing"

	"github.com/lib/pq"
)

// PostgresUserRepoはUserRepositoryインターフェースを満たすことを検証
func TestPostgresUserRepo_ImplementsInterface(t *testing.T) {
	var _ UserRepository = (*PostgresUserRepo)(nil)
}

// PostgresSessionRepoはSessionRepositoryインターフェースを満たすことを検証
func TestPostgresSessionRepo_ImplementsInterface(t *testing.T) {
	var _ SessionRepository = (*PostgresSessionRepo)(nil)
}

// PostgresSurveyRepoはSurveyResponseRepositoryインターフェースを満たすことを検証
func TestPostgresSurveyRepo_ImplementsInterface(t *testing.T) {
	var _ SurveyResponseRepository = (*PostgresSurveyRepo)(nil)
}

// NewPostgresUserRepoが正しく初期化されることを検証
func TestNewPostgresUserRepo_Initializes(t *testing.T) {
	repo := NewPostgresUserRepo(nil)
	if repo == nil {
		t.Fatal("expected non-nil repo")
	}
}

// NewPostgresSessionRepoが正しく初期化されることを検証
func TestNewPostgresSessionRepo_Initializes(t *testing.T) {
	repo := NewPostgresSessionRepo(nil)
	if repo == nil {
		t.Fatal("expected non-nil repo")
	}
}

// NewPostgresSurveyRepoが正しく初期化されることを検証
func TestNewPostgresSurveyRepo_Initializes(t *testing.T) {
	repo := NewPostgresSurveyRepo(nil)
	if repo == nil {
		t.Fatal("expected non-nil repo")
	}
}

// --- エラー分類テスト ---

func TestClassify_UniqueViolation_WrapsErrDuplicateKey(t *testing.T) {
	pqErr := &pq.Error{Code: "23505"}

	got := classify(pqErr)

	if !errors.Is(got, ErrDuplicateKey) {
		t.Errorf("classify(23505) should wrap ErrDuplicateKey, got %v", got)
	}
	if errors.Is(got, ErrUnavailable) {
		t.Error("classify(23505) should not wrap ErrUnavailable")
	}
}

func TestClassify_ConnectionException_WrapsErrUnavailable(t *testing.T) {
	// SQLSTATE 08006 = connection_failure
	pqErr := &pq.Error{Code: "08006"}

	got := classify(pqErr)

	if !errors.Is(got, ErrUnavailable) {
		t.Errorf("classify(08006) should wrap ErrUnavailable, got %v", got)
	}
}

func TestClassify_NetworkError_WrapsErrUnavailable(t *testing.T) {
	netErr := &net.OpError{Op: "dial", Err: errors.New("connection refused")}

	got := classify(netErr)

	if !errors.Is(got, ErrUnavailable) {
		t.Errorf("classify(net.OpError) should wrap ErrUnavailable, got %v", got)
	}
}

func TestClassify_OtherError_PassesThrough(t *testing.T) {
	plain := errors.New("syntax error")

	got := classify(plain)

	if got != plain {
		t.Errorf("classify should pass through unclassified errors, got %v", got)
	}
	if errors.Is(got, ErrDuplicateKey) || errors.Is(got, ErrUnavailable) {
		t.Error("unclassified error should not match any sentinel")
	}
}
