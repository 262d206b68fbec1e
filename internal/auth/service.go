package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/labsurvey/internal/model"
	"github.com/hitoshi/labsurvey/internal/repository"
	"github.com/hitoshi/labsurvey/internal/validation"
)

// ServiceConfig は認証サービスの設定。
type ServiceConfig struct {
	SessionMaxAge int // セッション有効期間（秒）
}

// Service は登録・ログイン・ログアウトのビジネスロジックを提供する。
type Service struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	config   ServiceConfig
	now      func() time.Time
}

// NewService はServiceを生成する。
func NewService(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	config ServiceConfig,
) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		config:   config,
		now:      time.Now,
	}
}

// Register は新規ユーザーを登録する。
// 検証順序: 必須項目 → メール形式 → パスワード強度。
// いずれかに失敗した場合はストレージへの書き込みを行わない。
// 成功時はusersに1行だけ挿入される。
func (s *Service) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" {
		return nil, model.NewMissingFieldsError()
	}
	if !validation.ValidEmail(email) {
		return nil, model.NewInvalidEmailError()
	}
	if !validation.StrongPassword(password) {
		return nil, model.NewWeakPasswordError()
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, model.NewDuplicateAccountError()
		}
		if errors.Is(err, repository.ErrUnavailable) {
			return nil, model.NewStorageUnavailableError()
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("new user registered",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// Login はusernameまたはemailとパスワードでユーザーを認証し、セッションを発行する。
// 識別子不一致とパスワード不一致は区別せず、同一の認証失敗エラーを返す。
func (s *Service) Login(ctx context.Context, identifier, password string) (*model.Session, error) {
	identifier = strings.TrimSpace(identifier)

	if identifier == "" || password == "" {
		return nil, model.NewMissingFieldsError()
	}

	user, err := s.users.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			return nil, model.NewStorageUnavailableError()
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if user == nil || !VerifyPassword(user.PasswordHash, password) {
		return nil, model.NewInvalidCredentialsError()
	}

	session, err := s.createSession(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			return nil, model.NewStorageUnavailableError()
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	slog.Info("user logged in",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return session, nil
}

// Logout はセッションを破棄する。
// セッションIDが空（未ログイン）の場合は何もしない。
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.sessions.DeleteByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	slog.Info("user logged out", slog.String("session_id", sessionID))
	return nil
}

// createSession はセッションを作成し永続化する。
func (s *Service) createSession(ctx context.Context, user *model.User) (*model.Session, error) {
	now := s.now()
	session := &model.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Username:  user.Username,
		ExpiresAt: now.Add(time.Duration(s.config.SessionMaxAge) * time.Second),
		CreatedAt: now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
