package repository

import (
	"context"
	"sync"
	"time"

	"github.com/hitoshi/labsurvey/internal/model"
)

// MemorySessionRepo はプロセス内マップを使用したセッションリポジトリ。
// 単一プロセス構成やテストで、データベースを使わずにセッションを保持する。
// 並行アクセスに対してはミューテックスで保護する。
type MemorySessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]model.Session
	now      func() time.Time
}

// NewMemorySessionRepo はMemorySessionRepoを生成する。
func NewMemorySessionRepo() *MemorySessionRepo {
	return &MemorySessionRepo{
		sessions: make(map[string]model.Session),
		now:      time.Now,
	}
}

// Create はセッションを作成する。
func (r *MemorySessionRepo) Create(ctx context.Context, session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = *session
	return nil
}

// FindByID は指定IDのセッションを取得する。期限切れ・未存在の場合はnilを返す。
// 期限切れのエントリは参照時に削除する。
func (r *MemorySessionRepo) FindByID(ctx context.Context, id string) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	if !session.ExpiresAt.After(r.now()) {
		delete(r.sessions, id)
		return nil, nil
	}

	copy := session
	return &copy, nil
}

// DeleteByID は指定IDのセッションを削除する。
func (r *MemorySessionRepo) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

// DeleteByUserID は指定ユーザーの全セッションを削除する。
func (r *MemorySessionRepo) DeleteByUserID(ctx context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, session := range r.sessions {
		if session.UserID == userID {
			delete(r.sessions, id)
		}
	}
	return nil
}

// compile-time interface check
var _ SessionRepository = (*MemorySessionRepo)(nil)
