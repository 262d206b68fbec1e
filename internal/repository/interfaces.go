// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"
	"errors"

	"github.com/hitoshi/labsurvey/internal/model"
)

// ErrDuplicateKey は一意制約違反を示すセンチネルエラー。
// サービス層はerrors.Isで判定し、画面向けエラーに変換する。
var ErrDuplicateKey = errors.New("duplicate key")

// ErrUnavailable はストレージへの接続障害を示すセンチネルエラー。
var ErrUnavailable = errors.New("storage unavailable")

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// Create はユーザーを1件作成し、採番されたIDをuser.IDに設定する。
	// username/emailの一意制約違反の場合はErrDuplicateKeyを返す。
	Create(ctx context.Context, user *model.User) error

	// FindByIdentifier はusernameまたはemailが一致するユーザーを取得する。
	// 見つからない場合はnilを返す。
	FindByIdentifier(ctx context.Context, identifier string) (*model.User, error)
}

// SessionRepository はセッションデータの永続化インターフェース。
// バックエンドは差し替え可能で、PostgreSQL実装とインメモリ実装を提供する。
type SessionRepository interface {
	// Create はセッションを作成する。
	Create(ctx context.Context, session *model.Session) error
	// FindByID は指定IDのセッションを取得する。期限切れ・未存在の場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Session, error)
	// DeleteByID は指定IDのセッションを削除する。
	DeleteByID(ctx context.Context, id string) error
	// DeleteByUserID は指定ユーザーの全セッションを削除する。
	DeleteByUserID(ctx context.Context, userID int64) error
}

// SurveyResponseRepository はアンケート回答の永続化インターフェース。
// 回答は書き込み専用で、このシステムでは読み戻し・更新・削除を行わない。
type SurveyResponseRepository interface {
	// Create はアンケート回答を1件作成し、採番されたIDをresponse.IDに設定する。
	Create(ctx context.Context, response *model.SurveyResponse) error
}
