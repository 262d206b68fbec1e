// Package model はドメインモデルを定義する。
package model

import "time"

// User はサービス利用ユーザーを表す。
// PasswordHash列には常にbcryptハッシュのみを保持し、平文は一切持たない。
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
}

// Session はユーザーのログインセッションを表す。
// ログイン成功時に作成され、明示的なログアウトまたは期限切れで破棄される。
type Session struct {
	ID        string
	UserID    int64
	Username  string
	ExpiresAt time.Time
	CreatedAt time.Time
}
