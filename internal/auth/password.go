// Package auth は資格情報の取り扱いとセッション管理のドメインロジックを提供する。
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword は平文パスワードからbcryptハッシュを生成する。
// ソルトは呼び出しごとにランダム生成されるため、
// 同一の平文でも毎回異なるハッシュが得られる。
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword は平文がハッシュと一致するかどうかを判定する。
// ハッシュが不正な形式の場合もpanicせずfalseを返す。
func VerifyPassword(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
