// Package validation は入力値検証の純粋関数を提供する。
// 副作用を持たず、結果は真偽値のみで返す。
package validation

import "regexp"

var (
	// emailPattern は local-part @ domain . tld の形式のみを許可する。
	// 使用可能な文字は英数字・アンダースコア・ドット・ハイフンに限る。
	// 正規化は行わない。
	emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

	digitPattern = regexp.MustCompile(`\d`)
	upperPattern = regexp.MustCompile(`[A-Z]`)
)

// ValidEmail はメールアドレスの形式が有効かどうかを判定する。
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// StrongPassword はパスワード強度ポリシーを満たすかどうかを判定する。
// ポリシー: 6文字以上、数字を1文字以上、英大文字を1文字以上含むこと。
// 最大長や記号の要件は設けない。
func StrongPassword(s string) bool {
	if len(s) < 6 {
		return false
	}
	if !digitPattern.MatchString(s) {
		return false
	}
	if !upperPattern.MatchString(s) {
		return false
	}
	return true
}
