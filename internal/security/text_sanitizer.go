// Package security はアプリケーションのセキュリティ機能を提供する。
//
// TextSanitizerService はアンケートの自由記述欄をサニタイズし、
// 保存データを経由したXSS攻撃からユーザーを保護する。
// bluemondayのStrictPolicyを使用し、HTMLタグをすべて除去して
// プレーンテキストのみを通過させる。
package security

import "github.com/microcosm-cc/bluemonday"

// TextSanitizerService は自由記述テキストのサニタイズ機能のインターフェースを定義する。
// アンケート回答の保存前に使用される。
type TextSanitizerService interface {
	// Sanitize は入力からHTMLタグをすべて除去したプレーンテキストを返す。
	// 空文字列の入力には空文字列を返す。
	// 同一入力に対して常に同一出力を返す（冪等）。
	Sanitize(raw string) string
}

// textSanitizer はTextSanitizerServiceの実装。
// bluemondayのポリシーを保持し、スレッドセーフにサニタイズ処理を行う。
type textSanitizer struct {
	policy *bluemonday.Policy
}

// NewTextSanitizer はTextSanitizerServiceの新しいインスタンスを生成する。
// StrictPolicyはタグを一切許可しないため、scriptタグや
// on*イベント属性を含むあらゆるHTMLが除去される。
func NewTextSanitizer() TextSanitizerService {
	return &textSanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// Sanitize は入力からHTMLタグをすべて除去したプレーンテキストを返す。
func (s *textSanitizer) Sanitize(raw string) string {
	return s.policy.Sanitize(raw)
}
