// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// 画面に表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // 画面に表示するエラーメッセージ
	Category string // カテゴリ: auth, validation, storage, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeMissingFields      = "MISSING_FIELDS"
	ErrCodeInvalidEmail       = "INVALID_EMAIL"
	ErrCodeWeakPassword       = "WEAK_PASSWORD"
	ErrCodeDuplicateAccount   = "DUPLICATE_ACCOUNT"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	ErrCodeSurveyInvalid      = "SURVEY_INVALID"
	ErrCodeSurveySaveFailed   = "SURVEY_SAVE_FAILED"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
)

// NewMissingFieldsError は必須項目未入力エラーを生成する。
func NewMissingFieldsError() *APIError {
	return &APIError{
		Code:     ErrCodeMissingFields,
		Message:  "Please fill out all fields.",
		Category: "validation",
		Action:   "Enter a value for every field and submit again.",
	}
}

// NewInvalidEmailError はメールアドレス形式エラーを生成する。
func NewInvalidEmailError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidEmail,
		Message:  "Invalid email format.",
		Category: "validation",
		Action:   "Enter an address like name@example.com.",
	}
}

// NewWeakPasswordError はパスワード強度不足エラーを生成する。
func NewWeakPasswordError() *APIError {
	return &APIError{
		Code:     ErrCodeWeakPassword,
		Message:  "Password must be at least 6 characters, include one digit and one uppercase letter.",
		Category: "validation",
		Action:   "Choose a longer password containing a digit and an uppercase letter.",
	}
}

// NewDuplicateAccountError はユーザー名またはメールアドレスの重複エラーを生成する。
func NewDuplicateAccountError() *APIError {
	return &APIError{
		Code:     ErrCodeDuplicateAccount,
		Message:  "Username or Email already exists.",
		Category: "validation",
		Action:   "Pick a different username or log in with the existing account.",
	}
}

// NewInvalidCredentialsError は認証失敗エラーを生成する。
// ユーザー列挙を防ぐため、識別子不一致とパスワード不一致で同一メッセージを返す。
func NewInvalidCredentialsError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidCredentials,
		Message:  "Invalid username/email or password.",
		Category: "auth",
		Action:   "Check your username/email and password, then try again.",
	}
}

// NewStorageUnavailableError はデータベース接続障害エラーを生成する。
func NewStorageUnavailableError() *APIError {
	return &APIError{
		Code:     ErrCodeStorageUnavailable,
		Message:  "Database connection failed.",
		Category: "storage",
		Action:   "Wait a moment and try again.",
	}
}

// NewSurveyInvalidError はアンケート必須項目の検証エラーを生成する。
func NewSurveyInvalidError() *APIError {
	return &APIError{
		Code:     ErrCodeSurveyInvalid,
		Message:  "Please fill all required fields.",
		Category: "validation",
		Action:   "Enter your name and a valid age, then submit again.",
	}
}

// NewSurveySaveFailedError はアンケート保存失敗エラーを生成する。
func NewSurveySaveFailedError() *APIError {
	return &APIError{
		Code:     ErrCodeSurveySaveFailed,
		Message:  "Could not save your response. Please try again.",
		Category: "storage",
		Action:   "Wait a moment and submit the survey again.",
	}
}

// NewUnauthorizedError は未認証エラーを生成する。
func NewUnauthorizedError() *APIError {
	return &APIError{
		Code:     ErrCodeUnauthorized,
		Message:  "You must be logged in to view this page.",
		Category: "auth",
		Action:   "Log in and try again.",
	}
}
