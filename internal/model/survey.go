// Package model はドメインモデルを定義する。
package model

// SurveyResponse はラボセッションに関するアンケート回答1件を表す。
// ユーザーに外部キーで紐付き、1ユーザーが複数回回答できる。
// Name以外の項目は任意入力で、未入力はnilのままNULLとして保存される。
type SurveyResponse struct {
	ID     int64
	UserID int64
	Name   string

	Age                          *int
	Gender                       *string
	SatisfactionLabSessions      *string
	Suggestions                  *string
	PreferredLanguage            *string
	RatingLabInfrastructure      *string
	Email                        *string
	ProgrammingLanguagesKnown    *string
	SatisfactionLevelLabSessions *string
	FavoriteIDE                  *string
	PreferredLabTime             *string
	AdditionalFeedback           *string
}
