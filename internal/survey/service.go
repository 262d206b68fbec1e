// Package survey はアンケート回答のドメインロジックを提供する。
package survey

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/hitoshi/labsurvey/internal/model"
	"github.com/hitoshi/labsurvey/internal/repository"
	"github.com/hitoshi/labsurvey/internal/security"
)

// 年齢として受け付ける範囲。範囲外は入力ミスとして検証エラーにする。
const (
	minAge = 1
	maxAge = 149
)

// SubmitInput はアンケートフォームの生の入力値を表す。
// すべて文字列のまま受け取り、検証と型変換はサービス層で行う。
type SubmitInput struct {
	Name                         string
	Age                          string
	Gender                       string
	SatisfactionLabSessions      string
	Suggestions                  string
	PreferredLanguage            string
	RatingLabInfrastructure      string
	Email                        string
	ProgrammingLanguagesKnown    string
	SatisfactionLevelLabSessions string
	FavoriteIDE                  string
	PreferredLabTime             string
	AdditionalFeedback           string
}

// Service はアンケート回答のサービス層。
type Service struct {
	responses repository.SurveyResponseRepository
	sanitizer security.TextSanitizerService
}

// NewService はServiceを生成する。
func NewService(responses repository.SurveyResponseRepository, sanitizer security.TextSanitizerService) *Service {
	return &Service{
		responses: responses,
		sanitizer: sanitizer,
	}
}

// Submit はアンケート回答を検証し、認証済みユーザーに紐付けて1件保存する。
//
// 必須項目はNameのみ。Ageは入力された場合のみ整数として検証する。
// それ以外の項目は任意で、未入力はNULLとして保存される。
// 自由記述欄は保存前にサニタイズされる。
func (s *Service) Submit(ctx context.Context, userID int64, in *SubmitInput) (*model.SurveyResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, model.NewSurveyInvalidError()
	}

	age, err := parseAge(in.Age)
	if err != nil {
		return nil, model.NewSurveyInvalidError()
	}

	response := &model.SurveyResponse{
		UserID:                       userID,
		Name:                         name,
		Age:                          age,
		Gender:                       optional(in.Gender),
		SatisfactionLabSessions:      optional(in.SatisfactionLabSessions),
		Suggestions:                  s.optionalSanitized(in.Suggestions),
		PreferredLanguage:            optional(in.PreferredLanguage),
		RatingLabInfrastructure:      optional(in.RatingLabInfrastructure),
		Email:                        optional(in.Email),
		ProgrammingLanguagesKnown:    s.optionalSanitized(in.ProgrammingLanguagesKnown),
		SatisfactionLevelLabSessions: optional(in.SatisfactionLevelLabSessions),
		FavoriteIDE:                  optional(in.FavoriteIDE),
		PreferredLabTime:             optional(in.PreferredLabTime),
		AdditionalFeedback:           s.optionalSanitized(in.AdditionalFeedback),
	}

	if err := s.responses.Create(ctx, response); err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			return nil, model.NewStorageUnavailableError()
		}
		slog.Error("failed to save survey response",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()),
		)
		return nil, model.NewSurveySaveFailedError()
	}

	slog.Info("survey response submitted",
		slog.Int64("user_id", userID),
		slog.Int64("response_id", response.ID),
	)

	return response, nil
}

// parseAge は年齢入力を検証付きで整数に変換する。
// 未入力はnil、不正な値（非整数または範囲外）はエラーを返す。
func parseAge(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	age, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("age is not an integer: %q", raw)
	}
	if age < minAge || age > maxAge {
		return nil, fmt.Errorf("age out of range: %d", age)
	}

	return &age, nil
}

// optional は空白を除去した任意項目を返す。未入力はnil。
func optional(raw string) *string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil
	}
	return &v
}

// optionalSanitized は自由記述の任意項目をサニタイズして返す。未入力はnil。
func (s *Service) optionalSanitized(raw string) *string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil
	}
	if s.sanitizer != nil {
		v = strings.TrimSpace(s.sanitizer.Sanitize(v))
		if v == "" {
			return nil
		}
	}
	return &v
}
