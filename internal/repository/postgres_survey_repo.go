package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/labsurvey/internal/model"
)

// PostgresSurveyRepo はPostgreSQLを使用したアンケート回答リポジトリ。
type PostgresSurveyRepo struct {
	db *sql.DB
}

// NewPostgresSurveyRepo はPostgresSurveyRepoを生成する。
func NewPostgresSurveyRepo(db *sql.DB) *PostgresSurveyRepo {
	return &PostgresSurveyRepo{db: db}
}

// Create はアンケート回答を1件作成し、採番されたIDをresponse.IDに設定する。
// 任意項目のnilポインタはNULLとして保存される。
func (r *PostgresSurveyRepo) Create(ctx context.Context, response *model.SurveyResponse) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO survey_responses (
			user_id, name, age, gender,
			satisfaction_lab_sessions, suggestions,
			preferred_language, rating_lab_infrastructure,
			email, programming_languages_known,
			satisfaction_level_lab_sessions, favorite_ide,
			preferred_lab_time, additional_feedback
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING id`,
		response.UserID, response.Name, response.Age, response.Gender,
		response.SatisfactionLabSessions, response.Suggestions,
		response.PreferredLanguage, response.RatingLabInfrastructure,
		response.Email, response.ProgrammingLanguagesKnown,
		response.SatisfactionLevelLabSessions, response.FavoriteIDE,
		response.PreferredLabTime, response.AdditionalFeedback,
	).Scan(&response.ID)
	if err != nil {
		return fmt.Errorf("failed to insert survey response: %w", classify(err))
	}

	return nil
}

// compile-time interface check
var _ SurveyResponseRepository = (*PostgresSurveyRepo)(nil)
