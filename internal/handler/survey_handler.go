package handler

import (
	"context"
	"net/http"

	"github.com/hitoshi/labsurvey/internal/middleware"
	"github.com/hitoshi/labsurvey/internal/model"
	"github.com/hitoshi/labsurvey/internal/survey"
	"github.com/hitoshi/labsurvey/internal/view"
)

// SurveyServiceInterface はアンケートハンドラーが必要とするサービスインターフェース。
type SurveyServiceInterface interface {
	Submit(ctx context.Context, userID int64, in *survey.SubmitInput) (*model.SurveyResponse, error)
}

// SurveyHandler はアンケートフォームのHTTPハンドラー。
type SurveyHandler struct {
	service  SurveyServiceInterface
	renderer *view.Renderer
	metrics  MetricsRecorder
}

// NewSurveyHandler はSurveyHandlerを生成する。metricsはnil可。
func NewSurveyHandler(service SurveyServiceInterface, renderer *view.Renderer, metrics MetricsRecorder) *SurveyHandler {
	return &SurveyHandler{
		service:  service,
		renderer: renderer,
		metrics:  metrics,
	}
}

// Show はアンケートフォームを表示する。
// GET /survey
func (h *SurveyHandler) Show(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "survey.html", view.PageData{
		CSRFToken: middleware.CSRFTokenFromContext(r.Context()),
	})
}

// Submit はアンケートフォームの送信を処理する。
// セッションミドルウェアを通過済みのため、コンテキストに必ずセッションがある。
// POST /survey
func (h *SurveyHandler) Submit(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.SessionFromContext(r.Context())
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	in := &survey.SubmitInput{
		Name:                         r.PostFormValue("name"),
		Age:                          r.PostFormValue("age"),
		Gender:                       r.PostFormValue("gender"),
		SatisfactionLabSessions:      r.PostFormValue("satisfaction_lab_sessions"),
		Suggestions:                  r.PostFormValue("suggestions"),
		PreferredLanguage:            r.PostFormValue("preferred_language"),
		RatingLabInfrastructure:      r.PostFormValue("rating_lab_infrastructure"),
		Email:                        r.PostFormValue("email"),
		ProgrammingLanguagesKnown:    r.PostFormValue("programming_languages_known"),
		SatisfactionLevelLabSessions: r.PostFormValue("satisfaction_level_lab_sessions"),
		FavoriteIDE:                  r.PostFormValue("favorite_ide"),
		PreferredLabTime:             r.PostFormValue("preferred_lab_time"),
		AdditionalFeedback:           r.PostFormValue("additional_feedback"),
	}

	if _, err := h.service.Submit(r.Context(), session.UserID, in); err != nil {
		h.recordSubmission(false)
		h.renderer.Render(w, statusForError(err), "survey.html", view.PageData{
			Message:   userMessage(err),
			CSRFToken: middleware.CSRFTokenFromContext(r.Context()),
		})
		return
	}

	h.recordSubmission(true)
	h.renderer.Render(w, http.StatusOK, "survey.html", view.PageData{
		Success:   "Survey submitted successfully.",
		CSRFToken: middleware.CSRFTokenFromContext(r.Context()),
	})
}

func (h *SurveyHandler) recordSubmission(success bool) {
	if h.metrics != nil {
		h.metrics.RecordSurveySubmission(success)
	}
}
