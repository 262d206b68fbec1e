// Package handler はHTTPハンドラーを提供する。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hitoshi/labsurvey/internal/auth"
	"github.com/hitoshi/labsurvey/internal/middleware"
	"github.com/hitoshi/labsurvey/internal/model"
	"github.com/hitoshi/labsurvey/internal/view"
)

// AuthServiceInterface は認証ハンドラーが必要とするサービスインターフェース。
type AuthServiceInterface interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Login(ctx context.Context, identifier, password string) (*model.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// AuthHandlerConfig は認証ハンドラーの設定。
type AuthHandlerConfig struct {
	SessionSecret string
	CookieDomain  string
	CookieSecure  bool
	SessionMaxAge int // セッションCookieの有効期間（秒）
}

// AuthHandler はサインアップ・ログイン・ログアウトのHTTPハンドラー。
type AuthHandler struct {
	service  AuthServiceInterface
	renderer *view.Renderer
	metrics  MetricsRecorder
	config   AuthHandlerConfig
}

// MetricsRecorder はハンドラーが記録する業務メトリクスのインターフェース。
type MetricsRecorder interface {
	RecordSignup(success bool)
	RecordLogin(success bool)
	RecordSurveySubmission(success bool)
}

// NewAuthHandler はAuthHandlerを生成する。metricsはnil可。
func NewAuthHandler(service AuthServiceInterface, renderer *view.Renderer, metrics MetricsRecorder, config AuthHandlerConfig) *AuthHandler {
	return &AuthHandler{
		service:  service,
		renderer: renderer,
		metrics:  metrics,
		config:   config,
	}
}

// ShowSignup はサインアップフォームを表示する。
// GET /signup
func (h *AuthHandler) ShowSignup(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "signup.html", view.PageData{
		CSRFToken: middleware.CSRFTokenFromContext(r.Context()),
	})
}

// Signup はサインアップフォームの送信を処理する。
// POST /signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	_, err := h.service.Register(r.Context(), username, email, password)
	if err != nil {
		h.recordSignup(false)
		h.renderer.Render(w, statusForError(err), "signup.html", view.PageData{
			Message:   userMessage(err),
			CSRFToken: middleware.CSRFTokenFromContext(r.Context()),
		})
		return
	}

	h.recordSignup(true)
	h.renderer.Render(w, http.StatusOK, "signup.html", view.PageData{
		Success:   "Signup successful! You can now log in.",
		CSRFToken: middleware.CSRFTokenFromContext(r.Context()),
	})
}

// ShowLogin はログインフォームを表示する。
// GET /login
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "login.html", view.PageData{
		CSRFToken: middleware.CSRFTokenFromContext(r.Context()),
	})
}

// Login はログインフォームの送信を処理する。
// 成功時は署名付きセッションCookieを設定し、/dashboardへリダイレクトする。
// POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	identifier := r.PostFormValue("username_email")
	password := r.PostFormValue("password")

	session, err := h.service.Login(r.Context(), identifier, password)
	if err != nil {
		h.recordLogin(false)
		h.renderer.Render(w, statusForError(err), "login.html", view.PageData{
			Message:   userMessage(err),
			CSRFToken: middleware.CSRFTokenFromContext(r.Context()),
		})
		return
	}

	// セッションIDは署名付きで保存する。改ざんされたCookieは
	// ストレージを参照せずに弾ける。
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    auth.SignSessionID(session.ID, h.config.SessionSecret),
		Path:     "/",
		Domain:   h.config.CookieDomain,
		MaxAge:   h.config.SessionMaxAge,
		HttpOnly: true,
		Secure:   h.config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	h.recordLogin(true)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout はセッションを破棄し、/loginへリダイレクトする。
// GET /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.SessionCookieName)
	if err == nil && cookie.Value != "" {
		if sessionID, ok := auth.VerifySessionToken(cookie.Value, h.config.SessionSecret); ok {
			if logoutErr := h.service.Logout(r.Context(), sessionID); logoutErr != nil {
				slog.Error("failed to logout", slog.String("error", logoutErr.Error()))
				// ログアウト失敗してもCookieはクリアする
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.config.CookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) recordSignup(success bool) {
	if h.metrics != nil {
		h.metrics.RecordSignup(success)
	}
}

func (h *AuthHandler) recordLogin(success bool) {
	if h.metrics != nil {
		h.metrics.RecordLogin(success)
	}
}

// userMessage はエラーから画面表示用メッセージを取り出す。
// 想定外のエラーは内部情報を漏らさない汎用メッセージに落とす。
func userMessage(err error) string {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "An unexpected error occurred. Please try again."
}

// statusForError はエラーコードに対応するHTTPステータスコードを返す。
func statusForError(err error) int {
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		return http.StatusInternalServerError
	}

	switch apiErr.Code {
	case model.ErrCodeMissingFields, model.ErrCodeInvalidEmail,
		model.ErrCodeWeakPassword, model.ErrCodeSurveyInvalid:
		return http.StatusBadRequest
	case model.ErrCodeDuplicateAccount:
		return http.StatusConflict
	case model.ErrCodeInvalidCredentials, model.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case model.ErrCodeStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
