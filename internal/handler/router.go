package handler

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/labsurvey/internal/metrics"
	"github.com/hitoshi/labsurvey/internal/middleware"
	"github.com/hitoshi/labsurvey/internal/view"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	SessionFinder middleware.SessionFinder
	RateLimiter   *middleware.RateLimiter
	SessionSecret string
	CookieDomain  string
	CookieSecure  bool
	SessionMaxAge int

	// サービス
	AuthService   AuthServiceInterface
	SurveyService SurveyServiceInterface

	// 画面
	Renderer *view.Renderer

	// 運用
	DB               *sql.DB
	Logger           *slog.Logger
	MetricsCollector *metrics.Collector
	MetricsGatherer  prometheus.Gatherer
}

// NewRouter は全ルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → SecurityHeaders → Logging → CSRF
//	（認証ルート: + RateLimit(Credential)）
//	（保護ルート: + Session → RateLimit(General)）
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewLoggingMiddleware(deps.Logger, deps.MetricsCollector))
	r.Use(middleware.NewCSRFMiddleware(middleware.CSRFConfig{
		CookieSecure: deps.CookieSecure,
		CookieDomain: deps.CookieDomain,
	}))

	var recorder MetricsRecorder
	if deps.MetricsCollector != nil {
		recorder = deps.MetricsCollector
	}

	authHandler := NewAuthHandler(deps.AuthService, deps.Renderer, recorder, AuthHandlerConfig{
		SessionSecret: deps.SessionSecret,
		CookieDomain:  deps.CookieDomain,
		CookieSecure:  deps.CookieSecure,
		SessionMaxAge: deps.SessionMaxAge,
	})
	surveyHandler := NewSurveyHandler(deps.SurveyService, deps.Renderer, recorder)
	pageHandler := NewPageHandler(deps.Renderer, deps.DB)

	// --- 認証不要のルート ---

	r.Get("/", pageHandler.Home)
	r.Get("/logout", authHandler.Logout)
	r.Get("/health", pageHandler.Health)
	if deps.MetricsGatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.MetricsGatherer))
	}

	// 認証エンドポイント（IP単位のレート制限付き）
	r.Group(func(r chi.Router) {
		r.Use(deps.RateLimiter.CredentialMiddleware())

		r.Get("/signup", authHandler.ShowSignup)
		r.Post("/signup", authHandler.Signup)
		r.Get("/login", authHandler.ShowLogin)
		r.Post("/login", authHandler.Login)
	})

	// --- 認証が必要なルート ---
	// ミドルウェアスタック: Session → RateLimit(General)
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewSessionMiddleware(deps.SessionFinder, deps.SessionSecret))
		r.Use(deps.RateLimiter.GeneralMiddleware())

		r.Get("/dashboard", pageHandler.Dashboard)
		r.Get("/survey", surveyHandler.Show)
		r.Post("/survey", surveyHandler.Submit)
	})

	r.NotFound(pageHandler.NotFound)

	return r
}
