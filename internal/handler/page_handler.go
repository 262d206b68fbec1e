package handler

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/hitoshi/labsurvey/internal/middleware"
	"github.com/hitoshi/labsurvey/internal/view"
)

// PageHandler はフォーム以外の画面と運用エンドポイントのHTTPハンドラー。
type PageHandler struct {
	renderer *view.Renderer
	db       *sql.DB
}

// NewPageHandler はPageHandlerを生成する。
func NewPageHandler(renderer *view.Renderer, db *sql.DB) *PageHandler {
	return &PageHandler{
		renderer: renderer,
		db:       db,
	}
}

// Home はトップページへのアクセスをログイン画面にリダイレクトする。
// GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Dashboard はログイン後のダッシュボードを表示する。
// GET /dashboard
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.SessionFromContext(r.Context())
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	h.renderer.Render(w, http.StatusOK, "dashboard.html", view.PageData{
		Username: session.Username,
	})
}

// NotFound は未定義ルートに404ページを返す。
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusNotFound, "notfound.html", view.PageData{})
}

// Health はDBへの疎通確認を行うヘルスチェックエンドポイント。
// GET /health
func (h *PageHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		slog.Error("health check failed", slog.String("error", err.Error()))
		http.Error(w, "unhealthy", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
