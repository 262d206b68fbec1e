// Package view は埋め込みHTMLテンプレートのレンダリングを提供する。
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData はテンプレートに渡す表示データ。
type PageData struct {
	Message   string // エラーメッセージ（空なら非表示）
	Success   string // 成功メッセージ（空なら非表示）
	Username  string // ログイン中のユーザー名
	CSRFToken string // フォームの隠しフィールドに埋め込むトークン
}

// Renderer は埋め込みテンプレートをレンダリングする。
type Renderer struct {
	templates *template.Template
}

// NewRenderer は埋め込みテンプレートをパースしてRendererを生成する。
func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: templates}, nil
}

// Render は指定テンプレートをレンダリングしてレスポンスに書き込む。
// テンプレートエラー時は500を返す。部分的に書き込まれたレスポンスを
// 避けるため、一度バッファに描画してから書き出す。
func (rd *Renderer) Render(w http.ResponseWriter, statusCode int, name string, data PageData) {
	var buf bytes.Buffer
	if err := rd.templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("failed to render template",
			slog.String("template", name),
			slog.String("error", err.Error()),
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = buf.WriteTo(w)
}
