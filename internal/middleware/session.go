// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hitoshi/labsurvey/internal/auth"
	"github.com/hitoshi/labsurvey/internal/model"
)

// SessionCookieName はセッショントークンを保持するCookieの名前。
const SessionCookieName = "session_id"

// loginPath は未認証リクエストのリダイレクト先。
const loginPath = "/login"

// contextKey はコンテキストに値を格納するための型安全なキー。
type contextKey string

// sessionContextKey はリクエストコンテキストにセッションを格納するためのキー。
var sessionContextKey = contextKey("session")

// SessionFinder はセッションの検索に必要なインターフェース。
// repository.SessionRepositoryの部分集合として定義する。
type SessionFinder interface {
	FindByID(ctx context.Context, id string) (*model.Session, error)
}

// NewSessionMiddleware はHTTP Only Cookieからセッショントークンを読み取り、
// 署名とストレージ上の有効性を検証するミドルウェアを返す。
// 認証済みセッションをリクエストコンテキストに注入する。
// 未認証リクエストはルート本体を実行せず /login へリダイレクトする。
func NewSessionMiddleware(sessionFinder SessionFinder, secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Cookieからセッショントークンを取得
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				http.Redirect(w, r, loginPath, http.StatusFound)
				return
			}

			// 2. 署名を検証し、セッションIDを取り出す
			//    改ざんされたCookieはストレージ参照なしで弾く
			sessionID, ok := auth.VerifySessionToken(cookie.Value, secret)
			if !ok {
				http.Redirect(w, r, loginPath, http.StatusFound)
				return
			}

			// 3. セッションの有効性を検証
			session, err := sessionFinder.FindByID(r.Context(), sessionID)
			if err != nil {
				slog.Error("failed to find session",
					slog.String("error", err.Error()),
				)
				http.Redirect(w, r, loginPath, http.StatusFound)
				return
			}
			if session == nil {
				http.Redirect(w, r, loginPath, http.StatusFound)
				return
			}

			// 4. 認証済みセッションをコンテキストに注入
			ctx := context.WithValue(r.Context(), sessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext はリクエストコンテキストからセッションを取得する。
// セッションミドルウェアを通過したリクエストでのみ有効。
func SessionFromContext(ctx context.Context) (*model.Session, error) {
	session, ok := ctx.Value(sessionContextKey).(*model.Session)
	if !ok || session == nil {
		return nil, fmt.Errorf("session not found in context")
	}
	return session, nil
}

// ContextWithSession はコンテキストにセッションを注入する。
// テストやミドルウェア以外のコンテキスト生成で使用する。
func ContextWithSession(ctx context.Context, session *model.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}
