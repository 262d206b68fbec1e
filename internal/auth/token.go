package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SignSessionID はセッションIDにHMAC-SHA256署名を付与したCookie値を生成する。
// 形式は "<sessionID>.<hex署名>"。
// 署名により、ストレージ参照の前に改ざんされたCookieを弾ける。
func SignSessionID(sessionID, secret string) string {
	return sessionID + "." + signature(sessionID, secret)
}

// VerifySessionToken は署名済みCookie値を検証し、セッションIDを取り出す。
// 署名が一致しない場合や形式が不正な場合はfalseを返す。
func VerifySessionToken(token, secret string) (string, bool) {
	idx := strings.LastIndex(token, ".")
	if idx <= 0 || idx == len(token)-1 {
		return "", false
	}
	sessionID := token[:idx]
	sig := token[idx+1:]

	if !hmac.Equal([]byte(sig), []byte(signature(sessionID, secret))) {
		return "", false
	}
	return sessionID, true
}

// signature はセッションIDのHMAC-SHA256署名をhex文字列で返す。
func signature(sessionID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(sessionID))
	return hex.EncodeToString(mac.Sum(nil))
}
