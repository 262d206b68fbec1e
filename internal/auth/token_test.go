package auth

import (
	"strings"
	"testing"
)

const testSecret = "test-session-secret-32bytes-long"

func TestSignSessionID_VerifyRoundTrip(t *testing.T) {
	token := SignSessionID("sid-1234", testSecret)

	if !strings.HasPrefix(token, "sid-1234.") {
		t.Errorf("token should start with the session ID, got %q", token)
	}

	sessionID, ok := VerifySessionToken(token, testSecret)
	if !ok {
		t.Fatal("expected token to verify")
	}
	if sessionID != "sid-1234" {
		t.Errorf("sessionID = %q, want %q", sessionID, "sid-1234")
	}
}

func TestVerifySessionToken_TamperedID_Fails(t *testing.T) {
	token := SignSessionID("sid-1234", testSecret)
	tampered := strings.Replace(token, "sid-1234", "sid-9999", 1)

	if _, ok := VerifySessionToken(tampered, testSecret); ok {
		t.Error("tampered session ID must not verify")
	}
}

func TestVerifySessionToken_WrongSecret_Fails(t *testing.T) {
	token := SignSessionID("sid-1234", testSecret)

	if _, ok := VerifySessionToken(token, "another-secret"); ok {
		t.Error("token signed with a different secret must not verify")
	}
}

func TestVerifySessionToken_MalformedToken_Fails(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"空文字列", ""},
		{"区切りなし", "sid-1234"},
		{"署名部分が空", "sid-1234."},
		{"ID部分が空", ".abcdef"},
		{"でたらめな署名", "sid-1234.deadbeef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := VerifySessionToken(tt.token, testSecret); ok {
				t.Errorf("VerifySessionToken(%q) = ok, want failure", tt.token)
			}
		})
	}
}
