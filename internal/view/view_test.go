package view

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	rd, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return rd
}

func TestRender_LoginPage(t *testing.T) {
	rd := newTestRenderer(t)

	w := httptest.NewRecorder()
	rd.Render(w, http.StatusOK, "login.html", PageData{CSRFToken: "tok-123"})

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, `name="username_email"`) {
		t.Error("expected username_email field in login form")
	}
	if !strings.Contains(body, `name="_csrf" value="tok-123"`) {
		t.Error("expected CSRF token in hidden field")
	}
}

func TestRender_SignupPage_ShowsMessage(t *testing.T) {
	rd := newTestRenderer(t)

	w := httptest.NewRecorder()
	rd.Render(w, http.StatusBadRequest, "signup.html", PageData{Message: "Invalid email format."})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if !strings.Contains(w.Body.String(), "Invalid email format.") {
		t.Error("expected error message in body")
	}
}

func TestRender_SignupPage_ShowsSuccess(t *testing.T) {
	rd := newTestRenderer(t)

	w := httptest.NewRecorder()
	rd.Render(w, http.StatusOK, "signup.html", PageData{Success: "Signup successful! You can now log in."})

	if !strings.Contains(w.Body.String(), "Signup successful! You can now log in.") {
		t.Error("expected success message in body")
	}
}

func TestRender_DashboardPage_ShowsUsername(t *testing.T) {
	rd := newTestRenderer(t)

	w := httptest.NewRecorder()
	rd.Render(w, http.StatusOK, "dashboard.html", PageData{Username: "alice"})

	if !strings.Contains(w.Body.String(), "Welcome, alice!") {
		t.Error("expected username greeting in body")
	}
}

func TestRender_EscapesUserInput(t *testing.T) {
	rd := newTestRenderer(t)

	w := httptest.NewRecorder()
	rd.Render(w, http.StatusOK, "dashboard.html", PageData{Username: `<script>alert(1)</script>`})

	body := w.Body.String()
	if strings.Contains(body, "<script>alert(1)</script>") {
		t.Error("expected username to be HTML-escaped")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Error("expected escaped script tag in body")
	}
}

func TestRender_SurveyPage_HasAllFields(t *testing.T) {
	rd := newTestRenderer(t)

	w := httptest.NewRecorder()
	rd.Render(w, http.StatusOK, "survey.html", PageData{})

	body := w.Body.String()
	fields := []string{
		"name", "age", "gender", "satisfaction_lab_sessions", "suggestions",
		"preferred_language", "rating_lab_infrastructure", "email",
		"programming_languages_known", "satisfaction_level_lab_sessions",
		"favorite_ide", "preferred_lab_time", "additional_feedback",
	}
	for _, field := range fields {
		if !strings.Contains(body, `name="`+field+`"`) {
			t.Errorf("expected field %q in survey form", field)
		}
	}
}

func TestRender_UnknownTemplate_Returns500(t *testing.T) {
	rd := newTestRenderer(t)

	w := httptest.NewRecorder()
	rd.Render(w, http.StatusOK, "missing.html", PageData{})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}
