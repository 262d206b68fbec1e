package survey

import (
	"context"
	"errors"
	"testing"

	"github.com/hitoshi/labsurvey/internal/model"
	"github.com/hitoshi/labsurvey/internal/repository"
	"github.com/hitoshi/labsurvey/internal/security"
)

// --- モック定義 ---

type mockSurveyRepo struct {
	createFn func(ctx context.Context, response *model.SurveyResponse) error
}

func (m *mockSurveyRepo) Create(ctx context.Context, response *model.SurveyResponse) error {
	if m.createFn != nil {
		return m.createFn(ctx, response)
	}
	return nil
}

func fullInput() *SubmitInput {
	return &SubmitInput{
		Name:                         "Bob",
		Age:                          "22",
		Gender:                       "male",
		SatisfactionLabSessions:      "satisfied",
		Suggestions:                  "more GPU time",
		PreferredLanguage:            "Go",
		RatingLabInfrastructure:      "4",
		Email:                        "bob@x.com",
		ProgrammingLanguagesKnown:    "Go, Python",
		SatisfactionLevelLabSessions: "high",
		FavoriteIDE:                  "vim",
		PreferredLabTime:             "morning",
		AdditionalFeedback:           "thanks",
	}
}

// --- Submit テスト ---

func TestSubmit_Success_InsertsOneRow(t *testing.T) {
	created := 0
	repo := &mockSurveyRepo{
		createFn: func(ctx context.Context, response *model.SurveyResponse) error {
			created++
			response.ID = 10
			if response.UserID != 1 {
				t.Errorf("UserID = %d, want 1", response.UserID)
			}
			if response.Name != "Bob" {
				t.Errorf("Name = %q, want %q", response.Name, "Bob")
			}
			if response.Age == nil || *response.Age != 22 {
				t.Errorf("Age = %v, want 22", response.Age)
			}
			return nil
		},
	}

	svc := NewService(repo, security.NewTextSanitizer())

	response, err := svc.Submit(context.Background(), 1, fullInput())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if response.ID != 10 {
		t.Errorf("response.ID = %d, want 10", response.ID)
	}
	if created != 1 {
		t.Errorf("created = %d, want exactly 1 insert", created)
	}
}

func TestSubmit_OptionalFieldsAbsent_StoredAsNil(t *testing.T) {
	repo := &mockSurveyRepo{
		createFn: func(ctx context.Context, response *model.SurveyResponse) error {
			if response.Age != nil {
				t.Errorf("Age = %v, want nil", response.Age)
			}
			if response.Gender != nil || response.Suggestions != nil || response.AdditionalFeedback != nil {
				t.Errorf("optional fields should be nil: %+v", response)
			}
			return nil
		},
	}

	svc := NewService(repo, security.NewTextSanitizer())

	if _, err := svc.Submit(context.Background(), 1, &SubmitInput{Name: "Bob"}); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
}

func TestSubmit_ValidationFailures_NoInsert(t *testing.T) {
	tests := []struct {
		name  string
		input *SubmitInput
	}{
		{"名前なし", &SubmitInput{}},
		{"空白のみの名前", &SubmitInput{Name: "   "}},
		{"年齢が非整数", &SubmitInput{Name: "Bob", Age: "twenty"}},
		{"年齢がゼロ", &SubmitInput{Name: "Bob", Age: "0"}},
		{"年齢が負数", &SubmitInput{Name: "Bob", Age: "-3"}},
		{"年齢が範囲外", &SubmitInput{Name: "Bob", Age: "200"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockSurveyRepo{
				createFn: func(ctx context.Context, response *model.SurveyResponse) error {
					t.Error("Create must not be called on validation failure")
					return nil
				},
			}

			svc := NewService(repo, security.NewTextSanitizer())

			_, err := svc.Submit(context.Background(), 1, tt.input)
			var apiErr *model.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError, got %v", err)
			}
			if apiErr.Code != model.ErrCodeSurveyInvalid {
				t.Errorf("code = %q, want %q", apiErr.Code, model.ErrCodeSurveyInvalid)
			}
			if apiErr.Message != "Please fill all required fields." {
				t.Errorf("unexpected message %q", apiErr.Message)
			}
		})
	}
}

func TestSubmit_SanitizesFreeTextFields(t *testing.T) {
	repo := &mockSurveyRepo{
		createFn: func(ctx context.Context, response *model.SurveyResponse) error {
			if response.Suggestions == nil || *response.Suggestions != "keep this" {
				t.Errorf("Suggestions = %v, want %q", response.Suggestions, "keep this")
			}
			if response.AdditionalFeedback != nil {
				t.Errorf("feedback of only markup should become nil, got %v", response.AdditionalFeedback)
			}
			return nil
		},
	}

	svc := NewService(repo, security.NewTextSanitizer())

	input := &SubmitInput{
		Name:               "Bob",
		Suggestions:        `<script>alert("xss")</script>keep this`,
		AdditionalFeedback: "<script>only markup</script>",
	}
	if _, err := svc.Submit(context.Background(), 1, input); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
}

func TestSubmit_StorageUnavailable(t *testing.T) {
	repo := &mockSurveyRepo{
		createFn: func(ctx context.Context, response *model.SurveyResponse) error {
			return repository.ErrUnavailable
		},
	}

	svc := NewService(repo, security.NewTextSanitizer())

	_, err := svc.Submit(context.Background(), 1, fullInput())
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeStorageUnavailable {
		t.Errorf("expected storage-unavailable error, got %v", err)
	}
}

func TestSubmit_OtherStorageError_SaveFailed(t *testing.T) {
	repo := &mockSurveyRepo{
		createFn: func(ctx context.Context, response *model.SurveyResponse) error {
			return errors.New("value too long for column")
		},
	}

	svc := NewService(repo, security.NewTextSanitizer())

	_, err := svc.Submit(context.Background(), 1, fullInput())
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeSurveySaveFailed {
		t.Errorf("expected save-failed error, got %v", err)
	}
}
