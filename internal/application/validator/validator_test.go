package validator

import (
	"testing"

	_ "todo-api/configs"
	"todo-api/internal/domain/model"
)

func TestValidateCreate(t *testing.T) {
	v := MustNew()

	tests := []struct {
		name      string
		body      string
		wantTitle string
		wantError string
		wantPath  string
		wantIssue string
	}{
		{name: "valid", body: `{"title":"buy milk"}`, wantTitle: "buy milk"},
		{name: "unknown fields ignored", body: `{"title":"x","priority":3}`, wantTitle: "x"},
		{name: "whitespace title accepted", body: `{"title":" "}`, wantTitle: " "},
		{name: "empty title", body: `{"title":""}`, wantError: "Validation failed", wantPath: "title", wantIssue: "Title is required"},
		{name: "missing title", body: `{}`, wantError: "Validation failed", wantPath: "title", wantIssue: "Title is required"},
		{name: "title not a string", body: `{"title":42}`, wantError: "Validation failed", wantPath: "title"},
		{name: "not an object", body: `["buy milk"]`, wantError: "Validation failed", wantPath: ""},
		{name: "malformed json", body: `{"title":`, wantError: "Invalid request body", wantPath: ""},
		{name: "empty body", body: ``, wantError: "Invalid request body", wantPath: ""},
		{name: "trailing json value", body: `{"title":"a"} {"title":"b"}`, wantError: "Invalid request body", wantPath: ""},
		{name: "numeric extra field kept as number", body: `{"title":"x","weight":1.5e3}`, wantTitle: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dto, err := v.ValidateCreate([]byte(tt.body))
			if tt.wantError == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if dto.Title != tt.wantTitle {
					t.Errorf("Title: got %q, want %q", dto.Title, tt.wantTitle)
				}
				return
			}

			dErr, ok := model.AsDomainError(err)
			if !ok || dErr.Code != model.ErrCodeInvalid {
				t.Fatalf("got %v, want INVALID domain error", err)
			}
			if dErr.Message != tt.wantError {
				t.Errorf("Message: got %q, want %q", dErr.Message, tt.wantError)
			}
			if len(dErr.Issues) == 0 {
				t.Fatal("Issues: got none")
			}
			if dErr.Issues[0].Path != tt.wantPath {
				t.Errorf("Path: got %q, want %q", dErr.Issues[0].Path, tt.wantPath)
			}
			if tt.wantIssue != "" && dErr.Issues[0].Message != tt.wantIssue {
				t.Errorf("Issue: got %q, want %q", dErr.Issues[0].Message, tt.wantIssue)
			}
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	v := MustNew()

	dto, err := v.ValidateUpdate([]byte(`{"completed":true}`))
	if err != nil {
		t.Fatalf("ValidateUpdate failed: %v", err)
	}
	if dto.Title != nil {
		t.Errorf("Title: got %q, want nil", *dto.Title)
	}
	if dto.Completed == nil || !*dto.Completed {
		t.Errorf("Completed: got %v, want true", dto.Completed)
	}

	dto, err = v.ValidateUpdate([]byte(`{}`))
	if err != nil || dto.Title != nil || dto.Completed != nil {
		t.Errorf("empty update: got (%+v, %v)", dto, err)
	}

	invalid := []string{
		`{"completed":"yes"}`,
		`{"title":""}`,
		`{"title":null}`,
		`"text"`,
		`not json`,
	}
	for _, body := range invalid {
		if _, err := v.ValidateUpdate([]byte(body)); !hasCode(err, model.ErrCodeInvalid) {
			t.Errorf("ValidateUpdate(%s): got %v, want INVALID", body, err)
		}
	}
}

func hasCode(err error, code model.ErrorCode) bool {
	dErr, ok := model.AsDomainError(err)
	return ok && dErr.Code == code
}
