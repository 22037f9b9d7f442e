package applicationapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Abraxas-365/campus/pkg/errx/errxfiber"
	"github.com/Abraxas-365/campus/pkg/kernel"
	"github.com/Abraxas-365/campus/recruitment/actor"
	"github.com/Abraxas-365/campus/recruitment/actor/actorapi"
	"github.com/Abraxas-365/campus/recruitment/application"
	"github.com/Abraxas-365/campus/recruitment/application/applicationinfra"
	"github.com/Abraxas-365/campus/recruitment/application/applicationsrv"
	"github.com/Abraxas-365/campus/recruitment/posting"
	"github.com/Abraxas-365/campus/recruitment/posting/postinginfra"
	"github.com/gofiber/fiber/v2"
)

var callers = map[string]actor.Actor{
	"jobseeker": actor.Jobseeker{User: "u-js", ProfileID: "js-1"},
	"company":   actor.Company{User: "u-co", CompanyID: "co-1"},
	"rival":     actor.Company{User: "u-co2", CompanyID: "co-2"},
	"admin":     actor.Admin{User: "u-admin"},
}

// newTestApp picks the caller from the X-Test-Caller header
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	postings := postinginfra.NewMemoryPostingRepository()
	if err := postings.Create(context.Background(), &posting.Posting{ID: "42", CompanyID: "co-1", Status: posting.StatusActive}); err != nil {
		t.Fatalf("seed posting: %v", err)
	}

	clock := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)
	svc := applicationsrv.NewApplicationService(
		applicationinfra.NewMemoryApplicationRepository(),
		postings,
		applicationsrv.WithClock(func() time.Time { return clock }),
		applicationsrv.WithIDGenerator(func() kernel.ApplicationID { return "app-1" }),
	)

	app := fiber.New(fiber.Config{ErrorHandler: errxfiber.ErrorHandler})
	RegisterRoutes(app, NewHandlers(svc), func(c *fiber.Ctx) error {
		if a, ok := callers[c.Get("X-Test-Caller")]; ok {
			actorapi.SetActor(c, a)
		}
		return c.Next()
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, caller, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if caller != "" {
		req.Header.Set("X-Test-Caller", caller)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var out map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("decode %s: %v", raw, err)
		}
	}
	return resp.StatusCode, out
}

func TestApplicationLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)

	status, body := call(t, app, http.MethodPost, "/api/applications", "jobseeker", `{"job_posting_id":"42","cover_letter":"hi"}`)
	if status != http.StatusCreated {
		t.Fatalf("submit: %d %v", status, body)
	}
	if body["id"] != "app-1" || body["status"] != "submitted" || body["jobseeker_id"] != "js-1" {
		t.Fatalf("unexpected submit body %v", body)
	}

	status, body = call(t, app, http.MethodPost, "/api/applications", "jobseeker", `{"job_posting_id":"42"}`)
	if status != http.StatusConflict || body["code"] != application.CodeAlreadyApplied {
		t.Fatalf("duplicate submit: %d %v", status, body)
	}

	status, body = call(t, app, http.MethodGet, "/api/applications", "company", "")
	if status != http.StatusOK {
		t.Fatalf("list: %d %v", status, body)
	}
	if list, ok := body["applications"].([]any); !ok || len(list) != 1 {
		t.Fatalf("expected one application, got %v", body)
	}

	status, body = call(t, app, http.MethodGet, "/api/applications/app-1", "rival", "")
	if status != http.StatusForbidden {
		t.Fatalf("rival get: %d %v", status, body)
	}

	status, body = call(t, app, http.MethodPatch, "/api/applications/app-1", "company",
		`{"status":"interview_scheduled","interview_date":"2025-01-10","feedback":""}`)
	if status != http.StatusOK {
		t.Fatalf("patch: %d %v", status, body)
	}
	if body["status"] != "interview_scheduled" || body["reviewed_by"] != "u-co" {
		t.Fatalf("unexpected patch body %v", body)
	}
	if _, ok := body["feedback"]; ok {
		t.Fatalf("blank feedback should have been ignored: %v", body)
	}

	status, body = call(t, app, http.MethodGet, "/api/applications/app-1", "jobseeker", "")
	if status != http.StatusOK || body["interview_date"] == nil {
		t.Fatalf("jobseeker get: %d %v", status, body)
	}
}

func TestSubmitErrorsOverHTTP(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name   string
		caller string
		body   string
		status int
		code   string
	}{
		{"company cannot apply", "company", `{"job_posting_id":"42"}`, http.StatusForbidden, application.CodeForbidden},
		{"company cannot apply without posting id", "company", `{}`, http.StatusForbidden, application.CodeForbidden},
		{"anonymous cannot apply", "", `{"job_posting_id":"42"}`, http.StatusForbidden, application.CodeForbidden},
		{"missing posting id", "jobseeker", `{}`, http.StatusBadRequest, application.CodeInvalidRequest},
		{"unknown posting", "jobseeker", `{"job_posting_id":"7"}`, http.StatusNotFound, application.CodePostingNotFound},
		{"cover letter too long", "jobseeker", `{"job_posting_id":"42","cover_letter":"` + strings.Repeat("x", 10001) + `"}`, http.StatusBadRequest, application.CodeValidationFailed},
		{"malformed body", "jobseeker", `{"job_posting_id":`, http.StatusBadRequest, application.CodeInvalidRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := call(t, app, http.MethodPost, "/api/applications", tt.caller, tt.body)
			if status != tt.status || body["code"] != tt.code {
				t.Fatalf("got %d %v, want %d %s", status, body, tt.status, tt.code)
			}
		})
	}
}

func TestUpdateErrorsOverHTTP(t *testing.T) {
	app := newTestApp(t)
	if status, body := call(t, app, http.MethodPost, "/api/applications", "jobseeker", `{"job_posting_id":"42"}`); status != http.StatusCreated {
		t.Fatalf("seed: %d %v", status, body)
	}

	tests := []struct {
		name   string
		caller string
		path   string
		body   string
		status int
		code   string
	}{
		{"jobseeker cannot update", "jobseeker", "/api/applications/app-1", `{"status":"withdrawn"}`, http.StatusForbidden, application.CodeForbidden},
		{"invalid status", "admin", "/api/applications/app-1", `{"status":"hired"}`, http.StatusBadRequest, application.CodeInvalidStatus},
		{"bad interview date", "admin", "/api/applications/app-1", `{"interview_date":"soon"}`, http.StatusBadRequest, application.CodeInvalidRequest},
		{"missing application", "admin", "/api/applications/nope", `{"status":"reviewed"}`, http.StatusNotFound, application.CodeApplicationNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := call(t, app, http.MethodPatch, tt.path, tt.caller, tt.body)
			if status != tt.status || body["code"] != tt.code {
				t.Fatalf("got %d %v, want %d %s", status, body, tt.status, tt.code)
			}
		})
	}
}

func TestListForGuestIsEmpty(t *testing.T) {
	app := newTestApp(t)

	status, body := call(t, app, http.MethodGet, "/api/applications", "", "")
	if status != http.StatusOK {
		t.Fatalf("list: %d %v", status, body)
	}
	list, ok := body["applications"].([]any)
	if !ok || len(list) != 0 {
		t.Fatalf("expected empty array, got %v", body["applications"])
	}
}
