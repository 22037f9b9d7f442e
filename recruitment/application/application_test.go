package application

import (
	"testing"
	"time"

	"github.com/Abraxas-365/campus/pkg/errx"
	"github.com/Abraxas-365/campus/pkg/kernel"
	"github.com/Abraxas-365/campus/recruitment/actor"
)

func ptr[T any](v T) *T { return &v }

var (
	t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	t1 = t0.Add(time.Hour)
)

func newSubmitted() *Application {
	return NewApplication("a-1", "p-1", "js-1", "co-1", ptr("hello"), t0)
}

func TestNewApplication(t *testing.T) {
	a := newSubmitted()
	if a.Status != ApplicationStatusSubmitted {
		t.Fatalf("expected submitted, got %s", a.Status)
	}
	if !a.AppliedAt.Equal(t0) || !a.UpdatedAt.Equal(t0) {
		t.Fatalf("expected timestamps set to now")
	}
	if a.ReviewedBy != nil || a.InterviewDate != nil || a.Feedback != nil || a.RejectionReason != nil {
		t.Fatalf("review fields should start empty")
	}
}

func TestStatusVocabulary(t *testing.T) {
	if len(Statuses()) != 8 {
		t.Fatalf("expected 8 statuses, got %d", len(Statuses()))
	}
	for _, s := range Statuses() {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []ApplicationStatus{"", "hired", "SUBMITTED"} {
		if s.IsValid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestApplyUpdatePartial(t *testing.T) {
	a := newSubmitted()
	a.Feedback = ptr("keep me")

	err := a.ApplyUpdate(StatusUpdate{Status: ptr(ApplicationStatusReviewed)}, "u-co", t1, AnyTransition)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if a.Status != ApplicationStatusReviewed {
		t.Errorf("status not applied")
	}
	if a.Feedback == nil || *a.Feedback != "keep me" {
		t.Errorf("unsupplied feedback changed: %v", a.Feedback)
	}
	if a.InterviewDate != nil || a.RejectionReason != nil {
		t.Errorf("unsupplied fields changed")
	}
	if !a.UpdatedAt.Equal(t1) || a.ReviewedBy == nil || *a.ReviewedBy != "u-co" {
		t.Errorf("expected updatedAt and reviewedBy to be stamped")
	}
	if a.CoverLetter == nil || *a.CoverLetter != "hello" || !a.AppliedAt.Equal(t0) {
		t.Errorf("immutable fields changed")
	}
}

func TestApplyUpdateEmptyStillStamps(t *testing.T) {
	a := newSubmitted()

	if err := a.ApplyUpdate(StatusUpdate{}, "u-admin", t1, nil); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if a.Status != ApplicationStatusSubmitted {
		t.Errorf("status changed on empty update")
	}
	if !a.UpdatedAt.Equal(t1) || *a.ReviewedBy != "u-admin" {
		t.Errorf("empty update should refresh updatedAt and reviewedBy")
	}
}

func TestApplyUpdateRejectsInvalidStatus(t *testing.T) {
	a := newSubmitted()

	err := a.ApplyUpdate(StatusUpdate{Status: ptr(ApplicationStatus("hired")), Feedback: ptr("x")}, "u", t1, AnyTransition)
	if !errx.IsCode(err, CodeInvalidStatus) {
		t.Fatalf("expected invalid status, got %v", err)
	}
	if a.Feedback != nil || !a.UpdatedAt.Equal(t0) {
		t.Fatalf("failed update must not modify the application")
	}
}

func TestAnyTransitionAllowsBackwards(t *testing.T) {
	a := newSubmitted()
	a.Status = ApplicationStatusAccepted

	if err := a.ApplyUpdate(StatusUpdate{Status: ptr(ApplicationStatusSubmitted)}, "u", t1, AnyTransition); err != nil {
		t.Fatalf("permissive policy rejected transition: %v", err)
	}
}

func TestDefaultTransitionTable(t *testing.T) {
	tests := []struct {
		from, to ApplicationStatus
		want     bool
	}{
		{ApplicationStatusSubmitted, ApplicationStatusReviewed, true},
		{ApplicationStatusReviewed, ApplicationStatusInterviewScheduled, true},
		{ApplicationStatusInterviewScheduled, ApplicationStatusInterviewCompleted, true},
		{ApplicationStatusInterviewCompleted, ApplicationStatusOffered, true},
		{ApplicationStatusOffered, ApplicationStatusAccepted, true},
		{ApplicationStatusOffered, ApplicationStatusWithdrawn, true},
		{ApplicationStatusInterviewScheduled, ApplicationStatusInterviewScheduled, true},
		{ApplicationStatusAccepted, ApplicationStatusSubmitted, false},
		{ApplicationStatusRejected, ApplicationStatusReviewed, false},
		{ApplicationStatusSubmitted, ApplicationStatusAccepted, false},
	}
	for _, tt := range tests {
		if got := DefaultTransitionTable.Allows(tt.from, tt.to); got != tt.want {
			t.Errorf("%s -> %s: got %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}

	a := newSubmitted()
	a.Status = ApplicationStatusRejected
	err := a.ApplyUpdate(StatusUpdate{Status: ptr(ApplicationStatusReviewed)}, "u", t1, DefaultTransitionTable)
	if !errx.IsCode(err, CodeInvalidStatusTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
}

func TestCanAccess(t *testing.T) {
	app := newSubmitted()

	tests := []struct {
		name   string
		caller actor.Actor
		want   bool
	}{
		{"admin", actor.Admin{User: "u-ad"}, true},
		{"owning company", actor.Company{User: "u-co", CompanyID: "co-1"}, true},
		{"other company", actor.Company{User: "u-co2", CompanyID: "co-2"}, false},
		{"company without record", actor.Company{User: "u-co3"}, false},
		{"owning jobseeker", actor.Jobseeker{User: "u-js", ProfileID: "js-1"}, true},
		{"other jobseeker", actor.Jobseeker{User: "u-js2", ProfileID: "js-2"}, false},
		{"jobseeker without profile", actor.Jobseeker{User: "u-js3"}, false},
		{"agent", actor.Guest{User: "u-ag", RoleName: "agent"}, false},
		{"anonymous", actor.Anonymous(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccess(tt.caller, app); got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanAccessEmptyIDsNeverMatch(t *testing.T) {
	orphan := &Application{ID: "a-2"}

	if CanAccess(actor.Company{User: "u"}, orphan) {
		t.Fatalf("empty company ids matched")
	}
	if CanAccess(actor.Jobseeker{User: "u"}, orphan) {
		t.Fatalf("empty profile ids matched")
	}
	if CanAccess(actor.Admin{}, nil) {
		t.Fatalf("nil application should not be accessible")
	}
}

func TestCanUpdate(t *testing.T) {
	app := newSubmitted()

	if !CanUpdate(actor.Admin{User: "u"}, app) {
		t.Errorf("admin should update")
	}
	if !CanUpdate(actor.Company{User: "u", CompanyID: "co-1"}, app) {
		t.Errorf("owning company should update")
	}
	if CanUpdate(actor.Company{User: "u", CompanyID: "co-2"}, app) {
		t.Errorf("other company should not update")
	}
	if CanUpdate(actor.Jobseeker{User: "u", ProfileID: "js-1"}, app) {
		t.Errorf("jobseeker must never update, even their own")
	}
	if MayUpdateAny(actor.Jobseeker{}) || MayUpdateAny(actor.Anonymous()) || !MayUpdateAny(actor.Company{}) {
		t.Errorf("unexpected role gate")
	}
}

func TestUpdateStatusRequestToStatusUpdate(t *testing.T) {
	u, err := UpdateStatusRequest{
		Status:          ptr(" interview_scheduled "),
		InterviewDate:   ptr("2024-04-02"),
		Feedback:        ptr("   "),
		RejectionReason: nil,
	}.ToStatusUpdate()
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if u.Status == nil || *u.Status != ApplicationStatusInterviewScheduled {
		t.Errorf("unexpected status %v", u.Status)
	}
	if u.InterviewDate == nil || !u.InterviewDate.Equal(time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected interview date %v", u.InterviewDate)
	}
	if u.Feedback != nil {
		t.Errorf("blank feedback should be absent")
	}

	u, err = UpdateStatusRequest{InterviewDate: ptr("2024-04-02T10:30:00+09:00")}.ToStatusUpdate()
	if err != nil || u.InterviewDate == nil {
		t.Fatalf("expected RFC3339 date to parse: %v", err)
	}

	if _, err := (UpdateStatusRequest{InterviewDate: ptr("next tuesday")}).ToStatusUpdate(); !errx.IsCode(err, CodeInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}

	empty, err := UpdateStatusRequest{}.ToStatusUpdate()
	if err != nil || !empty.IsEmpty() {
		t.Fatalf("expected empty update, got %+v %v", empty, err)
	}
}

func TestApplicantName(t *testing.T) {
	d := ApplicationDetails{FirstName: kernel.FirstName("Minh"), LastName: kernel.LastName("Tran")}
	if d.ApplicantName() != "Minh Tran" {
		t.Fatalf("unexpected name %q", d.ApplicantName())
	}
}
