package application

import (
	"strings"
	"time"

	"github.com/Abraxas-365/campus/pkg/kernel"
)

const interviewDateLayout = "2006-01-02"

// SubmitApplicationRequest - DTO for applying to a job posting
type SubmitApplicationRequest struct {
	JobPostingID kernel.JobPostingID `json:"job_posting_id" validate:"required"`
	CoverLetter  *string             `json:"cover_letter,omitempty" validate:"omitempty,max=10000"`
}

// UpdateStatusRequest - DTO for a partial review update. Blank strings count as absent.
type UpdateStatusRequest struct {
	Status          *string `json:"status,omitempty"`
	InterviewDate   *string `json:"interview_date,omitempty"`
	Feedback        *string `json:"feedback,omitempty" validate:"omitempty,max=5000"`
	RejectionReason *string `json:"rejection_reason,omitempty" validate:"omitempty,max=2000"`
}

// ToStatusUpdate converts the request into a domain update.
// interview_date accepts a calendar date or an RFC 3339 timestamp.
func (r UpdateStatusRequest) ToStatusUpdate() (StatusUpdate, error) {
	var u StatusUpdate

	if s := nonBlank(r.Status); s != nil {
		status := ApplicationStatus(strings.TrimSpace(*s))
		u.Status = &status
	}

	if s := nonBlank(r.InterviewDate); s != nil {
		t, err := parseInterviewDate(strings.TrimSpace(*s))
		if err != nil {
			return StatusUpdate{}, ErrInvalidRequest().
				WithDetail("field", "interview_date").
				WithDetail("value", *s).
				WithCause(err)
		}
		u.InterviewDate = &t
	}

	u.Feedback = nonBlank(r.Feedback)
	u.RejectionReason = nonBlank(r.RejectionReason)
	return u, nil
}

func parseInterviewDate(s string) (time.Time, error) {
	if t, err := time.Parse(interviewDateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func nonBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}

// ListApplicationsResponse - DTO for the list endpoint
type ListApplicationsResponse struct {
	Applications []*ApplicationDetails `json:"applications"`
}
