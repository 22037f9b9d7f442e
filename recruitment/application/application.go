package application

import (
	"slices"
	"time"

	"github.com/Abraxas-365/campus/pkg/kernel"
)

// ApplicationStatus represents the review state of an application
type ApplicationStatus string

const (
	ApplicationStatusSubmitted          ApplicationStatus = "submitted" // Initial submission
	ApplicationStatusReviewed           ApplicationStatus = "reviewed"
	ApplicationStatusInterviewScheduled ApplicationStatus = "interview_scheduled"
	ApplicationStatusInterviewCompleted ApplicationStatus = "interview_completed"
	ApplicationStatusOffered            ApplicationStatus = "offered"
	ApplicationStatusAccepted           ApplicationStatus = "accepted"
	ApplicationStatusRejected           ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn          ApplicationStatus = "withdrawn" // Withdrawn by the job seeker
)

var allStatuses = []ApplicationStatus{
	ApplicationStatusSubmitted,
	ApplicationStatusReviewed,
	ApplicationStatusInterviewScheduled,
	ApplicationStatusInterviewCompleted,
	ApplicationStatusOffered,
	ApplicationStatusAccepted,
	ApplicationStatusRejected,
	ApplicationStatusWithdrawn,
}

func (s ApplicationStatus) IsValid() bool {
	return slices.Contains(allStatuses, s)
}

// Statuses returns the status vocabulary in lifecycle order
func Statuses() []ApplicationStatus {
	return slices.Clone(allStatuses)
}

type Application struct {
	ID           kernel.ApplicationID `db:"id" json:"id"`
	JobPostingID kernel.JobPostingID  `db:"job_posting_id" json:"job_posting_id"`
	JobseekerID  kernel.JobseekerID   `db:"jobseeker_id" json:"jobseeker_id"`
	// CompanyID is read from the posting; it is not stored on the application
	CompanyID       kernel.CompanyID  `db:"company_id" json:"company_id"`
	Status          ApplicationStatus `db:"status" json:"status"`
	CoverLetter     *string           `db:"cover_letter" json:"cover_letter,omitempty"`
	InterviewDate   *time.Time        `db:"interview_date" json:"interview_date,omitempty"`
	Feedback        *string           `db:"feedback" json:"feedback,omitempty"`
	RejectionReason *string           `db:"rejection_reason" json:"rejection_reason,omitempty"`
	AppliedAt       time.Time         `db:"applied_at" json:"applied_at"`
	UpdatedAt       time.Time         `db:"updated_at" json:"updated_at"`
	ReviewedBy      *kernel.UserID    `db:"reviewed_by" json:"reviewed_by,omitempty"`
}

// NewApplication builds a freshly submitted application
func NewApplication(
	id kernel.ApplicationID,
	postingID kernel.JobPostingID,
	jobseekerID kernel.JobseekerID,
	companyID kernel.CompanyID,
	coverLetter *string,
	now time.Time,
) *Application {
	return &Application{
		ID:           id,
		JobPostingID: postingID,
		JobseekerID:  jobseekerID,
		CompanyID:    companyID,
		Status:       ApplicationStatusSubmitted,
		CoverLetter:  coverLetter,
		AppliedAt:    now,
		UpdatedAt:    now,
	}
}

// StatusUpdate is a partial update; nil fields are left untouched
type StatusUpdate struct {
	Status          *ApplicationStatus
	InterviewDate   *time.Time
	Feedback        *string
	RejectionReason *string
}

func (u StatusUpdate) IsEmpty() bool {
	return u.Status == nil && u.InterviewDate == nil && u.Feedback == nil && u.RejectionReason == nil
}

// ApplyUpdate applies the supplied fields and stamps the reviewer.
// An empty update still refreshes UpdatedAt and ReviewedBy.
func (a *Application) ApplyUpdate(u StatusUpdate, reviewer kernel.UserID, now time.Time, policy TransitionPolicy) error {
	if u.Status != nil {
		next := *u.Status
		if !next.IsValid() {
			return ErrInvalidStatus().WithDetail("status", next)
		}
		if policy == nil {
			policy = AnyTransition
		}
		if !policy.Allows(a.Status, next) {
			return ErrInvalidStatusTransition().
				WithDetail("current_status", a.Status).
				WithDetail("new_status", next)
		}
		a.Status = next
	}
	if u.InterviewDate != nil {
		d := *u.InterviewDate
		a.InterviewDate = &d
	}
	if u.Feedback != nil {
		f := *u.Feedback
		a.Feedback = &f
	}
	if u.RejectionReason != nil {
		r := *u.RejectionReason
		a.RejectionReason = &r
	}

	a.UpdatedAt = now
	a.ReviewedBy = &reviewer
	return nil
}

// ApplicationDetails is an application joined with its posting, company and applicant
type ApplicationDetails struct {
	Application

	JobTitle    kernel.JobTitle    `db:"job_title" json:"job_title"`
	JobLocation string             `db:"job_location" json:"job_location,omitempty"`
	SalaryMin   *int               `db:"salary_min" json:"salary_min,omitempty"`
	SalaryMax   *int               `db:"salary_max" json:"salary_max,omitempty"`
	CompanyName kernel.CompanyName `db:"company_name" json:"company_name,omitempty"`

	FirstName       kernel.FirstName     `db:"first_name" json:"first_name,omitempty"`
	LastName        kernel.LastName      `db:"last_name" json:"last_name,omitempty"`
	Nationality     string               `db:"nationality" json:"nationality,omitempty"`
	ExperienceYears *int                 `db:"experience_years" json:"experience_years,omitempty"`
	KoreanLevel     kernel.LanguageLevel `db:"korean_level" json:"korean_level,omitempty"`
	VisaStatus      string               `db:"visa_status" json:"visa_status,omitempty"`
	Bio             string               `db:"bio" json:"bio,omitempty"`
	Email           kernel.Email         `db:"email" json:"email,omitempty"`
	Phone           kernel.Phone         `db:"phone" json:"phone,omitempty"`
}

func (d *ApplicationDetails) ApplicantName() string {
	return kernel.FullName(d.FirstName, d.LastName)
}
