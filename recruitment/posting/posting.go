package posting

import (
	"time"

	"github.com/Abraxas-365/campus/pkg/kernel"
)

// Status of a job posting
type Status string

const (
	StatusDraft   Status = "draft"
	StatusActive  Status = "active" // accepting applications
	StatusPaused  Status = "paused"
	StatusClosed  Status = "closed"
	StatusExpired Status = "expired"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusPaused, StatusClosed, StatusExpired:
		return true
	}
	return false
}

type Posting struct {
	ID                kernel.JobPostingID `db:"id" json:"id"`
	CompanyID         kernel.CompanyID    `db:"company_id" json:"company_id"`
	Title             kernel.JobTitle     `db:"title" json:"title"`
	Location          string              `db:"location" json:"location,omitempty"`
	SalaryMin         *int                `db:"salary_min" json:"salary_min,omitempty"`
	SalaryMax         *int                `db:"salary_max" json:"salary_max,omitempty"`
	Status            Status              `db:"status" json:"status"`
	ApplicationsCount int                 `db:"applications_count" json:"applications_count"`
	CreatedAt         time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time           `db:"updated_at" json:"updated_at"`
}

// AcceptsApplications reports whether new applications may be submitted.
// Closing a posting later does not affect applications already made.
func (p *Posting) AcceptsApplications() bool {
	return p.Status == StatusActive
}

func (p *Posting) IsOwnedBy(companyID kernel.CompanyID) bool {
	return !companyID.IsEmpty() && p.CompanyID == companyID
}
