package application

import (
	"context"

	"github.com/Abraxas-365/campus/pkg/kernel"
)

// UpdateFunc mutates an application inside the store transaction.
// Returning an error aborts the update.
type UpdateFunc func(app *Application) error

type Repository interface {
	// Create inserts a new application; a duplicate posting/jobseeker pair is a conflict
	Create(ctx context.Context, app *Application) error

	ExistsByPostingAndJobseeker(ctx context.Context, postingID kernel.JobPostingID, jobseekerID kernel.JobseekerID) (bool, error)

	// GetWithDetails retrieves the composite view of one application
	GetWithDetails(ctx context.Context, id kernel.ApplicationID) (*ApplicationDetails, error)

	// List methods return newest first
	ListByJobseeker(ctx context.Context, jobseekerID kernel.JobseekerID) ([]*ApplicationDetails, error)
	ListByCompany(ctx context.Context, companyID kernel.CompanyID) ([]*ApplicationDetails, error)
	ListRecent(ctx context.Context, limit int) ([]*ApplicationDetails, error)

	// Update locks the application, runs fn and persists the result atomically
	Update(ctx context.Context, id kernel.ApplicationID, fn UpdateFunc) (*Application, error)
}
