package posting

import (
	"context"

	"github.com/Abraxas-365/campus/pkg/kernel"
)

type Repository interface {
	Create(ctx context.Context, p *Posting) error

	GetByID(ctx context.Context, id kernel.JobPostingID) (*Posting, error)

	// IncrementApplicationsCount adds one to the cached counter
	IncrementApplicationsCount(ctx context.Context, id kernel.JobPostingID) error

	// RecountApplications recomputes every stale counter from the applications
	// table and returns how many postings changed
	RecountApplications(ctx context.Context) (int64, error)
}
