package applicationinfra

import (
	"context"
	"slices"
	"sync"

	"github.com/Abraxas-365/campus/pkg/kernel"
	"github.com/Abraxas-365/campus/recruitment/application"
)

type pairKey struct {
	posting   kernel.JobPostingID
	jobseeker kernel.JobseekerID
}

type memoryRecord struct {
	app application.Application
	seq int
}

// MemoryApplicationRepository is an application.Repository kept in process memory.
// Details carry only the application unless Enrich fills in the joined fields.
type MemoryApplicationRepository struct {
	mu      sync.Mutex
	records map[kernel.ApplicationID]*memoryRecord
	pairs   map[pairKey]kernel.ApplicationID
	seq     int

	Enrich func(d *application.ApplicationDetails)
}

func NewMemoryApplicationRepository() *MemoryApplicationRepository {
	return &MemoryApplicationRepository{
		records: make(map[kernel.ApplicationID]*memoryRecord),
		pairs:   make(map[pairKey]kernel.ApplicationID),
	}
}

func (r *MemoryApplicationRepository) Create(_ context.Context, app *application.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey{posting: app.JobPostingID, jobseeker: app.JobseekerID}
	if _, exists := r.pairs[key]; exists {
		return application.ErrAlreadyApplied().WithDetail("job_posting_id", app.JobPostingID.String())
	}
	if _, exists := r.records[app.ID]; exists {
		return application.ErrAlreadyApplied().WithDetail("application_id", app.ID.String())
	}

	r.seq++
	r.records[app.ID] = &memoryRecord{app: *app, seq: r.seq}
	r.pairs[key] = app.ID
	return nil
}

func (r *MemoryApplicationRepository) ExistsByPostingAndJobseeker(_ context.Context, postingID kernel.JobPostingID, jobseekerID kernel.JobseekerID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.pairs[pairKey{posting: postingID, jobseeker: jobseekerID}]
	return exists, nil
}

func (r *MemoryApplicationRepository) GetWithDetails(_ context.Context, id kernel.ApplicationID) (*application.ApplicationDetails, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}
	return r.details(rec), nil
}

func (r *MemoryApplicationRepository) ListByJobseeker(_ context.Context, jobseekerID kernel.JobseekerID) ([]*application.ApplicationDetails, error) {
	return r.list(func(a *application.Application) bool { return a.JobseekerID == jobseekerID }, 0), nil
}

func (r *MemoryApplicationRepository) ListByCompany(_ context.Context, companyID kernel.CompanyID) ([]*application.ApplicationDetails, error) {
	return r.list(func(a *application.Application) bool { return a.CompanyID == companyID }, 0), nil
}

func (r *MemoryApplicationRepository) ListRecent(_ context.Context, limit int) ([]*application.ApplicationDetails, error) {
	return r.list(func(*application.Application) bool { return true }, limit), nil
}

func (r *MemoryApplicationRepository) Update(_ context.Context, id kernel.ApplicationID, fn application.UpdateFunc) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}

	working := rec.app
	if err := fn(&working); err != nil {
		return nil, err
	}
	rec.app = working

	out := working
	return &out, nil
}

// CountByPosting returns how many applications reference the posting
func (r *MemoryApplicationRepository) CountByPosting(postingID kernel.JobPostingID) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for key := range r.pairs {
		if key.posting == postingID {
			n++
		}
	}
	return n
}

// list returns matches newest first; limit <= 0 means no limit
func (r *MemoryApplicationRepository) list(match func(*application.Application) bool, limit int) []*application.ApplicationDetails {
	r.mu.Lock()
	defer r.mu.Unlock()

	var recs []*memoryRecord
	for _, rec := range r.records {
		if match(&rec.app) {
			recs = append(recs, rec)
		}
	}

	slices.SortFunc(recs, func(a, b *memoryRecord) int {
		if c := b.app.AppliedAt.Compare(a.app.AppliedAt); c != 0 {
			return c
		}
		return b.seq - a.seq
	})
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}

	out := make([]*application.ApplicationDetails, 0, len(recs))
	for _, rec := range recs {
		out = append(out, r.details(rec))
	}
	return out
}

func (r *MemoryApplicationRepository) details(rec *memoryRecord) *application.ApplicationDetails {
	d := &application.ApplicationDetails{Application: rec.app}
	if r.Enrich != nil {
		r.Enrich(d)
	}
	return d
}
