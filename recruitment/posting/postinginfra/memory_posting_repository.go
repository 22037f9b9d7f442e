package postinginfra

import (
	"context"
	"sync"

	"github.com/Abraxas-365/campus/pkg/kernel"
	"github.com/Abraxas-365/campus/recruitment/posting"
)

// MemoryPostingRepository is a posting.Repository kept in process memory
type MemoryPostingRepository struct {
	mu       sync.RWMutex
	postings map[kernel.JobPostingID]posting.Posting

	// CountApplications backs RecountApplications; nil means every count is zero
	CountApplications func(id kernel.JobPostingID) int
	// FailIncrement makes IncrementApplicationsCount return the error
	FailIncrement error
}

func NewMemoryPostingRepository() *MemoryPostingRepository {
	return &MemoryPostingRepository{postings: make(map[kernel.JobPostingID]posting.Posting)}
}

func (r *MemoryPostingRepository) Create(_ context.Context, p *posting.Posting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.postings[p.ID]; exists {
		return posting.ErrPostingAlreadyExists().WithDetail("posting_id", p.ID.String())
	}
	r.postings[p.ID] = *p
	return nil
}

func (r *MemoryPostingRepository) GetByID(_ context.Context, id kernel.JobPostingID) (*posting.Posting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.postings[id]
	if !ok {
		return nil, posting.ErrPostingNotFound().WithDetail("posting_id", id.String())
	}
	return &p, nil
}

func (r *MemoryPostingRepository) IncrementApplicationsCount(_ context.Context, id kernel.JobPostingID) error {
	if r.FailIncrement != nil {
		return r.FailIncrement
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.postings[id]
	if !ok {
		return posting.ErrPostingNotFound().WithDetail("posting_id", id.String())
	}
	p.ApplicationsCount++
	r.postings[id] = p
	return nil
}

func (r *MemoryPostingRepository) RecountApplications(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var changed int64
	for id, p := range r.postings {
		total := 0
		if r.CountApplications != nil {
			total = r.CountApplications(id)
		}
		if p.ApplicationsCount != total {
			p.ApplicationsCount = total
			r.postings[id] = p
			changed++
		}
	}
	return changed, nil
}
