package applicationsrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/campus/pkg/errx"
	"github.com/Abraxas-365/campus/pkg/kernel"
	"github.com/Abraxas-365/campus/pkg/logx"
	"github.com/Abraxas-365/campus/pkg/validatex"
	"github.com/Abraxas-365/campus/recruitment/actor"
	"github.com/Abraxas-365/campus/recruitment/application"
	"github.com/Abraxas-365/campus/recruitment/posting"
	"github.com/google/uuid"
)

// RecentLimit caps the administrator list
const RecentLimit = 100

// ApplicationService provides business operations for applications
type ApplicationService struct {
	applicationRepo application.Repository
	postingRepo     posting.Repository
	policy          application.TransitionPolicy
	now             func() time.Time
	newID           func() kernel.ApplicationID
}

type Option func(*ApplicationService)

// WithTransitionPolicy restricts which status changes UpdateStatus accepts
func WithTransitionPolicy(p application.TransitionPolicy) Option {
	return func(s *ApplicationService) { s.policy = p }
}

func WithClock(now func() time.Time) Option {
	return func(s *ApplicationService) { s.now = now }
}

func WithIDGenerator(newID func() kernel.ApplicationID) Option {
	return func(s *ApplicationService) { s.newID = newID }
}

// NewApplicationService creates a new instance of the application service
func NewApplicationService(
	applicationRepo application.Repository,
	postingRepo posting.Repository,
	opts ...Option,
) *ApplicationService {
	s := &ApplicationService{
		applicationRepo: applicationRepo,
		postingRepo:     postingRepo,
		policy:          application.AnyTransition,
		now:             func() time.Time { return time.Now().UTC() },
		newID:           func() kernel.ApplicationID { return kernel.NewApplicationID(uuid.NewString()) },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit applies the calling job seeker to an active posting
func (s *ApplicationService) Submit(ctx context.Context, caller actor.Actor, req application.SubmitApplicationRequest) (*application.Application, error) {
	js, ok := caller.(actor.Jobseeker)
	if !ok {
		return nil, application.ErrForbidden().
			WithDetail("role", string(caller.Role())).
			WithDetail("action", "submit")
	}
	if js.ProfileID.IsEmpty() {
		return nil, application.ErrProfileMissing().WithDetail("user_id", js.User.String())
	}
	if req.JobPostingID.IsEmpty() {
		return nil, application.ErrInvalidRequest().WithDetail("field", "job_posting_id")
	}
	if errs := validatex.Struct(&req); errs != nil {
		return nil, application.ErrValidationFailed().WithDetail("fields", errs)
	}

	p, err := s.postingRepo.GetByID(ctx, req.JobPostingID)
	if err != nil {
		if errx.IsCode(err, posting.CodePostingNotFound) {
			return nil, application.ErrPostingNotFound().WithDetail("job_posting_id", req.JobPostingID.String())
		}
		return nil, storeFailure(err, "get posting")
	}
	if !p.AcceptsApplications() {
		return nil, application.ErrPostingNotFound().
			WithDetail("job_posting_id", req.JobPostingID.String()).
			WithDetail("status", string(p.Status))
	}

	exists, err := s.applicationRepo.ExistsByPostingAndJobseeker(ctx, p.ID, js.ProfileID)
	if err != nil {
		return nil, storeFailure(err, "check duplicate application")
	}
	if exists {
		return nil, application.ErrAlreadyApplied().WithDetail("job_posting_id", p.ID.String())
	}

	newApplication := application.NewApplication(s.newID(), p.ID, js.ProfileID, p.CompanyID, req.CoverLetter, s.now())

	// the unique index still rejects a concurrent duplicate here
	if err := s.applicationRepo.Create(ctx, newApplication); err != nil {
		return nil, storeFailure(err, "create application")
	}

	if err := s.postingRepo.IncrementApplicationsCount(ctx, p.ID); err != nil {
		logx.WithFields(logx.Fields{
			"job_posting_id": p.ID.String(),
			"application_id": newApplication.ID.String(),
		}).Warnf("failed to increment applications count: %v", err)
	}

	logx.WithFields(logx.Fields{
		"application_id": newApplication.ID.String(),
		"job_posting_id": p.ID.String(),
	}).Infof("application submitted")

	return newApplication, nil
}

// Get returns the composite view of one application the caller may see
func (s *ApplicationService) Get(ctx context.Context, caller actor.Actor, id kernel.ApplicationID) (*application.ApplicationDetails, error) {
	details, err := s.applicationRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, storeFailure(err, "get application")
	}

	if !application.CanAccess(caller, &details.Application) {
		return nil, application.ErrForbidden().
			WithDetail("application_id", id.String()).
			WithDetail("role", string(caller.Role()))
	}

	return details, nil
}

// List returns the applications visible to the caller, newest first.
// Roles without application access get an empty list, not an error.
func (s *ApplicationService) List(ctx context.Context, caller actor.Actor) ([]*application.ApplicationDetails, error) {
	var (
		list []*application.ApplicationDetails
		err  error
	)

	switch c := caller.(type) {
	case actor.Admin:
		list, err = s.applicationRepo.ListRecent(ctx, RecentLimit)

	case actor.Company:
		if c.CompanyID.IsEmpty() {
			logx.Debugf("company user %s has no company record, returning no applications", c.User)
			return []*application.ApplicationDetails{}, nil
		}
		list, err = s.applicationRepo.ListByCompany(ctx, c.CompanyID)

	case actor.Jobseeker:
		if c.ProfileID.IsEmpty() {
			logx.Debugf("jobseeker user %s has no profile, returning no applications", c.User)
			return []*application.ApplicationDetails{}, nil
		}
		list, err = s.applicationRepo.ListByJobseeker(ctx, c.ProfileID)

	default:
		role := string(caller.Role())
		if role == "" {
			role = "anonymous"
		}
		logx.WithFields(logx.Fields{"role": role}).Warnf("role has no application listing, returning empty list")
		return []*application.ApplicationDetails{}, nil
	}

	if err != nil {
		return nil, storeFailure(err, "list applications")
	}
	if len(list) == 0 {
		logx.WithFields(logx.Fields{"role": string(caller.Role())}).Debugf("no applications found")
		return []*application.ApplicationDetails{}, nil
	}
	return list, nil
}

// UpdateStatus applies a partial review update for an admin or the owning company.
// The ownership check and the write happen in one store transaction.
func (s *ApplicationService) UpdateStatus(ctx context.Context, caller actor.Actor, id kernel.ApplicationID, update application.StatusUpdate) (*application.Application, error) {
	if !application.MayUpdateAny(caller) {
		return nil, application.ErrForbidden().
			WithDetail("role", string(caller.Role())).
			WithDetail("action", "update_status")
	}
	if update.Status != nil && !update.Status.IsValid() {
		return nil, application.ErrInvalidStatus().WithDetail("status", string(*update.Status))
	}

	updated, err := s.applicationRepo.Update(ctx, id, func(app *application.Application) error {
		if !application.CanUpdate(caller, app) {
			return application.ErrForbidden().WithDetail("application_id", id.String())
		}
		return app.ApplyUpdate(update, caller.UserID(), s.now(), s.policy)
	})
	if err != nil {
		return nil, storeFailure(err, "update application")
	}

	logx.WithFields(logx.Fields{
		"application_id": id.String(),
		"status":         string(updated.Status),
		"reviewed_by":    caller.UserID().String(),
	}).Infof("application updated")

	return updated, nil
}

// storeFailure passes domain errors through and wraps everything else
func storeFailure(err error, op string) error {
	if e, ok := errx.As(err); ok && e.Type != errx.TypeInternal {
		return err
	}
	return application.ErrStoreFailure(err).WithDetail("operation", op)
}
