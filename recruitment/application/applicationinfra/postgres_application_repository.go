package applicationinfra

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Abraxas-365/campus/internal/database"
	"github.com/Abraxas-365/campus/pkg/errx"
	"github.com/Abraxas-365/campus/pkg/kernel"
	"github.com/Abraxas-365/campus/recruitment/application"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniquePostingJobseeker = "ux_applications_posting_jobseeker"

// PostgresApplicationRepository implements application.Repository using PostgreSQL
type PostgresApplicationRepository struct {
	db *sqlx.DB
}

// NewPostgresApplicationRepository creates a new PostgreSQL application repository
func NewPostgresApplicationRepository(db *sqlx.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{
		db: db,
	}
}

// ============================================================================
// Database Models
// ============================================================================

type applicationModel struct {
	ID              string         `db:"id"`
	JobPostingID    string         `db:"job_posting_id"`
	JobseekerID     string         `db:"jobseeker_id"`
	CompanyID       sql.NullString `db:"company_id"`
	Status          string         `db:"status"`
	CoverLetter     sql.NullString `db:"cover_letter"`
	InterviewDate   sql.NullTime   `db:"interview_date"`
	Feedback        sql.NullString `db:"feedback"`
	RejectionReason sql.NullString `db:"rejection_reason"`
	AppliedAt       time.Time      `db:"applied_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
	ReviewedBy      sql.NullString `db:"reviewed_by"`
}

// detailsModel is the LEFT JOIN row; every joined column may be NULL
type detailsModel struct {
	applicationModel
	JobTitle        sql.NullString `db:"job_title"`
	JobLocation     sql.NullString `db:"job_location"`
	SalaryMin       sql.NullInt64  `db:"salary_min"`
	SalaryMax       sql.NullInt64  `db:"salary_max"`
	CompanyName     sql.NullString `db:"company_name"`
	FirstName       sql.NullString `db:"first_name"`
	LastName        sql.NullString `db:"last_name"`
	Nationality     sql.NullString `db:"nationality"`
	ExperienceYears sql.NullInt64  `db:"experience_years"`
	KoreanLevel     sql.NullString `db:"korean_level"`
	VisaStatus      sql.NullString `db:"visa_status"`
	Bio             sql.NullString `db:"bio"`
	Email           sql.NullString `db:"email"`
	Phone           sql.NullString `db:"phone"`
}

func (m *applicationModel) toEntity() *application.Application {
	app := &application.Application{
		ID:              kernel.ApplicationID(m.ID),
		JobPostingID:    kernel.JobPostingID(m.JobPostingID),
		JobseekerID:     kernel.JobseekerID(m.JobseekerID),
		CompanyID:       kernel.CompanyID(m.CompanyID.String),
		Status:          application.ApplicationStatus(m.Status),
		CoverLetter:     stringPtr(m.CoverLetter),
		Feedback:        stringPtr(m.Feedback),
		RejectionReason: stringPtr(m.RejectionReason),
		AppliedAt:       m.AppliedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.InterviewDate.Valid {
		d := m.InterviewDate.Time
		app.InterviewDate = &d
	}
	if m.ReviewedBy.Valid {
		reviewer := kernel.UserID(m.ReviewedBy.String)
		app.ReviewedBy = &reviewer
	}
	return app
}

func (m *detailsModel) toDetails() *application.ApplicationDetails {
	return &application.ApplicationDetails{
		Application:     *m.applicationModel.toEntity(),
		JobTitle:        kernel.JobTitle(m.JobTitle.String),
		JobLocation:     m.JobLocation.String,
		SalaryMin:       intPtr(m.SalaryMin),
		SalaryMax:       intPtr(m.SalaryMax),
		CompanyName:     kernel.CompanyName(m.CompanyName.String),
		FirstName:       kernel.FirstName(m.FirstName.String),
		LastName:        kernel.LastName(m.LastName.String),
		Nationality:     m.Nationality.String,
		ExperienceYears: intPtr(m.ExperienceYears),
		KoreanLevel:     kernel.LanguageLevel(m.KoreanLevel.String),
		VisaStatus:      m.VisaStatus.String,
		Bio:             m.Bio.String,
		Email:           kernel.Email(m.Email.String),
		Phone:           kernel.Phone(m.Phone.String),
	}
}

func fromEntity(app *application.Application) *applicationModel {
	m := &applicationModel{
		ID:              app.ID.String(),
		JobPostingID:    app.JobPostingID.String(),
		JobseekerID:     app.JobseekerID.String(),
		CompanyID:       sql.NullString{String: app.CompanyID.String(), Valid: !app.CompanyID.IsEmpty()},
		Status:          string(app.Status),
		CoverLetter:     nullString(app.CoverLetter),
		Feedback:        nullString(app.Feedback),
		RejectionReason: nullString(app.RejectionReason),
		AppliedAt:       app.AppliedAt,
		UpdatedAt:       app.UpdatedAt,
	}
	if app.InterviewDate != nil {
		m.InterviewDate = sql.NullTime{Time: *app.InterviewDate, Valid: true}
	}
	if app.ReviewedBy != nil {
		m.ReviewedBy = sql.NullString{String: app.ReviewedBy.String(), Valid: true}
	}
	return m
}

// ============================================================================
// Queries
// ============================================================================

const applicationColumns = `
	a.id, a.job_posting_id, a.jobseeker_id, jp.company_id, a.status,
	a.cover_letter, a.interview_date, a.feedback, a.rejection_reason,
	a.applied_at, a.updated_at, a.reviewed_by`

const detailsSelect = `
	SELECT` + applicationColumns + `,
		jp.title AS job_title,
		jp.location AS job_location,
		jp.salary_min,
		jp.salary_max,
		c.company_name,
		js.first_name,
		js.last_name,
		js.nationality,
		js.experience_years,
		js.korean_level,
		js.visa_status,
		js.bio,
		u.email,
		u.phone
	FROM applications a
	LEFT JOIN job_postings jp ON a.job_posting_id = jp.id
	LEFT JOIN companies c ON jp.company_id = c.id
	LEFT JOIN jobseekers js ON a.jobseeker_id = js.id
	LEFT JOIN users u ON js.user_id = u.id`

// Create creates a new application
func (r *PostgresApplicationRepository) Create(ctx context.Context, app *application.Application) error {
	query := `
		INSERT INTO applications (
			id, job_posting_id, jobseeker_id, status, cover_letter,
			interview_date, feedback, rejection_reason,
			applied_at, updated_at, reviewed_by
		) VALUES (
			:id, :job_posting_id, :jobseeker_id, :status, :cover_letter,
			:interview_date, :feedback, :rejection_reason,
			:applied_at, :updated_at, :reviewed_by
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, fromEntity(app))
	if err != nil {
		if database.IsUniqueViolation(err, uniquePostingJobseeker) {
			return application.ErrAlreadyApplied().
				WithDetail("job_posting_id", app.JobPostingID.String())
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" { // foreign_key_violation
			return application.ErrPostingNotFound().
				WithDetail("job_posting_id", app.JobPostingID.String())
		}
		return errx.Wrap(err, "failed to create application", errx.TypeInternal)
	}

	return nil
}

// ExistsByPostingAndJobseeker checks if the job seeker already applied to the posting
func (r *PostgresApplicationRepository) ExistsByPostingAndJobseeker(ctx context.Context, postingID kernel.JobPostingID, jobseekerID kernel.JobseekerID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_posting_id = $1 AND jobseeker_id = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, postingID, jobseekerID); err != nil {
		return false, errx.Wrap(err, "failed to check existing application", errx.TypeInternal)
	}
	return exists, nil
}

// GetWithDetails retrieves an application with posting, company and applicant details
func (r *PostgresApplicationRepository) GetWithDetails(ctx context.Context, id kernel.ApplicationID) (*application.ApplicationDetails, error) {
	query := detailsSelect + `
	WHERE a.id = $1`

	var model detailsModel
	if err := r.db.GetContext(ctx, &model, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
		}
		return nil, errx.Wrap(err, "failed to get application with details", errx.TypeInternal)
	}

	return model.toDetails(), nil
}

func (r *PostgresApplicationRepository) ListByJobseeker(ctx context.Context, jobseekerID kernel.JobseekerID) ([]*application.ApplicationDetails, error) {
	query := detailsSelect + `
	WHERE a.jobseeker_id = $1
	ORDER BY a.applied_at DESC`

	return r.selectDetails(ctx, query, jobseekerID)
}

func (r *PostgresApplicationRepository) ListByCompany(ctx context.Context, companyID kernel.CompanyID) ([]*application.ApplicationDetails, error) {
	query := detailsSelect + `
	WHERE jp.company_id = $1
	ORDER BY a.applied_at DESC`

	return r.selectDetails(ctx, query, companyID)
}

func (r *PostgresApplicationRepository) ListRecent(ctx context.Context, limit int) ([]*application.ApplicationDetails, error) {
	query := detailsSelect + `
	ORDER BY a.applied_at DESC
	LIMIT $1`

	return r.selectDetails(ctx, query, limit)
}

func (r *PostgresApplicationRepository) selectDetails(ctx context.Context, query string, args ...any) ([]*application.ApplicationDetails, error) {
	var models []detailsModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, errx.Wrap(err, "failed to list applications", errx.TypeInternal)
	}

	out := make([]*application.ApplicationDetails, 0, len(models))
	for i := range models {
		out = append(out, models[i].toDetails())
	}
	return out, nil
}

// Update reads the application under a row lock, applies fn and writes the
// mutable columns back in the same transaction.
func (r *PostgresApplicationRepository) Update(ctx context.Context, id kernel.ApplicationID, fn application.UpdateFunc) (*application.Application, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, errx.Wrap(err, "failed to begin transaction", errx.TypeInternal)
	}
	defer tx.Rollback()

	query := `
		SELECT` + applicationColumns + `
		FROM applications a
		LEFT JOIN job_postings jp ON a.job_posting_id = jp.id
		WHERE a.id = $1
		FOR UPDATE OF a
	`

	var model applicationModel
	if err := tx.GetContext(ctx, &model, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
		}
		return nil, errx.Wrap(err, "failed to lock application", errx.TypeInternal)
	}

	app := model.toEntity()
	if err := fn(app); err != nil {
		return nil, err
	}

	update := `
		UPDATE applications SET
			status = :status,
			interview_date = :interview_date,
			feedback = :feedback,
			rejection_reason = :rejection_reason,
			updated_at = :updated_at,
			reviewed_by = :reviewed_by
		WHERE id = :id
	`
	if _, err := tx.NamedExecContext(ctx, update, fromEntity(app)); err != nil {
		return nil, errx.Wrap(err, "failed to update application", errx.TypeInternal)
	}

	if err := tx.Commit(); err != nil {
		return nil, errx.Wrap(err, "failed to commit application update", errx.TypeInternal)
	}

	return app, nil
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
