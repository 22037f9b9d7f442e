package postinginfra

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Abraxas-365/campus/internal/database"
	"github.com/Abraxas-365/campus/pkg/errx"
	"github.com/Abraxas-365/campus/pkg/kernel"
	"github.com/Abraxas-365/campus/recruitment/posting"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresPostingRepository implements posting.Repository using PostgreSQL
type PostgresPostingRepository struct {
	db *sqlx.DB
}

func NewPostgresPostingRepository(db *sqlx.DB) *PostgresPostingRepository {
	return &PostgresPostingRepository{db: db}
}

type postingModel struct {
	ID                string         `db:"id"`
	CompanyID         string         `db:"company_id"`
	Title             string         `db:"title"`
	Location          sql.NullString `db:"location"`
	SalaryMin         sql.NullInt64  `db:"salary_min"`
	SalaryMax         sql.NullInt64  `db:"salary_max"`
	Status            string         `db:"status"`
	ApplicationsCount int            `db:"applications_count"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

func (m *postingModel) toEntity() *posting.Posting {
	return &posting.Posting{
		ID:                kernel.JobPostingID(m.ID),
		CompanyID:         kernel.CompanyID(m.CompanyID),
		Title:             kernel.JobTitle(m.Title),
		Location:          m.Location.String,
		SalaryMin:         intPtr(m.SalaryMin),
		SalaryMax:         intPtr(m.SalaryMax),
		Status:            posting.Status(m.Status),
		ApplicationsCount: m.ApplicationsCount,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func fromEntity(p *posting.Posting) *postingModel {
	return &postingModel{
		ID:                p.ID.String(),
		CompanyID:         p.CompanyID.String(),
		Title:             string(p.Title),
		Location:          sql.NullString{String: p.Location, Valid: p.Location != ""},
		SalaryMin:         nullInt(p.SalaryMin),
		SalaryMax:         nullInt(p.SalaryMax),
		Status:            string(p.Status),
		ApplicationsCount: p.ApplicationsCount,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (r *PostgresPostingRepository) Create(ctx context.Context, p *posting.Posting) error {
	query := `
		INSERT INTO job_postings (
			id, company_id, title, location, salary_min, salary_max,
			status, applications_count, created_at, updated_at
		) VALUES (
			:id, :company_id, :title, :location, :salary_min, :salary_max,
			:status, :applications_count, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, fromEntity(p)); err != nil {
		if database.IsUniqueViolation(err) {
			return posting.ErrPostingAlreadyExists().WithDetail("posting_id", p.ID.String())
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return posting.ErrInvalidCompany().WithDetail("company_id", p.CompanyID.String())
		}
		return errx.Wrap(err, "failed to create job posting", errx.TypeInternal)
	}
	return nil
}

func (r *PostgresPostingRepository) GetByID(ctx context.Context, id kernel.JobPostingID) (*posting.Posting, error) {
	query := `
		SELECT id, company_id, title, location, salary_min, salary_max,
		       status, applications_count, created_at, updated_at
		FROM job_postings
		WHERE id = $1
	`

	var m postingModel
	if err := r.db.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, posting.ErrPostingNotFound().WithDetail("posting_id", id.String())
		}
		return nil, errx.Wrap(err, "failed to get job posting", errx.TypeInternal)
	}
	return m.toEntity(), nil
}

func (r *PostgresPostingRepository) IncrementApplicationsCount(ctx context.Context, id kernel.JobPostingID) error {
	query := `
		UPDATE job_postings
		SET applications_count = COALESCE(applications_count, 0) + 1
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return errx.Wrap(err, "failed to increment applications count", errx.TypeInternal)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to get rows affected", errx.TypeInternal)
	}
	if rows == 0 {
		return posting.ErrPostingNotFound().WithDetail("posting_id", id.String())
	}
	return nil
}

func (r *PostgresPostingRepository) RecountApplications(ctx context.Context) (int64, error) {
	query := `
		UPDATE job_postings jp
		SET applications_count = counts.total
		FROM (
			SELECT p.id, COUNT(a.id) AS total
			FROM job_postings p
			LEFT JOIN applications a ON a.job_posting_id = p.id
			GROUP BY p.id
		) counts
		WHERE jp.id = counts.id
		  AND jp.applications_count IS DISTINCT FROM counts.total
	`

	result, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, errx.Wrap(err, "failed to recount applications", errx.TypeInternal)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, errx.Wrap(err, "failed to get rows affected", errx.TypeInternal)
	}
	return rows, nil
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
