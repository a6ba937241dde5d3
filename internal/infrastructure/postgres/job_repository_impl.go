package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobtrail/jobtrail-api/internal/domain/entity"
	"github.com/jobtrail/jobtrail-api/internal/domain/repository"
)

type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

const jobColumns = `
	j.id, j.user_id, j.company, j.role, j.status, j.date_applied,
	j.location, j.salary, j.link, j.description, j.notes,
	j.contact_person, j.contact_email, j.resume_id,
	r.name, r.original_name,
	j.created_at, j.updated_at`

func scanJob(row interface{ Scan(dest ...any) error }) (*entity.Job, error) {
	j := &entity.Job{}
	var resumeName, resumeOriginal *string
	if err := row.Scan(&j.ID, &j.UserID, &j.Company, &j.Role, &j.Status, &j.DateApplied,
		&j.Location, &j.Salary, &j.Link, &j.Description, &j.Notes,
		&j.ContactPerson, &j.ContactEmail, &j.ResumeID,
		&resumeName, &resumeOriginal,
		&j.CreatedAt, &j.UpdatedAt); err != nil {
		return nil, mapErr(err)
	}
	if j.ResumeID != nil && resumeName != nil {
		j.Resume = &entity.ResumeRef{ID: *j.ResumeID, Name: *resumeName}
		if resumeOriginal != nil {
			j.Resume.OriginalName = *resumeOriginal
		}
	}
	return j, nil
}

func (r *JobRepository) ListByUser(userID string) ([]*entity.Job, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+jobColumns+`
		FROM jobs j
		LEFT JOIN resumes r ON r.id = j.resume_id
		WHERE j.user_id = $1
		ORDER BY j.created_at DESC
	`, userID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	jobs := make([]*entity.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, mapErr(rows.Err())
}

func (r *JobRepository) GetByID(id string) (*entity.Job, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		SELECT `+jobColumns+`
		FROM jobs j
		LEFT JOIN resumes r ON r.id = j.resume_id
		WHERE j.id = $1
	`, id)
	return scanJob(row)
}

func (r *JobRepository) Create(j *entity.Job) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO jobs (user_id, company, role, status, date_applied,
			location, salary, link, description, notes,
			contact_person, contact_email, resume_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`, j.UserID, j.Company, j.Role, j.Status, j.DateApplied,
		j.Location, j.Salary, j.Link, j.Description, j.Notes,
		j.ContactPerson, j.ContactEmail, j.ResumeID)

	return mapErr(row.Scan(&j.ID, &j.CreatedAt, &j.UpdatedAt))
}

func (r *JobRepository) Update(j *entity.Job) error {
	ctx := context.Background()
	j.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE jobs
		SET company = $1, role = $2, status = $3, date_applied = $4,
			location = $5, salary = $6, link = $7, description = $8, notes = $9,
			contact_person = $10, contact_email = $11, resume_id = $12, updated_at = $13
		WHERE id = $14
	`, j.Company, j.Role, j.Status, j.DateApplied,
		j.Location, j.Salary, j.Link, j.Description, j.Notes,
		j.ContactPerson, j.ContactEmail, j.ResumeID, j.UpdatedAt, j.ID)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *JobRepository) Delete(id string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.JobRepository = (*JobRepository)(nil)
