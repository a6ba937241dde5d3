package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobtrail/jobtrail-api/internal/domain/entity"
	"github.com/jobtrail/jobtrail-api/internal/domain/repository"
)

type SavedJobRepository struct {
	pool *pgxpool.Pool
}

func NewSavedJobRepository(pool *pgxpool.Pool) *SavedJobRepository {
	return &SavedJobRepository{pool: pool}
}

func (r *SavedJobRepository) ListByUser(userID string) ([]*entity.SavedJob, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, title, company, location, description, salary,
			job_type, url, source, created_at, updated_at
		FROM saved_jobs
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	saved := make([]*entity.SavedJob, 0)
	for rows.Next() {
		s := &entity.SavedJob{}
		if err := rows.Scan(&s.ID, &s.UserID, &s.Title, &s.Company, &s.Location,
			&s.Description, &s.Salary, &s.JobType, &s.URL, &s.Source,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, mapErr(err)
		}
		saved = append(saved, s)
	}
	return saved, mapErr(rows.Err())
}

// Create relies on the (user_id, url) unique index; a conflict surfaces as
// repository.ErrDuplicate.
func (r *SavedJobRepository) Create(s *entity.SavedJob) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO saved_jobs (user_id, title, company, location, description,
			salary, job_type, url, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, s.UserID, s.Title, s.Company, s.Location, s.Description,
		s.Salary, s.JobType, s.URL, s.Source)

	return mapErr(row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt))
}

func (r *SavedJobRepository) DeleteOwned(id, userID string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		DELETE FROM saved_jobs WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.SavedJobRepository = (*SavedJobRepository)(nil)
