package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobtrail/jobtrail-api/internal/domain/entity"
	"github.com/jobtrail/jobtrail-api/internal/domain/repository"
)

type ResumeRepository struct {
	pool *pgxpool.Pool
}

func NewResumeRepository(pool *pgxpool.Pool) *ResumeRepository {
	return &ResumeRepository{pool: pool}
}

// file_data is never selected on list/detail reads so bulk responses stay
// free of raw bytes.
func (r *ResumeRepository) ListByUser(userID string) ([]*entity.Resume, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, original_name, file_size, content_type,
			upload_date, created_at, updated_at
		FROM resumes
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	resumes := make([]*entity.Resume, 0)
	for rows.Next() {
		res := &entity.Resume{}
		if err := rows.Scan(&res.ID, &res.UserID, &res.Name, &res.OriginalName,
			&res.FileSize, &res.ContentType, &res.UploadDate,
			&res.CreatedAt, &res.UpdatedAt); err != nil {
			return nil, mapErr(err)
		}
		resumes = append(resumes, res)
	}
	return resumes, mapErr(rows.Err())
}

func (r *ResumeRepository) GetByID(id string) (*entity.Resume, error) {
	ctx := context.Background()
	res := &entity.Resume{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, original_name, file_size, content_type,
			upload_date, created_at, updated_at
		FROM resumes
		WHERE id = $1
	`, id)
	if err := row.Scan(&res.ID, &res.UserID, &res.Name, &res.OriginalName,
		&res.FileSize, &res.ContentType, &res.UploadDate,
		&res.CreatedAt, &res.UpdatedAt); err != nil {
		return nil, mapErr(err)
	}
	return res, nil
}

func (r *ResumeRepository) GetFileData(id string) ([]byte, error) {
	ctx := context.Background()
	var data []byte
	err := r.pool.QueryRow(ctx, `
		SELECT file_data FROM resumes WHERE id = $1
	`, id).Scan(&data)
	if err != nil {
		return nil, mapErr(err)
	}
	return data, nil
}

func (r *ResumeRepository) Create(res *entity.Resume) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO resumes (user_id, name, original_name, file_data, file_size,
			content_type, upload_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, res.UserID, res.Name, res.OriginalName, res.FileData, res.FileSize,
		res.ContentType, res.UploadDate)

	return mapErr(row.Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt))
}

func (r *ResumeRepository) Delete(id string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ResumeRepository = (*ResumeRepository)(nil)
