package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobtrail/jobtrail-api/internal/domain/entity"
	"github.com/jobtrail/jobtrail-api/internal/domain/repository"
)

type CompanyRepository struct {
	pool *pgxpool.Pool
}

func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

func (r *CompanyRepository) ListByUser(userID string) ([]*entity.Company, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, description, website, industry, logo,
			location, size, job_count, created_at, updated_at
		FROM companies
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	companies := make([]*entity.Company, 0)
	for rows.Next() {
		c := &entity.Company{}
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Description, &c.Website,
			&c.Industry, &c.Logo, &c.Location, &c.Size, &c.JobCount,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, mapErr(err)
		}
		companies = append(companies, c)
	}
	return companies, mapErr(rows.Err())
}

func (r *CompanyRepository) GetByID(id string) (*entity.Company, error) {
	ctx := context.Background()
	c := &entity.Company{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, description, website, industry, logo,
			location, size, job_count, created_at, updated_at
		FROM companies
		WHERE id = $1
	`, id)
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Description, &c.Website,
		&c.Industry, &c.Logo, &c.Location, &c.Size, &c.JobCount,
		&c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, mapErr(err)
	}
	return c, nil
}

func (r *CompanyRepository) Create(c *entity.Company) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO companies (user_id, name, description, website, industry,
			logo, location, size, job_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, c.UserID, c.Name, c.Description, c.Website, c.Industry,
		c.Logo, c.Location, c.Size, c.JobCount)

	return mapErr(row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt))
}

func (r *CompanyRepository) Update(c *entity.Company) error {
	ctx := context.Background()
	c.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE companies
		SET name = $1, description = $2, website = $3, industry = $4, logo = $5,
			location = $6, size = $7, job_count = $8, updated_at = $9
		WHERE id = $10
	`, c.Name, c.Description, c.Website, c.Industry, c.Logo,
		c.Location, c.Size, c.JobCount, c.UpdatedAt, c.ID)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CompanyRepository) Delete(id string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.CompanyRepository = (*CompanyRepository)(nil)
