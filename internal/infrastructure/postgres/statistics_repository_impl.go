package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobtrail/jobtrail-api/internal/domain/repository"
)

// StatisticsRepository runs the aggregate queries over one user's jobs.
type StatisticsRepository struct {
	pool *pgxpool.Pool
}

func NewStatisticsRepository(pool *pgxpool.Pool) *StatisticsRepository {
	return &StatisticsRepository{pool: pool}
}

func (r *StatisticsRepository) CountByUser(userID string) (int, error) {
	ctx := context.Background()
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM jobs WHERE user_id = $1
	`, userID).Scan(&n)
	return n, mapErr(err)
}

func (r *StatisticsRepository) CountByUserSince(userID string, since time.Time) (int, error) {
	ctx := context.Background()
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM jobs WHERE user_id = $1 AND created_at >= $2
	`, userID, since).Scan(&n)
	return n, mapErr(err)
}

func (r *StatisticsRepository) StatusCounts(userID string) (map[string]int, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT status, count(*)
		FROM jobs
		WHERE user_id = $1
		GROUP BY status
	`, userID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, mapErr(err)
		}
		counts[status] = n
	}
	return counts, mapErr(rows.Err())
}

func (r *StatisticsRepository) MonthlyCounts(userID string, since time.Time) ([]repository.MonthCount, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT
			extract(year FROM date_trunc('month', created_at AT TIME ZONE 'UTC'))::int,
			extract(month FROM date_trunc('month', created_at AT TIME ZONE 'UTC'))::int,
			count(*)
		FROM jobs
		WHERE user_id = $1 AND created_at >= $2
		GROUP BY 1, 2
		ORDER BY 1, 2
	`, userID, since)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := make([]repository.MonthCount, 0, 6)
	for rows.Next() {
		var year, month, n int
		if err := rows.Scan(&year, &month, &n); err != nil {
			return nil, mapErr(err)
		}
		out = append(out, repository.MonthCount{Year: year, Month: time.Month(month), Count: n})
	}
	return out, mapErr(rows.Err())
}

var _ repository.StatisticsReader = (*StatisticsRepository)(nil)
