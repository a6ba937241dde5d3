package repository

import (
	"time"

	"github.com/jobtrail/jobtrail-api/internal/domain/entity"
)

// JobRepository defines job persistence. GetByID is deliberately unscoped:
// the service layer compares owners so it can tell "missing" apart from
// "owned by someone else".
type JobRepository interface {
	ListByUser(userID string) ([]*entity.Job, error) // newest first
	GetByID(id string) (*entity.Job, error)
	Create(j *entity.Job) error
	Update(j *entity.Job) error
	Delete(id string) error
}

// MonthCount is one month bucket of the application trend.
type MonthCount struct {
	Year  int
	Month time.Month
	Count int
}

// StatisticsReader exposes the aggregate queries over a single user's jobs.
type StatisticsReader interface {
	CountByUser(userID string) (int, error)
	CountByUserSince(userID string, since time.Time) (int, error)
	StatusCounts(userID string) (map[string]int, error)
	MonthlyCounts(userID string, since time.Time) ([]MonthCount, error)
}
