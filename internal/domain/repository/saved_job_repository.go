package repository

import "github.com/jobtrail/jobtrail-api/internal/domain/entity"

// SavedJobRepository defines saved-posting persistence. Create returns
// ErrDuplicate when the (user, url) pair already exists.
type SavedJobRepository interface {
	ListByUser(userID string) ([]*entity.SavedJob, error)
	Create(s *entity.SavedJob) error
	DeleteOwned(id, userID string) error
}
