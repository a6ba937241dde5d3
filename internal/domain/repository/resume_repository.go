package repository

import "github.com/jobtrail/jobtrail-api/internal/domain/entity"

// ResumeRepository defines resume persistence. GetByID and ListByUser return
// metadata only; GetFileData is the single path that loads raw bytes.
type ResumeRepository interface {
	ListByUser(userID string) ([]*entity.Resume, error)
	GetByID(id string) (*entity.Resume, error)
	GetFileData(id string) ([]byte, error)
	Create(r *entity.Resume) error
	Delete(id string) error
}
