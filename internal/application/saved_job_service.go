package application

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/jobtrail/jobtrail-api/internal/domain/entity"
	repo "github.com/jobtrail/jobtrail-api/internal/domain/repository"
	"github.com/jobtrail/jobtrail-api/pkg/apperr"
)

// SavedJobService manages bookmarked postings. Saving the same URL twice for
// one user is a conflict, never an overwrite.
type SavedJobService struct {
	Repo   repo.SavedJobRepository
	Logger *logrus.Logger
}

func NewSavedJobService(r repo.SavedJobRepository, logger *logrus.Logger) *SavedJobService {
	return &SavedJobService{Repo: r, Logger: logger}
}

func (s *SavedJobService) List(userID string) ([]*entity.SavedJob, error) {
	saved, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, apperr.Server("failed to list saved jobs", err)
	}
	return saved, nil
}

type SaveJobInput struct {
	Title       string
	Company     string
	Location    string
	Description string
	Salary      string
	JobType     string
	URL         string
	Source      string
}

func (s *SavedJobService) Save(userID string, in SaveJobInput) (*entity.SavedJob, error) {
	sj := &entity.SavedJob{
		UserID:      userID,
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		Description: in.Description,
		Salary:      in.Salary,
		JobType:     in.JobType,
		URL:         in.URL,
		Source:      in.Source,
	}
	if err := s.Repo.Create(sj); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, apperr.Duplicate("job already saved")
		}
		return nil, apperr.Server("failed to save job", err)
	}
	return sj, nil
}

// Delete removes a saved job. The query itself is owner-filtered, so a record
// saved by another user reads as missing.
func (s *SavedJobService) Delete(userID, id string) error {
	if err := s.Repo.DeleteOwned(id, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apperr.NotFound("saved job not found")
		}
		return apperr.Server("failed to delete saved job", err)
	}
	return nil
}
