package application

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jobtrail/jobtrail-api/internal/domain/entity"
	repo "github.com/jobtrail/jobtrail-api/internal/domain/repository"
	"github.com/jobtrail/jobtrail-api/pkg/apperr"
)

// JobService implements owner-scoped job CRUD. Every read treats a record
// owned by someone else exactly like a missing one; mutations report the
// two cases separately.
type JobService struct {
	Repo    repo.JobRepository
	Resumes repo.ResumeRepository
	Logger  *logrus.Logger
}

func NewJobService(r repo.JobRepository, resumes repo.ResumeRepository, logger *logrus.Logger) *JobService {
	return &JobService{Repo: r, Resumes: resumes, Logger: logger}
}

func (s *JobService) List(userID string) ([]*entity.Job, error) {
	jobs, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, apperr.Server("failed to list jobs", err)
	}
	return jobs, nil
}

func (s *JobService) Get(userID, id string) (*entity.Job, error) {
	j, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.NotFound("job not found")
		}
		return nil, apperr.Server("failed to load job", err)
	}
	if j.UserID != userID {
		// Reads never reveal that a foreign record exists.
		return nil, apperr.NotFound("job not found")
	}
	return j, nil
}

type CreateJobInput struct {
	Company       string
	Role          string
	Status        string
	DateApplied   time.Time
	Location      string
	Salary        string
	Link          string
	Description   string
	Notes         string
	ContactPerson string
	ContactEmail  string
	ResumeID      *string
}

// checkResumeRef verifies a referenced resume exists and belongs to userID.
func (s *JobService) checkResumeRef(userID, resumeID string) error {
	r, err := s.Resumes.GetByID(resumeID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apperr.Validation("selected resume not found")
		}
		return apperr.Server("failed to load resume", err)
	}
	if r.UserID != userID {
		return apperr.NotAuthorized("not authorized to use this resume")
	}
	return nil
}

func (s *JobService) Create(userID string, in CreateJobInput) (*entity.Job, error) {
	if !entity.ValidJobStatus(in.Status) {
		return nil, apperr.Validation("invalid job status")
	}
	if in.ResumeID != nil && *in.ResumeID != "" {
		if err := s.checkResumeRef(userID, *in.ResumeID); err != nil {
			return nil, err
		}
	}

	j := &entity.Job{
		UserID:        userID,
		Company:       in.Company,
		Role:          in.Role,
		Status:        in.Status,
		DateApplied:   in.DateApplied,
		Location:      in.Location,
		Salary:        in.Salary,
		Link:          in.Link,
		Description:   in.Description,
		Notes:         in.Notes,
		ContactPerson: in.ContactPerson,
		ContactEmail:  in.ContactEmail,
	}
	if in.ResumeID != nil && *in.ResumeID != "" {
		j.ResumeID = in.ResumeID
	}
	if err := s.Repo.Create(j); err != nil {
		return nil, apperr.Server("failed to create job", err)
	}
	// Re-read so the response carries the joined resume reference.
	created, err := s.Repo.GetByID(j.ID)
	if err != nil {
		return j, nil
	}
	return created, nil
}

type UpdateJobInput struct {
	Company       *string
	Role          *string
	Status        *string
	DateApplied   *time.Time
	Location      *string
	Salary        *string
	Link          *string
	Description   *string
	Notes         *string
	ContactPerson *string
	ContactEmail  *string
	ResumeID      *string // empty string clears the reference
}

func (s *JobService) Update(userID, id string, in UpdateJobInput) (*entity.Job, error) {
	j, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.NotFound("job not found")
		}
		return nil, apperr.Server("failed to load job", err)
	}
	if j.UserID != userID {
		return nil, apperr.NotAuthorized("not authorized to update this job")
	}

	if in.Company != nil {
		j.Company = *in.Company
	}
	if in.Role != nil {
		j.Role = *in.Role
	}
	if in.Status != nil {
		if !entity.ValidJobStatus(*in.Status) {
			return nil, apperr.Validation("invalid job status")
		}
		j.Status = *in.Status
	}
	if in.DateApplied != nil {
		j.DateApplied = *in.DateApplied
	}
	if in.Location != nil {
		j.Location = *in.Location
	}
	if in.Salary != nil {
		j.Salary = *in.Salary
	}
	if in.Link != nil {
		j.Link = *in.Link
	}
	if in.Description != nil {
		j.Description = *in.Description
	}
	if in.Notes != nil {
		j.Notes = *in.Notes
	}
	if in.ContactPerson != nil {
		j.ContactPerson = *in.ContactPerson
	}
	if in.ContactEmail != nil {
		j.ContactEmail = *in.ContactEmail
	}
	if in.ResumeID != nil {
		if *in.ResumeID == "" {
			j.ResumeID = nil
		} else {
			if err := s.checkResumeRef(userID, *in.ResumeID); err != nil {
				return nil, err
			}
			j.ResumeID = in.ResumeID
		}
	}

	if err := s.Repo.Update(j); err != nil {
		return nil, apperr.Server("failed to update job", err)
	}
	updated, err := s.Repo.GetByID(j.ID)
	if err != nil {
		return j, nil
	}
	return updated, nil
}

// Delete removes a job and returns its id.
func (s *JobService) Delete(userID, id string) (string, error) {
	j, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", apperr.NotFound("job not found")
		}
		return "", apperr.Server("failed to load job", err)
	}
	if j.UserID != userID {
		return "", apperr.NotAuthorized("not authorized to delete this job")
	}
	if err := s.Repo.Delete(id); err != nil {
		return "", apperr.Server("failed to delete job", err)
	}
	return id, nil
}
