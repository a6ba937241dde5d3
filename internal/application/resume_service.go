package application

import (
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jobtrail/jobtrail-api/internal/domain/entity"
	repo "github.com/jobtrail/jobtrail-api/internal/domain/repository"
	"github.com/jobtrail/jobtrail-api/pkg/apperr"
)

// ResumeService stores uploaded PDFs. File bytes only leave the store through
// Download; list and detail reads carry metadata alone.
type ResumeService struct {
	Repo     repo.ResumeRepository
	MaxBytes int64
	Logger   *logrus.Logger
}

func NewResumeService(r repo.ResumeRepository, maxBytes int64, logger *logrus.Logger) *ResumeService {
	return &ResumeService{Repo: r, MaxBytes: maxBytes, Logger: logger}
}

func (s *ResumeService) List(userID string) ([]*entity.Resume, error) {
	resumes, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, apperr.Server("failed to list resumes", err)
	}
	return resumes, nil
}

func (s *ResumeService) Get(userID, id string) (*entity.Resume, error) {
	r, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.NotFound("resume not found")
		}
		return nil, apperr.Server("failed to load resume", err)
	}
	if r.UserID != userID {
		return nil, apperr.NotFound("resume not found")
	}
	return r, nil
}

type CreateResumeInput struct {
	Name     string
	FileName string
	FileData string // base64
}

func (s *ResumeService) Create(userID string, in CreateResumeInput) (*entity.Resume, error) {
	if in.Name == "" || in.FileName == "" || in.FileData == "" {
		return nil, apperr.Validation("please provide name, file data, and file name")
	}
	if !strings.HasSuffix(strings.ToLower(in.FileName), ".pdf") {
		return nil, apperr.Validation("only PDF files are allowed")
	}

	data, err := base64.StdEncoding.DecodeString(in.FileData)
	if err != nil {
		return nil, apperr.Validation("file data is not valid base64")
	}
	if int64(len(data)) > s.MaxBytes {
		return nil, apperr.Validation("file size should be less than 5MB")
	}

	r := &entity.Resume{
		UserID:       userID,
		Name:         in.Name,
		OriginalName: in.FileName,
		FileData:     data,
		FileSize:     int64(len(data)),
		ContentType:  entity.PDFContentType, // forced regardless of input
		UploadDate:   time.Now().UTC(),
	}
	if err := s.Repo.Create(r); err != nil {
		return nil, apperr.Server("failed to create resume", err)
	}
	// Response metadata only; drop the bytes we just wrote.
	r.FileData = nil
	return r, nil
}

// Download returns the resume metadata together with its raw bytes.
func (s *ResumeService) Download(userID, id string) (*entity.Resume, []byte, error) {
	r, err := s.Get(userID, id)
	if err != nil {
		return nil, nil, err
	}
	data, err := s.Repo.GetFileData(id)
	if err != nil {
		return nil, nil, apperr.Server("failed to load resume file", err)
	}
	return r, data, nil
}

func (s *ResumeService) Delete(userID, id string) (string, error) {
	r, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", apperr.NotFound("resume not found")
		}
		return "", apperr.Server("failed to load resume", err)
	}
	if r.UserID != userID {
		return "", apperr.NotAuthorized("not authorized to delete this resume")
	}
	if err := s.Repo.Delete(id); err != nil {
		return "", apperr.Server("failed to delete resume", err)
	}
	return id, nil
}
