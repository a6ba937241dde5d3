package application

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/jobtrail/jobtrail-api/internal/catalog"
	"github.com/jobtrail/jobtrail-api/internal/domain/entity"
	repo "github.com/jobtrail/jobtrail-api/internal/domain/repository"
	"github.com/jobtrail/jobtrail-api/pkg/apperr"
)

// CompanyService implements owner-scoped company CRUD plus catalog search.
type CompanyService struct {
	Repo   repo.CompanyRepository
	Logger *logrus.Logger
}

func NewCompanyService(r repo.CompanyRepository, logger *logrus.Logger) *CompanyService {
	return &CompanyService{Repo: r, Logger: logger}
}

func (s *CompanyService) List(userID string) ([]*entity.Company, error) {
	companies, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, apperr.Server("failed to list companies", err)
	}
	return companies, nil
}

// Search filters the built-in catalog, not the caller's own records.
func (s *CompanyService) Search(query string) []catalog.Entry {
	return catalog.Search(query)
}

func (s *CompanyService) Get(userID, id string) (*entity.Company, error) {
	c, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.NotFound("company not found")
		}
		return nil, apperr.Server("failed to load company", err)
	}
	if c.UserID != userID {
		return nil, apperr.NotFound("company not found")
	}
	return c, nil
}

type CompanyInput struct {
	Name        string
	Description string
	Website     string
	Industry    string
	Logo        string
	Location    string
	Size        string
	JobCount    int
}

func (s *CompanyService) Create(userID string, in CompanyInput) (*entity.Company, error) {
	c := &entity.Company{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		Website:     in.Website,
		Industry:    in.Industry,
		Logo:        in.Logo,
		Location:    in.Location,
		Size:        in.Size,
		JobCount:    in.JobCount,
	}
	if err := s.Repo.Create(c); err != nil {
		return nil, apperr.Server("failed to create company", err)
	}
	return c, nil
}

type UpdateCompanyInput struct {
	Name        *string
	Description *string
	Website     *string
	Industry    *string
	Logo        *string
	Location    *string
	Size        *string
	JobCount    *int
}

func (s *CompanyService) Update(userID, id string, in UpdateCompanyInput) (*entity.Company, error) {
	c, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.NotFound("company not found")
		}
		return nil, apperr.Server("failed to load company", err)
	}
	if c.UserID != userID {
		return nil, apperr.NotAuthorized("not authorized to update this company")
	}

	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Website != nil {
		c.Website = *in.Website
	}
	if in.Industry != nil {
		c.Industry = *in.Industry
	}
	if in.Logo != nil {
		c.Logo = *in.Logo
	}
	if in.Location != nil {
		c.Location = *in.Location
	}
	if in.Size != nil {
		c.Size = *in.Size
	}
	if in.JobCount != nil {
		c.JobCount = *in.JobCount
	}

	if err := s.Repo.Update(c); err != nil {
		return nil, apperr.Server("failed to update company", err)
	}
	return c, nil
}

func (s *CompanyService) Delete(userID, id string) (string, error) {
	c, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", apperr.NotFound("company not found")
		}
		return "", apperr.Server("failed to load company", err)
	}
	if c.UserID != userID {
		return "", apperr.NotAuthorized("not authorized to delete this company")
	}
	if err := s.Repo.Delete(id); err != nil {
		return "", apperr.Server("failed to delete company", err)
	}
	return id, nil
}
