package repository

import "github.com/jobtrail/jobtrail-api/internal/domain/entity"

// CompanyRepository defines company persistence.
type CompanyRepository interface {
	ListByUser(userID string) ([]*entity.Company, error)
	GetByID(id string) (*entity.Company, error)
	Create(c *entity.Company) error
	Update(c *entity.Company) error
	Delete(id string) error
}
