package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lakehire/internal/model"
)

// CompanyRepository defines company persistence operations.
type CompanyRepository interface {
	Create(ctx context.Context, company *model.Company) error
	Update(ctx context.Context, company *model.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Company, error)
	List(ctx context.Context) ([]model.Company, error)
	Count(ctx context.Context) (int64, error)
}

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository builds a GORM-backed repository.
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *model.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *companyRepository) Update(ctx context.Context, company *model.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

// Delete removes the company. Jobs are deleted by the FK cascade; the job
// select-then-delete here also covers soft-delete rows the cascade misses.
func (r *companyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", id).Delete(&model.Job{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Company{}).Error
	})
}

func (r *companyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var company model.Company
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Company, error) {
	var companies []model.Company
	if err := r.db.WithContext(ctx).Where("created_by_id = ?", ownerID).Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *companyRepository) List(ctx context.Context) ([]model.Company, error) {
	var companies []model.Company
	if err := r.db.WithContext(ctx).Order("name asc").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *companyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Company{}).Count(&count).Error
	return count, err
}
