package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lakehire/internal/model"
)

// ApplicationRepository defines application persistence operations.
type ApplicationRepository interface {
	Create(ctx context.Context, application *model.Application) error
	Update(ctx context.Context, application *model.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error)
	FindByJobAndProfile(ctx context.Context, jobID, profileID uuid.UUID) (*model.Application, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]model.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]model.Application, error)
	Count(ctx context.Context) (int64, error)
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository builds a GORM-backed repository.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *model.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *applicationRepository) Update(ctx context.Context, application *model.Application) error {
	return r.db.WithContext(ctx).Save(application).Error
}

func (r *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	var application model.Application
	if err := r.db.WithContext(ctx).Preload("Job").Preload("Job.Company").
		Where("id = ?", id).First(&application).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) FindByJobAndProfile(ctx context.Context, jobID, profileID uuid.UUID) (*model.Application, error) {
	var application model.Application
	if err := r.db.WithContext(ctx).
		Where("job_id = ? AND profile_id = ?", jobID, profileID).
		First(&application).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]model.Application, error) {
	var applications []model.Application
	if err := r.db.WithContext(ctx).Preload("Job").Preload("Job.Company").
		Where("profile_id = ?", profileID).
		Order("applied_at desc").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]model.Application, error) {
	var applications []model.Application
	if err := r.db.WithContext(ctx).Preload("Profile").
		Where("job_id = ?", jobID).
		Order("applied_at desc").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Application{}).Count(&count).Error
	return count, err
}
