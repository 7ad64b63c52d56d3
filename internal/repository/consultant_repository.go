package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lakehire/internal/model"
)

// ConsultantRepository defines consultant registration persistence operations.
type ConsultantRepository interface {
	Create(ctx context.Context, consultant *model.Consultant) error
	Update(ctx context.Context, consultant *model.Consultant) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Consultant, error)
	FindByHandle(ctx context.Context, handle string) (*model.Consultant, error)
	FindByEmail(ctx context.Context, email string) (*model.Consultant, error)
	List(ctx context.Context, status model.ConsultantStatus) ([]model.Consultant, error)
	AddReference(ctx context.Context, ref *model.ConsultantReference) error
	CountByStatus(ctx context.Context, status model.ConsultantStatus) (int64, error)
}

type consultantRepository struct {
	db *gorm.DB
}

// NewConsultantRepository builds a GORM-backed repository.
func NewConsultantRepository(db *gorm.DB) ConsultantRepository {
	return &consultantRepository{db: db}
}

func (r *consultantRepository) Create(ctx context.Context, consultant *model.Consultant) error {
	return r.db.WithContext(ctx).Create(consultant).Error
}

func (r *consultantRepository) Update(ctx context.Context, consultant *model.Consultant) error {
	return r.db.WithContext(ctx).Save(consultant).Error
}

func (r *consultantRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Consultant, error) {
	var consultant model.Consultant
	if err := r.db.WithContext(ctx).Preload("References").
		Where("id = ?", id).First(&consultant).Error; err != nil {
		return nil, err
	}
	return &consultant, nil
}

func (r *consultantRepository) FindByHandle(ctx context.Context, handle string) (*model.Consultant, error) {
	var consultant model.Consultant
	if err := r.db.WithContext(ctx).Where("handle = ?", handle).First(&consultant).Error; err != nil {
		return nil, err
	}
	return &consultant, nil
}

func (r *consultantRepository) FindByEmail(ctx context.Context, email string) (*model.Consultant, error) {
	var consultant model.Consultant
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&consultant).Error; err != nil {
		return nil, err
	}
	return &consultant, nil
}

// List returns consultants, optionally narrowed to one status.
func (r *consultantRepository) List(ctx context.Context, status model.ConsultantStatus) ([]model.Consultant, error) {
	q := r.db.WithContext(ctx)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var consultants []model.Consultant
	if err := q.Order("created_at desc").Find(&consultants).Error; err != nil {
		return nil, err
	}
	return consultants, nil
}

func (r *consultantRepository) AddReference(ctx context.Context, ref *model.ConsultantReference) error {
	return r.db.WithContext(ctx).Create(ref).Error
}

func (r *consultantRepository) CountByStatus(ctx context.Context, status model.ConsultantStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Consultant{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
