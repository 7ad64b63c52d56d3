package repository

import (
	"context"

	"gorm.io/gorm"

	"lakehire/internal/model"
)

// ViewRepository records append-only view events for analytics counters.
type ViewRepository interface {
	RecordProfileView(ctx context.Context, view *model.ProfileView) error
	RecordJobView(ctx context.Context, view *model.JobView) error
}

type viewRepository struct {
	db *gorm.DB
}

// NewViewRepository builds a GORM-backed repository.
func NewViewRepository(db *gorm.DB) ViewRepository {
	return &viewRepository{db: db}
}

func (r *viewRepository) RecordProfileView(ctx context.Context, view *model.ProfileView) error {
	return r.db.WithContext(ctx).Create(view).Error
}

func (r *viewRepository) RecordJobView(ctx context.Context, view *model.JobView) error {
	return r.db.WithContext(ctx).Create(view).Error
}
