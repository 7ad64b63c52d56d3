package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lakehire/internal/model"
)

// JobFilter narrows job listings. Zero values mean "no constraint".
type JobFilter struct {
	Location   string
	Type       model.EmploymentType
	Experience model.ExperienceLevel
	Skill      string
	Query      string
	CompanyID  uuid.UUID
	// PostedByID restricts results to one poster's jobs, visible to them in
	// every verification state.
	PostedByID uuid.UUID
	// Verification restricts results to one review state (admin listings).
	Verification model.VerificationStatus
	// PublicOnly restricts results to active, admin-approved jobs.
	PublicOnly bool
}

// JobRepository defines job persistence operations.
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	Update(ctx context.Context, job *model.Job) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error)
	List(ctx context.Context, filter JobFilter) ([]model.Job, error)
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	IncrementApplicationCount(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountByVerification(ctx context.Context, status model.VerificationStatus) (int64, error)
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository builds a GORM-backed repository.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepository) Update(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// Delete removes the job together with its applications and view events.
func (r *jobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&model.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("job_id = ?", id).Delete(&model.JobView{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Job{}).Error
	})
}

func (r *jobRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var job model.Job
	if err := r.db.WithContext(ctx).Preload("Company").Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) List(ctx context.Context, filter JobFilter) ([]model.Job, error) {
	q := r.db.WithContext(ctx).Model(&model.Job{}).Preload("Company")
	if filter.PublicOnly {
		q = q.Where("is_active = ? AND verification_status = ?", true, model.VerificationApproved)
	}
	if filter.Location != "" {
		q = q.Where("location = ?", filter.Location)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Experience != "" {
		q = q.Where("experience_level = ?", filter.Experience)
	}
	if filter.Skill != "" {
		// skills is a JSON text column; match the quoted element
		q = q.Where("skills LIKE ?", "%\""+filter.Skill+"\"%")
	}
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if filter.CompanyID != uuid.Nil {
		q = q.Where("company_id = ?", filter.CompanyID)
	}
	if filter.PostedByID != uuid.Nil {
		q = q.Where("posted_by_id = ?", filter.PostedByID)
	}
	if filter.Verification != "" {
		q = q.Where("verification_status = ?", filter.Verification)
	}

	var jobs []model.Job
	if err := q.Order("created_at desc").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Job{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *jobRepository) IncrementApplicationCount(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Job{}).
		Where("id = ?", id).
		UpdateColumn("application_count", gorm.Expr("application_count + 1")).Error
}

func (r *jobRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Job{}).Count(&count).Error
	return count, err
}

func (r *jobRepository) CountByVerification(ctx context.Context, status model.VerificationStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Job{}).Where("verification_status = ?", status).Count(&count).Error
	return count, err
}
