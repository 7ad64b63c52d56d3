package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "lakehire/internal/errors"
	"lakehire/internal/model"
	"lakehire/internal/repository"
)

// JobService manages job postings and their verification lifecycle.
type JobService interface {
	CreateJob(ctx context.Context, posterID uuid.UUID, job *model.Job) (*model.Job, error)
	UpdateJob(ctx context.Context, userID, jobID uuid.UUID, isAdmin bool, updated *model.Job) (*model.Job, error)
	DeleteJob(ctx context.Context, userID, jobID uuid.UUID, isAdmin bool) error
	GetJob(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID, isAdmin bool) (*model.Job, error)
	ListJobs(ctx context.Context, filter repository.JobFilter) ([]model.Job, error)
	VerifyJob(ctx context.Context, adminID, jobID uuid.UUID, status model.VerificationStatus, notes string) (*model.Job, error)
}

type jobService struct {
	jobRepo     repository.JobRepository
	companyRepo repository.CompanyRepository
	viewRepo    repository.ViewRepository
}

// NewJobService creates a new job service.
func NewJobService(jobRepo repository.JobRepository, companyRepo repository.CompanyRepository, viewRepo repository.ViewRepository) JobService {
	return &jobService{jobRepo: jobRepo, companyRepo: companyRepo, viewRepo: viewRepo}
}

// CreateJob creates a posting for a company the poster owns. New jobs start
// with a pending verification status regardless of input.
func (s *jobService) CreateJob(ctx context.Context, posterID uuid.UUID, job *model.Job) (*model.Job, error) {
	company, err := s.companyRepo.FindByID(ctx, job.CompanyID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, err
	}
	if company.CreatedByID != posterID {
		return nil, apperrors.ErrForbidden
	}

	job.ID = uuid.Nil
	job.PostedByID = posterID
	job.VerificationStatus = model.VerificationPending
	job.VerificationNotes = ""
	job.VerifiedByID = nil
	job.VerifiedAt = nil
	job.ApplicationCount = 0
	job.ViewCount = 0

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

// UpdateJob applies a full-record update from the poster. Edits reset the
// verification to pending so admins re-review changed content.
func (s *jobService) UpdateJob(ctx context.Context, userID, jobID uuid.UUID, isAdmin bool, updated *model.Job) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}
	if job.PostedByID != userID && !isAdmin {
		return nil, apperrors.ErrForbidden
	}

	job.Title = updated.Title
	job.Description = updated.Description
	job.Requirements = updated.Requirements
	job.Skills = updated.Skills
	job.Location = updated.Location
	job.Type = updated.Type
	job.Experience = updated.Experience
	job.SalaryMin = updated.SalaryMin
	job.SalaryMax = updated.SalaryMax
	job.SalaryType = updated.SalaryType
	job.PlatformUsage = updated.PlatformUsage
	job.ProjectVision = updated.ProjectVision
	job.ProjectScope = updated.ProjectScope
	job.ProjectDuration = updated.ProjectDuration
	job.PlatformComponents = updated.PlatformComponents
	job.DataVolume = updated.DataVolume
	job.KeyTeamMembers = updated.KeyTeamMembers
	job.DecisionMakers = updated.DecisionMakers
	job.TechnicalContact = updated.TechnicalContact
	job.HiringManager = updated.HiringManager
	job.IsActive = updated.IsActive

	if !isAdmin {
		job.VerificationStatus = model.VerificationPending
		job.VerifiedByID = nil
		job.VerifiedAt = nil
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	return job, nil
}

func (s *jobService) DeleteJob(ctx context.Context, userID, jobID uuid.UUID, isAdmin bool) error {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrJobNotFound
		}
		return err
	}
	if job.PostedByID != userID && !isAdmin {
		return apperrors.ErrForbidden
	}
	return s.jobRepo.Delete(ctx, jobID)
}

// GetJob fetches a posting, records the view event and bumps the counter.
// Unverified or inactive jobs are only visible to their poster and admins.
func (s *jobService) GetJob(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID, isAdmin bool) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}

	if !job.PubliclyVisible() && !isAdmin && (viewerID == nil || *viewerID != job.PostedByID) {
		return nil, apperrors.ErrJobNotFound
	}

	// view tracking is best effort
	_ = s.viewRepo.RecordJobView(ctx, &model.JobView{
		JobID:    job.ID,
		ViewerID: viewerID,
	})
	_ = s.jobRepo.IncrementViewCount(ctx, id)

	return job, nil
}

func (s *jobService) ListJobs(ctx context.Context, filter repository.JobFilter) ([]model.Job, error) {
	return s.jobRepo.List(ctx, filter)
}

// VerifyJob records an admin decision on a posting.
func (s *jobService) VerifyJob(ctx context.Context, adminID, jobID uuid.UUID, status model.VerificationStatus, notes string) (*model.Job, error) {
	if status != model.VerificationApproved && status != model.VerificationRejected {
		return nil, apperrors.ErrForbidden
	}

	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}

	now := time.Now()
	job.VerificationStatus = status
	job.VerificationNotes = notes
	job.VerifiedByID = &adminID
	job.VerifiedAt = &now

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("verify job: %w", err)
	}
	return job, nil
}
