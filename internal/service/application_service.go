package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "lakehire/internal/errors"
	"lakehire/internal/model"
	"lakehire/internal/repository"
)

// ApplicationService manages job applications.
type ApplicationService interface {
	Apply(ctx context.Context, userID, jobID uuid.UUID, coverLetter string) (*model.Application, error)
	MyApplications(ctx context.Context, userID uuid.UUID) ([]model.Application, error)
	GetApplication(ctx context.Context, userID, applicationID uuid.UUID, isAdmin bool) (*model.Application, error)
	UpdateStatus(ctx context.Context, userID, applicationID uuid.UUID, isAdmin bool, status model.ApplicationStatus) (*model.Application, error)
}

type applicationService struct {
	applicationRepo repository.ApplicationRepository
	profileRepo     repository.ProfileRepository
	jobRepo         repository.JobRepository
}

// NewApplicationService creates a new application service.
func NewApplicationService(applicationRepo repository.ApplicationRepository, profileRepo repository.ProfileRepository, jobRepo repository.JobRepository) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		profileRepo:     profileRepo,
		jobRepo:         jobRepo,
	}
}

// Apply creates an application from the caller's profile to a publicly
// visible job. A profile can apply to a job at most once.
func (s *applicationService) Apply(ctx context.Context, userID, jobID uuid.UUID, coverLetter string) (*model.Application, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}

	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}
	if !job.PubliclyVisible() {
		return nil, apperrors.ErrJobNotFound
	}

	existing, err := s.applicationRepo.FindByJobAndProfile(ctx, jobID, profile.ID)
	if err == nil && existing != nil {
		return nil, apperrors.ErrAlreadyApplied
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check existing application: %w", err)
	}

	application := &model.Application{
		JobID:       jobID,
		ProfileID:   profile.ID,
		CoverLetter: coverLetter,
		Status:      model.ApplicationPending,
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	// denormalized counter; creation stands even if the bump fails
	_ = s.jobRepo.IncrementApplicationCount(ctx, jobID)

	return application, nil
}

func (s *applicationService) MyApplications(ctx context.Context, userID uuid.UUID) ([]model.Application, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}
	return s.applicationRepo.ListByProfile(ctx, profile.ID)
}

// GetApplication returns an application visible to the applicant, the job
// poster or an admin.
func (s *applicationService) GetApplication(ctx context.Context, userID, applicationID uuid.UUID, isAdmin bool) (*model.Application, error) {
	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, err
	}

	if isAdmin || application.Job.PostedByID == userID {
		return application, nil
	}
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err == nil && profile.ID == application.ProfileID {
		return application, nil
	}
	return nil, apperrors.ErrForbidden
}

// UpdateStatus moves an application through its review lifecycle. Only the
// job poster or an admin may change it.
func (s *applicationService) UpdateStatus(ctx context.Context, userID, applicationID uuid.UUID, isAdmin bool, status model.ApplicationStatus) (*model.Application, error) {
	switch status {
	case model.ApplicationPending, model.ApplicationReviewing, model.ApplicationInterview,
		model.ApplicationRejected, model.ApplicationAccepted:
	default:
		return nil, apperrors.ErrForbidden
	}

	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, err
	}
	if application.Job.PostedByID != userID && !isAdmin {
		return nil, apperrors.ErrForbidden
	}

	application.Status = status
	if err := s.applicationRepo.Update(ctx, application); err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}
	return application, nil
}
