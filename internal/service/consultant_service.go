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

// ConsultantService manages the specialized consultant sign-up flow.
type ConsultantService interface {
	Register(ctx context.Context, consultant *model.Consultant, references []model.ConsultantReference) (*model.Consultant, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Consultant, error)
	List(ctx context.Context, includeAll bool) ([]model.Consultant, error)
	SetStatus(ctx context.Context, id uuid.UUID, status model.ConsultantStatus) (*model.Consultant, error)
	AttachCV(ctx context.Context, id uuid.UUID, cvPath string) error
}

type consultantService struct {
	consultantRepo repository.ConsultantRepository
}

// NewConsultantService creates a new consultant service.
func NewConsultantService(consultantRepo repository.ConsultantRepository) ConsultantService {
	return &consultantService{consultantRepo: consultantRepo}
}

// Register creates a consultant registration with its project references.
// Handle and email must be unused; new registrations start pending.
func (s *consultantService) Register(ctx context.Context, consultant *model.Consultant, references []model.ConsultantReference) (*model.Consultant, error) {
	if existing, err := s.consultantRepo.FindByHandle(ctx, consultant.Handle); err == nil && existing != nil {
		return nil, apperrors.ErrHandleTaken
	} else if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check handle: %w", err)
	}
	if existing, err := s.consultantRepo.FindByEmail(ctx, consultant.Email); err == nil && existing != nil {
		return nil, ErrUserAlreadyExists
	} else if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check email: %w", err)
	}

	consultant.ID = uuid.Nil
	consultant.Status = model.ConsultantPending

	if err := s.consultantRepo.Create(ctx, consultant); err != nil {
		return nil, fmt.Errorf("create consultant: %w", err)
	}

	for i := range references {
		ref := references[i]
		ref.ID = uuid.Nil
		ref.ConsultantID = consultant.ID
		if err := s.consultantRepo.AddReference(ctx, &ref); err != nil {
			return nil, fmt.Errorf("add reference: %w", err)
		}
		consultant.References = append(consultant.References, ref)
	}

	return consultant, nil
}

func (s *consultantService) Get(ctx context.Context, id uuid.UUID) (*model.Consultant, error) {
	consultant, err := s.consultantRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrConsultantNotFound
		}
		return nil, err
	}
	return consultant, nil
}

// List returns approved consultants; includeAll exposes every status to
// admin and staff callers.
func (s *consultantService) List(ctx context.Context, includeAll bool) ([]model.Consultant, error) {
	if includeAll {
		return s.consultantRepo.List(ctx, "")
	}
	return s.consultantRepo.List(ctx, model.ConsultantApproved)
}

func (s *consultantService) SetStatus(ctx context.Context, id uuid.UUID, status model.ConsultantStatus) (*model.Consultant, error) {
	consultant, err := s.consultantRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrConsultantNotFound
		}
		return nil, err
	}
	consultant.Status = status
	if err := s.consultantRepo.Update(ctx, consultant); err != nil {
		return nil, fmt.Errorf("update consultant: %w", err)
	}
	return consultant, nil
}

// AttachCV records the stored path of an uploaded CV.
func (s *consultantService) AttachCV(ctx context.Context, id uuid.UUID, cvPath string) error {
	consultant, err := s.consultantRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrConsultantNotFound
		}
		return err
	}
	consultant.CVPath = cvPath
	return s.consultantRepo.Update(ctx, consultant)
}
