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

// ProfileService manages consultant profiles.
type ProfileService interface {
	CreateProfile(ctx context.Context, userID uuid.UUID, profile *model.Profile) (*model.Profile, error)
	UpdateProfile(ctx context.Context, userID, profileID uuid.UUID, isAdmin bool, updated *model.Profile) (*model.Profile, error)
	GetProfile(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*model.Profile, error)
	MyProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	ListPublic(ctx context.Context) ([]model.Profile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	viewRepo    repository.ViewRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(profileRepo repository.ProfileRepository, viewRepo repository.ViewRepository) ProfileService {
	return &profileService{profileRepo: profileRepo, viewRepo: viewRepo}
}

// CreateProfile creates the user's profile. A user owns at most one.
func (s *profileService) CreateProfile(ctx context.Context, userID uuid.UUID, profile *model.Profile) (*model.Profile, error) {
	existing, err := s.profileRepo.FindByUserID(ctx, userID)
	if err == nil && existing != nil {
		return nil, apperrors.ErrProfileExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check profile existence: %w", err)
	}

	profile.ID = uuid.Nil
	profile.UserID = userID
	profile.CompletionScore = CompletionScore(profile)

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile applies a full-record update. Only the owner or an admin may
// update; the completion score is rederived.
func (s *profileService) UpdateProfile(ctx context.Context, userID, profileID uuid.UUID, isAdmin bool, updated *model.Profile) (*model.Profile, error) {
	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}
	if profile.UserID != userID && !isAdmin {
		return nil, apperrors.ErrForbidden
	}

	profile.Title = updated.Title
	profile.Bio = updated.Bio
	profile.Location = updated.Location
	profile.Skills = updated.Skills
	profile.Experience = updated.Experience
	profile.HourlyRate = updated.HourlyRate
	profile.Availability = updated.Availability
	profile.Certifications = updated.Certifications
	profile.PortfolioURL = updated.PortfolioURL
	profile.LinkedinURL = updated.LinkedinURL
	profile.GithubURL = updated.GithubURL
	profile.IsPublic = updated.IsPublic
	profile.CompletionScore = CompletionScore(profile)

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return profile, nil
}

// GetProfile fetches a profile and records the view event. Private profiles
// are only visible to their owner.
func (s *profileService) GetProfile(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*model.Profile, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}

	if !profile.IsPublic && (viewerID == nil || *viewerID != profile.UserID) {
		return nil, apperrors.ErrProfileNotFound
	}

	// view tracking is best effort
	_ = s.viewRepo.RecordProfileView(ctx, &model.ProfileView{
		ProfileID: profile.ID,
		ViewerID:  viewerID,
	})

	return profile, nil
}

func (s *profileService) MyProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *profileService) ListPublic(ctx context.Context) ([]model.Profile, error) {
	return s.profileRepo.ListPublic(ctx)
}

// CompletionScore derives how complete a profile is, 0-100. Core fields carry
// more weight than links.
func CompletionScore(p *model.Profile) int {
	score := 0
	if p.Title != "" {
		score += 15
	}
	if p.Bio != "" {
		score += 15
	}
	if p.Location != "" {
		score += 10
	}
	if len(p.Skills) > 0 {
		score += 20
	}
	if p.Experience > 0 {
		score += 10
	}
	if !p.HourlyRate.IsZero() {
		score += 10
	}
	if p.Availability != "" {
		score += 5
	}
	if len(p.Certifications) > 0 {
		score += 5
	}
	if p.PortfolioURL != "" || p.GithubURL != "" {
		score += 5
	}
	if p.LinkedinURL != "" {
		score += 5
	}
	return score
}
