package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "lakehire/internal/errors"
	"lakehire/internal/model"
)

func TestCompletionScore(t *testing.T) {
	tests := []struct {
		name     string
		profile  *model.Profile
		expected int
	}{
		{
			name:     "empty profile scores zero",
			profile:  &model.Profile{},
			expected: 0,
		},
		{
			name: "core fields only",
			profile: &model.Profile{
				Title:  "Data Engineer",
				Bio:    "I build pipelines.",
				Skills: model.StringList{"spark"},
			},
			expected: 50,
		},
		{
			name: "complete profile scores 100",
			profile: &model.Profile{
				Title:          "Data Engineer",
				Bio:            "I build pipelines.",
				Location:       "Berlin",
				Skills:         model.StringList{"spark", "kafka"},
				Experience:     6,
				HourlyRate:     decimal.NewFromInt(120),
				Availability:   model.AvailabilityAvailable,
				Certifications: model.StringList{"AWS SA"},
				PortfolioURL:   "https://example.com",
				LinkedinURL:    "https://linkedin.com/in/x",
			},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompletionScore(tt.profile))
		})
	}
}

func TestProfileService_CreateProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("first profile is created with derived score", func(t *testing.T) {
		mockProfiles := new(MockProfileRepository)
		mockProfiles.On("FindByUserID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)
		mockProfiles.On("Create", mock.Anything, mock.AnythingOfType("*model.Profile")).Return(nil)

		service := NewProfileService(mockProfiles, new(MockViewRepository))
		profile, err := service.CreateProfile(context.Background(), userID, &model.Profile{Title: "Data Engineer"})

		assert.NoError(t, err)
		assert.Equal(t, userID, profile.UserID)
		assert.Equal(t, 15, profile.CompletionScore)
	})

	t.Run("second profile for the same user is rejected", func(t *testing.T) {
		mockProfiles := new(MockProfileRepository)
		mockProfiles.On("FindByUserID", mock.Anything, userID).Return(&model.Profile{UserID: userID}, nil)

		service := NewProfileService(mockProfiles, new(MockViewRepository))
		_, err := service.CreateProfile(context.Background(), userID, &model.Profile{Title: "Another"})

		assert.Equal(t, apperrors.ErrProfileExists, err)
	})
}

func TestProfileService_GetProfile_Privacy(t *testing.T) {
	ownerID := uuid.New()
	profileID := uuid.New()

	private := &model.Profile{ID: profileID, UserID: ownerID, IsPublic: false}

	t.Run("private profile hidden from strangers", func(t *testing.T) {
		mockProfiles := new(MockProfileRepository)
		mockProfiles.On("FindByID", mock.Anything, profileID).Return(private, nil)

		service := NewProfileService(mockProfiles, new(MockViewRepository))
		stranger := uuid.New()
		_, err := service.GetProfile(context.Background(), profileID, &stranger)

		assert.Equal(t, apperrors.ErrProfileNotFound, err)
	})

	t.Run("private profile visible to owner and view is recorded", func(t *testing.T) {
		mockProfiles := new(MockProfileRepository)
		mockViews := new(MockViewRepository)
		mockProfiles.On("FindByID", mock.Anything, profileID).Return(private, nil)
		mockViews.On("RecordProfileView", mock.Anything, mock.AnythingOfType("*model.ProfileView")).Return(nil)

		service := NewProfileService(mockProfiles, mockViews)
		profile, err := service.GetProfile(context.Background(), profileID, &ownerID)

		assert.NoError(t, err)
		assert.Equal(t, profileID, profile.ID)
		mockViews.AssertCalled(t, "RecordProfileView", mock.Anything, mock.AnythingOfType("*model.ProfileView"))
	})
}
