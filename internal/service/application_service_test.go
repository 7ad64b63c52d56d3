package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "lakehire/internal/errors"
	"lakehire/internal/model"
)

func visibleJob(id uuid.UUID) *model.Job {
	return &model.Job{
		ID:                 id,
		IsActive:           true,
		VerificationStatus: model.VerificationApproved,
	}
}

func TestApplicationService_Apply(t *testing.T) {
	userID := uuid.New()
	profileID := uuid.New()
	jobID := uuid.New()

	tests := []struct {
		name          string
		setupMock     func(*MockApplicationRepository, *MockProfileRepository, *MockJobRepository)
		expectedError error
	}{
		{
			name: "successful application bumps the counter",
			setupMock: func(a *MockApplicationRepository, p *MockProfileRepository, j *MockJobRepository) {
				p.On("FindByUserID", mock.Anything, userID).Return(&model.Profile{ID: profileID, UserID: userID}, nil)
				j.On("FindByID", mock.Anything, jobID).Return(visibleJob(jobID), nil)
				a.On("FindByJobAndProfile", mock.Anything, jobID, profileID).Return(nil, gorm.ErrRecordNotFound)
				a.On("Create", mock.Anything, mock.AnythingOfType("*model.Application")).Return(nil)
				j.On("IncrementApplicationCount", mock.Anything, jobID).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "second application to the same job is rejected",
			setupMock: func(a *MockApplicationRepository, p *MockProfileRepository, j *MockJobRepository) {
				p.On("FindByUserID", mock.Anything, userID).Return(&model.Profile{ID: profileID, UserID: userID}, nil)
				j.On("FindByID", mock.Anything, jobID).Return(visibleJob(jobID), nil)
				a.On("FindByJobAndProfile", mock.Anything, jobID, profileID).Return(&model.Application{JobID: jobID, ProfileID: profileID}, nil)
			},
			expectedError: apperrors.ErrAlreadyApplied,
		},
		{
			name: "unverified job is not applicable",
			setupMock: func(a *MockApplicationRepository, p *MockProfileRepository, j *MockJobRepository) {
				p.On("FindByUserID", mock.Anything, userID).Return(&model.Profile{ID: profileID, UserID: userID}, nil)
				j.On("FindByID", mock.Anything, jobID).Return(&model.Job{
					ID:                 jobID,
					IsActive:           true,
					VerificationStatus: model.VerificationPending,
				}, nil)
			},
			expectedError: apperrors.ErrJobNotFound,
		},
		{
			name: "applicant without a profile is rejected",
			setupMock: func(a *MockApplicationRepository, p *MockProfileRepository, j *MockJobRepository) {
				p.On("FindByUserID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrProfileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockApps := new(MockApplicationRepository)
			mockProfiles := new(MockProfileRepository)
			mockJobs := new(MockJobRepository)
			tt.setupMock(mockApps, mockProfiles, mockJobs)

			service := NewApplicationService(mockApps, mockProfiles, mockJobs)
			application, err := service.Apply(context.Background(), userID, jobID, "dear team")

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, application)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, application)
				assert.Equal(t, model.ApplicationPending, application.Status)
				assert.Equal(t, profileID, application.ProfileID)
			}

			mockApps.AssertExpectations(t)
			mockProfiles.AssertExpectations(t)
			mockJobs.AssertExpectations(t)
		})
	}
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	posterID := uuid.New()
	applicationID := uuid.New()

	t.Run("poster can move the application through review", func(t *testing.T) {
		mockApps := new(MockApplicationRepository)
		mockApps.On("FindByID", mock.Anything, applicationID).Return(&model.Application{
			ID:     applicationID,
			Status: model.ApplicationPending,
			Job:    model.Job{PostedByID: posterID},
		}, nil)
		mockApps.On("Update", mock.Anything, mock.AnythingOfType("*model.Application")).Return(nil)

		service := NewApplicationService(mockApps, new(MockProfileRepository), new(MockJobRepository))
		application, err := service.UpdateStatus(context.Background(), posterID, applicationID, false, model.ApplicationInterview)

		assert.NoError(t, err)
		assert.Equal(t, model.ApplicationInterview, application.Status)
	})

	t.Run("stranger cannot change the status", func(t *testing.T) {
		mockApps := new(MockApplicationRepository)
		mockApps.On("FindByID", mock.Anything, applicationID).Return(&model.Application{
			ID:  applicationID,
			Job: model.Job{PostedByID: posterID},
		}, nil)

		service := NewApplicationService(mockApps, new(MockProfileRepository), new(MockJobRepository))
		_, err := service.UpdateStatus(context.Background(), uuid.New(), applicationID, false, model.ApplicationAccepted)

		assert.Equal(t, apperrors.ErrForbidden, err)
	})

	t.Run("unknown status value is rejected", func(t *testing.T) {
		service := NewApplicationService(new(MockApplicationRepository), new(MockProfileRepository), new(MockJobRepository))
		_, err := service.UpdateStatus(context.Background(), posterID, applicationID, true, model.ApplicationStatus("ACCEPTED"))
		assert.Equal(t, apperrors.ErrForbidden, err)
	})
}
