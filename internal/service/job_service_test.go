package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "lakehire/internal/errors"
	"lakehire/internal/model"
)

func TestJobService_CreateJob(t *testing.T) {
	posterID := uuid.New()
	companyID := uuid.New()

	t.Run("new job always starts pending", func(t *testing.T) {
		mockJobs := new(MockJobRepository)
		mockCompanies := new(MockCompanyRepository)
		mockCompanies.On("FindByID", mock.Anything, companyID).Return(&model.Company{ID: companyID, CreatedByID: posterID}, nil)
		mockJobs.On("Create", mock.Anything, mock.AnythingOfType("*model.Job")).Return(nil)

		service := NewJobService(mockJobs, mockCompanies, new(MockViewRepository))
		job, err := service.CreateJob(context.Background(), posterID, &model.Job{
			CompanyID:          companyID,
			Title:              "Data Engineer",
			VerificationStatus: model.VerificationApproved, // client input is ignored
			ApplicationCount:   42,
		})

		assert.NoError(t, err)
		assert.Equal(t, model.VerificationPending, job.VerificationStatus)
		assert.Nil(t, job.VerifiedByID)
		assert.Zero(t, job.ApplicationCount)
		assert.Equal(t, posterID, job.PostedByID)
	})

	t.Run("posting for someone else's company is forbidden", func(t *testing.T) {
		mockCompanies := new(MockCompanyRepository)
		mockCompanies.On("FindByID", mock.Anything, companyID).Return(&model.Company{ID: companyID, CreatedByID: uuid.New()}, nil)

		service := NewJobService(new(MockJobRepository), mockCompanies, new(MockViewRepository))
		_, err := service.CreateJob(context.Background(), posterID, &model.Job{CompanyID: companyID})

		assert.Equal(t, apperrors.ErrForbidden, err)
	})
}

func TestJobService_GetJob_Visibility(t *testing.T) {
	posterID := uuid.New()
	jobID := uuid.New()

	hidden := &model.Job{
		ID:                 jobID,
		PostedByID:         posterID,
		IsActive:           true,
		VerificationStatus: model.VerificationPending,
	}

	t.Run("unverified job hidden from anonymous viewers", func(t *testing.T) {
		mockJobs := new(MockJobRepository)
		mockJobs.On("FindByID", mock.Anything, jobID).Return(hidden, nil)

		service := NewJobService(mockJobs, new(MockCompanyRepository), new(MockViewRepository))
		_, err := service.GetJob(context.Background(), jobID, nil, false)

		assert.Equal(t, apperrors.ErrJobNotFound, err)
	})

	t.Run("unverified job visible to its poster", func(t *testing.T) {
		mockJobs := new(MockJobRepository)
		mockViews := new(MockViewRepository)
		mockJobs.On("FindByID", mock.Anything, jobID).Return(hidden, nil)
		mockViews.On("RecordJobView", mock.Anything, mock.AnythingOfType("*model.JobView")).Return(nil)
		mockJobs.On("IncrementViewCount", mock.Anything, jobID).Return(nil)

		service := NewJobService(mockJobs, new(MockCompanyRepository), mockViews)
		job, err := service.GetJob(context.Background(), jobID, &posterID, false)

		assert.NoError(t, err)
		assert.Equal(t, jobID, job.ID)
	})

	t.Run("unverified job visible to an admin who is not the poster", func(t *testing.T) {
		mockJobs := new(MockJobRepository)
		mockViews := new(MockViewRepository)
		mockJobs.On("FindByID", mock.Anything, jobID).Return(hidden, nil)
		mockViews.On("RecordJobView", mock.Anything, mock.AnythingOfType("*model.JobView")).Return(nil)
		mockJobs.On("IncrementViewCount", mock.Anything, jobID).Return(nil)

		service := NewJobService(mockJobs, new(MockCompanyRepository), mockViews)
		admin := uuid.New()
		job, err := service.GetJob(context.Background(), jobID, &admin, true)

		assert.NoError(t, err)
		assert.Equal(t, jobID, job.ID)
	})

	t.Run("approved active job records a view event", func(t *testing.T) {
		public := &model.Job{
			ID:                 jobID,
			PostedByID:         posterID,
			IsActive:           true,
			VerificationStatus: model.VerificationApproved,
		}
		mockJobs := new(MockJobRepository)
		mockViews := new(MockViewRepository)
		mockJobs.On("FindByID", mock.Anything, jobID).Return(public, nil)
		mockViews.On("RecordJobView", mock.Anything, mock.AnythingOfType("*model.JobView")).Return(nil)
		mockJobs.On("IncrementViewCount", mock.Anything, jobID).Return(nil)

		service := NewJobService(mockJobs, new(MockCompanyRepository), mockViews)
		_, err := service.GetJob(context.Background(), jobID, nil, false)

		assert.NoError(t, err)
		mockViews.AssertCalled(t, "RecordJobView", mock.Anything, mock.AnythingOfType("*model.JobView"))
		mockJobs.AssertCalled(t, "IncrementViewCount", mock.Anything, jobID)
	})
}

func TestJobService_UpdateJob_ResetsVerification(t *testing.T) {
	posterID := uuid.New()
	jobID := uuid.New()
	verifier := uuid.New()

	approved := &model.Job{
		ID:                 jobID,
		PostedByID:         posterID,
		VerificationStatus: model.VerificationApproved,
		VerifiedByID:       &verifier,
	}

	mockJobs := new(MockJobRepository)
	mockJobs.On("FindByID", mock.Anything, jobID).Return(approved, nil)
	mockJobs.On("Update", mock.Anything, mock.AnythingOfType("*model.Job")).Return(nil)

	service := NewJobService(mockJobs, new(MockCompanyRepository), new(MockViewRepository))
	job, err := service.UpdateJob(context.Background(), posterID, jobID, false, &model.Job{Title: "Edited"})

	assert.NoError(t, err)
	assert.Equal(t, model.VerificationPending, job.VerificationStatus)
	assert.Nil(t, job.VerifiedByID)
}

func TestJobService_VerifyJob(t *testing.T) {
	adminID := uuid.New()
	jobID := uuid.New()

	t.Run("approval stamps the verifier", func(t *testing.T) {
		mockJobs := new(MockJobRepository)
		mockJobs.On("FindByID", mock.Anything, jobID).Return(&model.Job{ID: jobID}, nil)
		mockJobs.On("Update", mock.Anything, mock.AnythingOfType("*model.Job")).Return(nil)

		service := NewJobService(mockJobs, new(MockCompanyRepository), new(MockViewRepository))
		job, err := service.VerifyJob(context.Background(), adminID, jobID, model.VerificationApproved, "looks good")

		assert.NoError(t, err)
		assert.Equal(t, model.VerificationApproved, job.VerificationStatus)
		assert.Equal(t, adminID, *job.VerifiedByID)
		assert.NotNil(t, job.VerifiedAt)
		assert.Equal(t, "looks good", job.VerificationNotes)
	})

	t.Run("pending is not a decision", func(t *testing.T) {
		service := NewJobService(new(MockJobRepository), new(MockCompanyRepository), new(MockViewRepository))
		_, err := service.VerifyJob(context.Background(), adminID, jobID, model.VerificationPending, "")
		assert.Equal(t, apperrors.ErrForbidden, err)
	})
}
