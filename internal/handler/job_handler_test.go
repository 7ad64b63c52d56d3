package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lakehire/internal/auth"
	"lakehire/internal/model"
	"lakehire/internal/repository"
)

type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) CreateJob(ctx context.Context, posterID uuid.UUID, job *model.Job) (*model.Job, error) {
	args := m.Called(ctx, posterID, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func (m *MockJobService) UpdateJob(ctx context.Context, userID, jobID uuid.UUID, isAdmin bool, updated *model.Job) (*model.Job, error) {
	args := m.Called(ctx, userID, jobID, isAdmin, updated)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func (m *MockJobService) DeleteJob(ctx context.Context, userID, jobID uuid.UUID, isAdmin bool) error {
	args := m.Called(ctx, userID, jobID, isAdmin)
	return args.Error(0)
}

func (m *MockJobService) GetJob(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID, isAdmin bool) (*model.Job, error) {
	args := m.Called(ctx, id, viewerID, isAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func (m *MockJobService) ListJobs(ctx context.Context, filter repository.JobFilter) ([]model.Job, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Job), args.Error(1)
}

func (m *MockJobService) VerifyJob(ctx context.Context, adminID, jobID uuid.UUID, status model.VerificationStatus, notes string) (*model.Job, error) {
	args := m.Called(ctx, adminID, jobID, status, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func listContext(target string, claims *auth.Claims) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set("user", claims)
	}
	return c
}

func TestJobList_DefaultsToPublicOnly(t *testing.T) {
	mockJobs := new(MockJobService)
	var captured repository.JobFilter
	mockJobs.On("ListJobs", mock.Anything, mock.AnythingOfType("repository.JobFilter")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(repository.JobFilter) }).
		Return([]model.Job{}, nil)

	h := NewJobHandler(mockJobs)
	err := h.List(listContext("/api/jobs", nil))

	assert.NoError(t, err)
	assert.True(t, captured.PublicOnly)
	assert.Equal(t, uuid.Nil, captured.CompanyID)
	assert.Equal(t, uuid.Nil, captured.PostedByID)
}

func TestJobList_CompanyFilter(t *testing.T) {
	companyID := uuid.New()
	mockJobs := new(MockJobService)
	var captured repository.JobFilter
	mockJobs.On("ListJobs", mock.Anything, mock.AnythingOfType("repository.JobFilter")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(repository.JobFilter) }).
		Return([]model.Job{}, nil)

	h := NewJobHandler(mockJobs)
	err := h.List(listContext("/api/jobs?company_id="+companyID.String(), nil))

	assert.NoError(t, err)
	assert.Equal(t, companyID, captured.CompanyID)
	assert.True(t, captured.PublicOnly)
}

func TestJobList_MineIncludesUnverified(t *testing.T) {
	userID := uuid.New()
	mockJobs := new(MockJobService)
	var captured repository.JobFilter
	mockJobs.On("ListJobs", mock.Anything, mock.AnythingOfType("repository.JobFilter")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(repository.JobFilter) }).
		Return([]model.Job{}, nil)

	h := NewJobHandler(mockJobs)
	claims := &auth.Claims{UserID: userID.String(), Role: model.RoleCompany}
	err := h.List(listContext("/api/jobs?mine=true", claims))

	assert.NoError(t, err)
	assert.Equal(t, userID, captured.PostedByID)
	assert.False(t, captured.PublicOnly)
}

func TestJobList_MineRequiresAuthentication(t *testing.T) {
	h := NewJobHandler(new(MockJobService))
	err := h.List(listContext("/api/jobs?mine=true", nil))

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAdminPendingJobs_FiltersOnVerificationState(t *testing.T) {
	mockJobs := new(MockJobService)
	var captured repository.JobFilter
	mockJobs.On("ListJobs", mock.Anything, mock.AnythingOfType("repository.JobFilter")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(repository.JobFilter) }).
		Return([]model.Job{}, nil)

	h := &AdminHandler{jobService: mockJobs}
	claims := &auth.Claims{UserID: uuid.NewString(), Role: model.RoleAdmin}
	err := h.PendingJobs(listContext("/api/admin/jobs/pending", claims))

	assert.NoError(t, err)
	assert.Equal(t, model.VerificationPending, captured.Verification)
	assert.False(t, captured.PublicOnly)
}
