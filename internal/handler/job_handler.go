package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"lakehire/internal/errors"
	"lakehire/internal/model"
	"lakehire/internal/repository"
	"lakehire/internal/service"
)

// JobHandler handles job posting endpoints.
type JobHandler struct {
	jobService service.JobService
}

// NewJobHandler creates a new job handler.
func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// JobRequest is the create/update payload for a job posting.
type JobRequest struct {
	CompanyID    string   `json:"company_id" validate:"required,uuid"`
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Requirements []string `json:"requirements"`
	Skills       []string `json:"skills"`
	Location     string   `json:"location"`
	Type         string   `json:"type" validate:"required,oneof=full-time part-time contract remote"`
	Experience   string   `json:"experience_level" validate:"omitempty,oneof=entry mid senior expert"`
	SalaryMin    int      `json:"salary_min" validate:"gte=0"`
	SalaryMax    int      `json:"salary_max" validate:"gte=0"`
	SalaryType   string   `json:"salary_type" validate:"omitempty,oneof=yearly hourly daily project"`

	PlatformUsage      string   `json:"platform_usage"`
	ProjectVision      string   `json:"project_vision"`
	ProjectScope       string   `json:"project_scope"`
	ProjectDuration    string   `json:"project_duration"`
	PlatformComponents []string `json:"platform_components"`
	DataVolume         string   `json:"data_volume"`

	KeyTeamMembers   []string `json:"key_team_members"`
	DecisionMakers   []string `json:"decision_makers"`
	TechnicalContact string   `json:"technical_contact"`
	HiringManager    string   `json:"hiring_manager"`

	IsActive *bool `json:"is_active"`
}

func (r *JobRequest) toModel() *model.Job {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	companyID, _ := uuid.Parse(r.CompanyID)
	return &model.Job{
		CompanyID:          companyID,
		Title:              r.Title,
		Description:        r.Description,
		Requirements:       model.StringList(r.Requirements),
		Skills:             model.StringList(r.Skills),
		Location:           r.Location,
		Type:               model.EmploymentType(r.Type),
		Experience:         model.ExperienceLevel(r.Experience),
		SalaryMin:          r.SalaryMin,
		SalaryMax:          r.SalaryMax,
		SalaryType:         model.SalaryType(r.SalaryType),
		PlatformUsage:      r.PlatformUsage,
		ProjectVision:      r.ProjectVision,
		ProjectScope:       r.ProjectScope,
		ProjectDuration:    r.ProjectDuration,
		PlatformComponents: model.StringList(r.PlatformComponents),
		DataVolume:         r.DataVolume,
		KeyTeamMembers:     model.StringList(r.KeyTeamMembers),
		DecisionMakers:     model.StringList(r.DecisionMakers),
		TechnicalContact:   r.TechnicalContact,
		HiringManager:      r.HiringManager,
		IsActive:           isActive,
	}
}

// Create godoc
// @Summary Create a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body JobRequest true "Job data"
// @Success 201 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	userID, err := CurrentUserID(c)
	if err != nil {
		return err
	}

	var req JobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.jobService.CreateJob(c.Request().Context(), userID, req.toModel())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, job)
}

// Update godoc
// @Summary Update a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body JobRequest true "Job data"
// @Success 200 {object} model.Job
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	userID, err := CurrentUserID(c)
	if err != nil {
		return err
	}
	jobID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req JobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.jobService.UpdateJob(c.Request().Context(), userID, jobID, IsAdmin(c), req.toModel())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, job)
}

// Delete godoc
// @Summary Delete a job posting
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	userID, err := CurrentUserID(c)
	if err != nil {
		return err
	}
	jobID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.jobService.DeleteJob(c.Request().Context(), userID, jobID, IsAdmin(c)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "job deleted"})
}

// Get godoc
// @Summary Get a job posting
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} model.Job
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	jobID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	job, err := h.jobService.GetJob(c.Request().Context(), jobID, OptionalViewerID(c), IsAdmin(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, job)
}

// List godoc
// @Summary List publicly visible jobs
// @Tags jobs
// @Produce json
// @Param location query string false "Location filter"
// @Param type query string false "Employment type filter"
// @Param experience query string false "Experience level filter"
// @Param skill query string false "Skill filter"
// @Param q query string false "Free-text search over title and description"
// @Param company_id query string false "Narrow to one company"
// @Param mine query boolean false "List the caller's own postings in every review state"
// @Success 200 {array} model.Job
// @Router /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	filter := repository.JobFilter{
		Location:   c.QueryParam("location"),
		Type:       model.EmploymentType(c.QueryParam("type")),
		Experience: model.ExperienceLevel(c.QueryParam("experience")),
		Skill:      c.QueryParam("skill"),
		Query:      c.QueryParam("q"),
		PublicOnly: true,
	}

	if raw := c.QueryParam("company_id"); raw != "" {
		companyID, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid company_id")
		}
		filter.CompanyID = companyID
	}

	// mine=true lets a poster see their own pending and rejected jobs
	if c.QueryParam("mine") == "true" {
		userID, err := CurrentUserID(c)
		if err != nil {
			return err
		}
		filter.PostedByID = userID
		filter.PublicOnly = false
	}

	jobs, err := h.jobService.ListJobs(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to list jobs",
			Code:  "INTERNAL_ERROR",
		})
	}
	return c.JSON(http.StatusOK, jobs)
}
