package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"lakehire/internal/errors"
	"lakehire/internal/model"
	"lakehire/internal/service"
)

// ApplicationHandler handles job application endpoints.
type ApplicationHandler struct {
	applicationService service.ApplicationService
}

// NewApplicationHandler creates a new application handler.
func NewApplicationHandler(applicationService service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// ApplyRequest is the payload for applying to a job.
type ApplyRequest struct {
	JobID       string `json:"job_id" validate:"required,uuid"`
	CoverLetter string `json:"cover_letter"`
}

// UpdateApplicationStatusRequest moves an application through review.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewing interview rejected accepted"`
}

// Apply godoc
// @Summary Apply to a job
// @Tags applications
// @Accept json
// @Produce json
// @Param request body ApplyRequest true "Application data"
// @Success 201 {object} model.Application
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /applications [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	userID, err := CurrentUserID(c)
	if err != nil {
		return err
	}

	var req ApplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid job_id")
	}

	application, err := h.applicationService.Apply(c.Request().Context(), userID, jobID, req.CoverLetter)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, application)
}

// Mine godoc
// @Summary List the caller's applications
// @Tags applications
// @Produce json
// @Success 200 {array} model.Application
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /applications/me [get]
func (h *ApplicationHandler) Mine(c echo.Context) error {
	userID, err := CurrentUserID(c)
	if err != nil {
		return err
	}

	applications, err := h.applicationService.MyApplications(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, applications)
}

// Get godoc
// @Summary Get an application
// @Tags applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} model.Application
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /applications/{id} [get]
func (h *ApplicationHandler) Get(c echo.Context) error {
	userID, err := CurrentUserID(c)
	if err != nil {
		return err
	}
	applicationID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	application, err := h.applicationService.GetApplication(c.Request().Context(), userID, applicationID, IsAdmin(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, application)
}

// UpdateStatus godoc
// @Summary Update an application's review status
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} model.Application
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /applications/{id}/status [put]
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	userID, err := CurrentUserID(c)
	if err != nil {
		return err
	}
	applicationID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateApplicationStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	application, err := h.applicationService.UpdateStatus(c.Request().Context(), userID, applicationID, IsAdmin(c), model.ApplicationStatus(req.Status))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, application)
}
