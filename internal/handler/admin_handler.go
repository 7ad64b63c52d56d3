package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lakehire/internal/errors"
	"lakehire/internal/model"
	"lakehire/internal/repository"
	"lakehire/internal/service"
)

// AdminHandler serves the moderation surface.
type AdminHandler struct {
	adminService      service.AdminService
	jobService        service.JobService
	consultantService service.ConsultantService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminService service.AdminService, jobService service.JobService, consultantService service.ConsultantService) *AdminHandler {
	return &AdminHandler{
		adminService:      adminService,
		jobService:        jobService,
		consultantService: consultantService,
	}
}

// RejectUserRequest carries the rejection reason sent to the user.
type RejectUserRequest struct {
	Reason string `json:"reason"`
}

// VerifyJobRequest records an admin decision on a posting.
type VerifyJobRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
	Notes  string `json:"notes"`
}

// ConsultantStatusRequest moves a consultant registration through review.
type ConsultantStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected draft"`
}

// BroadcastRequest is an admin announcement to a recipient group.
type BroadcastRequest struct {
	Subject    string   `json:"subject" validate:"required"`
	Message    string   `json:"message" validate:"required"`
	Recipients string   `json:"recipients" validate:"omitempty,oneof=all consultants companies"`
	To         []string `json:"to" validate:"omitempty,dive,email"`
	CTAText    string   `json:"cta_text"`
	CTAURL     string   `json:"cta_url" validate:"omitempty,url"`
}

// PendingUsers godoc
// @Summary List users awaiting approval
// @Tags admin
// @Produce json
// @Param role query string false "Narrow to one role"
// @Success 200 {array} model.User
// @Security BearerAuth
// @Router /admin/users/pending [get]
func (h *AdminHandler) PendingUsers(c echo.Context) error {
	users, err := h.adminService.PendingUsers(c.Request().Context(), model.Role(c.QueryParam("role")))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to list pending users",
			Code:  "INTERNAL_ERROR",
		})
	}
	return c.JSON(http.StatusOK, users)
}

// ApproveUser godoc
// @Summary Approve a user
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id}/approve [post]
func (h *AdminHandler) ApproveUser(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	user, err := h.adminService.ApproveUser(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// RejectUser godoc
// @Summary Reject a user
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body RejectUserRequest true "Rejection reason"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id}/reject [post]
func (h *AdminHandler) RejectUser(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req RejectUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.adminService.RejectUser(c.Request().Context(), id, req.Reason)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// Stats godoc
// @Summary Platform counters for the admin dashboard
// @Tags admin
// @Produce json
// @Success 200 {object} service.PlatformStats
// @Security BearerAuth
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminService.Stats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to aggregate stats",
			Code:  "INTERNAL_ERROR",
		})
	}
	return c.JSON(http.StatusOK, stats)
}

// PendingJobs godoc
// @Summary List job postings awaiting verification
// @Tags admin
// @Produce json
// @Success 200 {array} model.Job
// @Security BearerAuth
// @Router /admin/jobs/pending [get]
func (h *AdminHandler) PendingJobs(c echo.Context) error {
	jobs, err := h.jobService.ListJobs(c.Request().Context(), repository.JobFilter{
		Verification: model.VerificationPending,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to list pending jobs",
			Code:  "INTERNAL_ERROR",
		})
	}
	return c.JSON(http.StatusOK, jobs)
}

// VerifyJob godoc
// @Summary Approve or reject a job posting
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body VerifyJobRequest true "Decision"
// @Success 200 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/jobs/{id}/verify [post]
func (h *AdminHandler) VerifyJob(c echo.Context) error {
	adminID, err := CurrentUserID(c)
	if err != nil {
		return err
	}
	jobID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req VerifyJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.jobService.VerifyJob(c.Request().Context(), adminID, jobID, model.VerificationStatus(req.Status), req.Notes)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, job)
}

// SetConsultantStatus godoc
// @Summary Move a consultant registration through review
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Consultant ID"
// @Param request body ConsultantStatusRequest true "New status"
// @Success 200 {object} model.Consultant
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/consultants/{id}/status [post]
func (h *AdminHandler) SetConsultantStatus(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req ConsultantStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	consultant, err := h.consultantService.SetStatus(c.Request().Context(), id, model.ConsultantStatus(req.Status))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, consultant)
}

// Broadcast godoc
// @Summary Send an announcement to a recipient group
// @Tags admin
// @Accept json
// @Produce json
// @Param request body BroadcastRequest true "Announcement"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/broadcast [post]
func (h *AdminHandler) Broadcast(c echo.Context) error {
	var req BroadcastRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	count, err := h.adminService.Broadcast(
		c.Request().Context(),
		req.Subject,
		req.Message,
		service.BroadcastRecipients(req.Recipients),
		req.To,
		req.CTAText,
		req.CTAURL,
	)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "broadcast queued",
		"recipients": count,
	})
}
