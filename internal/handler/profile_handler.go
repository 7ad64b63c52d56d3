package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"lakehire/internal/errors"
	"lakehire/internal/model"
	"lakehire/internal/service"
)

// ProfileHandler handles consultant profile endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ProfileRequest is the create/update payload for a profile.
type ProfileRequest struct {
	Title          string          `json:"title" validate:"required"`
	Bio            string          `json:"bio"`
	Location       string          `json:"location"`
	Skills         []string        `json:"skills"`
	Experience     int             `json:"experience" validate:"gte=0"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"`
	Availability   string          `json:"availability" validate:"omitempty,oneof=available busy not_available"`
	Certifications []string        `json:"certifications"`
	PortfolioURL   string          `json:"portfolio_url" validate:"omitempty,url"`
	LinkedinURL    string          `json:"linkedin_url" validate:"omitempty,url"`
	GithubURL      string          `json:"github_url" validate:"omitempty,url"`
	IsPublic       *bool           `json:"is_public"`
}

func (r *ProfileRequest) toModel() *model.Profile {
	isPublic := true
	if r.IsPublic != nil {
		isPublic = *r.IsPublic
	}
	return &model.Profile{
		Title:          r.Title,
		Bio:            r.Bio,
		Location:       r.Location,
		Skills:         model.StringList(r.Skills),
		Experience:     r.Experience,
		HourlyRate:     r.HourlyRate,
		Availability:   model.Availability(r.Availability),
		Certifications: model.StringList(r.Certifications),
		PortfolioURL:   r.PortfolioURL,
		LinkedinURL:    r.LinkedinURL,
		GithubURL:      r.GithubURL,
		IsPublic:       isPublic,
	}
}

// Create godoc
// @Summary Create the caller's profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body ProfileRequest true "Profile data"
// @Success 201 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /profiles [post]
func (h *ProfileHandler) Create(c echo.Context) error {
	userID, err := CurrentUserID(c)
	if err != nil {
		return err
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profileService.CreateProfile(c.Request().Context(), userID, req.toModel())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, profile)
}

// Update godoc
// @Summary Update a profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param request body ProfileRequest true "Profile data"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /profiles/{id} [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, err := CurrentUserID(c)
	if err != nil {
		return err
	}
	profileID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profileService.UpdateProfile(c.Request().Context(), userID, profileID, IsAdmin(c), req.toModel())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, profile)
}

// Get godoc
// @Summary Get a profile
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} model.Profile
// @Failure 404 {object} errors.ErrorResponse
// @Router /profiles/{id} [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	profileID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.profileService.GetProfile(c.Request().Context(), profileID, OptionalViewerID(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, profile)
}

// Me godoc
// @Summary Get the caller's own profile
// @Tags profiles
// @Produce json
// @Success 200 {object} model.Profile
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /profiles/me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	userID, err := CurrentUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.profileService.MyProfile(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, profile)
}

// List godoc
// @Summary List public profiles
// @Tags profiles
// @Produce json
// @Success 200 {array} model.Profile
// @Router /profiles [get]
func (h *ProfileHandler) List(c echo.Context) error {
	profiles, err := h.profileService.ListPublic(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to list profiles",
			Code:  "INTERNAL_ERROR",
		})
	}
	return c.JSON(http.StatusOK, profiles)
}
