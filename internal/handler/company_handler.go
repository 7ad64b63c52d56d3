package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lakehire/internal/errors"
	"lakehire/internal/model"
	"lakehire/internal/service"
)

// CompanyHandler handles company endpoints.
type CompanyHandler struct {
	companyService service.CompanyService
}

// NewCompanyHandler creates a new company handler.
func NewCompanyHandler(companyService service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// CompanyRequest is the create/update payload for a company.
type CompanyRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Website     string `json:"website" validate:"omitempty,url"`
	Industry    string `json:"industry"`
	Size        string `json:"size" validate:"omitempty,oneof=1-10 11-50 51-200 201-500 500+"`
	Location    string `json:"location"`
	LogoURL     string `json:"logo_url" validate:"omitempty,url"`
}

func (r *CompanyRequest) toModel() *model.Company {
	return &model.Company{
		Name:        r.Name,
		Description: r.Description,
		Website:     r.Website,
		Industry:    r.Industry,
		Size:        model.CompanySize(r.Size),
		Location:    r.Location,
		LogoURL:     r.LogoURL,
	}
}

// Create godoc
// @Summary Create a company
// @Tags companies
// @Accept json
// @Produce json
// @Param request body CompanyRequest true "Company data"
// @Success 201 {object} model.Company
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /companies [post]
func (h *CompanyHandler) Create(c echo.Context) error {
	userID, err := CurrentUserID(c)
	if err != nil {
		return err
	}

	var req CompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	company, err := h.companyService.CreateCompany(c.Request().Context(), userID, req.toModel())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, company)
}

// Update godoc
// @Summary Update a company
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param request body CompanyRequest true "Company data"
// @Success 200 {object} model.Company
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /companies/{id} [put]
func (h *CompanyHandler) Update(c echo.Context) error {
	userID, err := CurrentUserID(c)
	if err != nil {
		return err
	}
	companyID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req CompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	company, err := h.companyService.UpdateCompany(c.Request().Context(), userID, companyID, IsAdmin(c), req.toModel())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, company)
}

// Delete godoc
// @Summary Delete a company and its jobs
// @Tags companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /companies/{id} [delete]
func (h *CompanyHandler) Delete(c echo.Context) error {
	userID, err := CurrentUserID(c)
	if err != nil {
		return err
	}
	companyID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.companyService.DeleteCompany(c.Request().Context(), userID, companyID, IsAdmin(c)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "company deleted"})
}

// Get godoc
// @Summary Get a company
// @Tags companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} model.Company
// @Failure 404 {object} errors.ErrorResponse
// @Router /companies/{id} [get]
func (h *CompanyHandler) Get(c echo.Context) error {
	companyID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	company, err := h.companyService.GetCompany(c.Request().Context(), companyID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, company)
}

// List godoc
// @Summary List companies
// @Tags companies
// @Produce json
// @Success 200 {array} model.Company
// @Router /companies [get]
func (h *CompanyHandler) List(c echo.Context) error {
	companies, err := h.companyService.ListCompanies(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to list companies",
			Code:  "INTERNAL_ERROR",
		})
	}
	return c.JSON(http.StatusOK, companies)
}

// Mine godoc
// @Summary List the caller's companies
// @Tags companies
// @Produce json
// @Success 200 {array} model.Company
// @Security BearerAuth
// @Router /companies/mine [get]
func (h *CompanyHandler) Mine(c echo.Context) error {
	userID, err := CurrentUserID(c)
	if err != nil {
		return err
	}

	companies, err := h.companyService.ListMine(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to list companies",
			Code:  "INTERNAL_ERROR",
		})
	}
	return c.JSON(http.StatusOK, companies)
}
