package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lakehire/internal/errors"
	"lakehire/internal/model"
	"lakehire/internal/service"
)

// ConsultantHandler handles the specialized consultant sign-up flow.
type ConsultantHandler struct {
	consultantService service.ConsultantService
}

// NewConsultantHandler creates a new consultant handler.
func NewConsultantHandler(consultantService service.ConsultantService) *ConsultantHandler {
	return &ConsultantHandler{consultantService: consultantService}
}

// ConsultantReferenceRequest is one project reference in a registration.
type ConsultantReferenceRequest struct {
	ProjectName         string   `json:"project_name" validate:"required"`
	ProjectDescription  string   `json:"project_description"`
	Duration            string   `json:"duration"`
	ManagerName         string   `json:"manager_name" validate:"required"`
	ManagerEmail        string   `json:"manager_email" validate:"required,email"`
	Technologies        []string `json:"technologies"`
	PermissionToContact bool     `json:"permission_to_contact"`
}

// ConsultantRegisterRequest is the full registration payload.
type ConsultantRegisterRequest struct {
	FirstName       string                       `json:"first_name" validate:"required"`
	LastName        string                       `json:"last_name" validate:"required"`
	Handle          string                       `json:"handle" validate:"required,min=3,max=30,handle"`
	Email           string                       `json:"email" validate:"required,email"`
	Phone           string                       `json:"phone"`
	Linkedin        string                       `json:"linkedin" validate:"omitempty,url"`
	Location        string                       `json:"location"`
	CVPath          string                       `json:"cv_path"`
	YearsExperience string                       `json:"years_experience" validate:"required,oneof=1-2 3-5 6-10 10+"`
	Specialization  string                       `json:"specialization" validate:"required,oneof=data-engineering machine-learning data-architecture analytics migration"`
	HourlyRateRange string                       `json:"hourly_rate_range" validate:"omitempty,oneof=50-75 75-100 100-150 150-200 200+"`
	Availability    string                       `json:"availability"`
	Certifications  []string                     `json:"certifications"`
	Skills          []string                     `json:"skills" validate:"required,min=1"`
	Industries      []string                     `json:"industries"`
	Bio             string                       `json:"bio" validate:"required,min=50"`
	References      []ConsultantReferenceRequest `json:"references" validate:"dive"`
}

// Register godoc
// @Summary Register a consultant with references
// @Tags consultants
// @Accept json
// @Produce json
// @Param request body ConsultantRegisterRequest true "Registration data"
// @Success 201 {object} model.Consultant
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /consultants [post]
func (h *ConsultantHandler) Register(c echo.Context) error {
	var req ConsultantRegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	consultant := &model.Consultant{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Handle:          req.Handle,
		Email:           req.Email,
		Phone:           req.Phone,
		Linkedin:        req.Linkedin,
		Location:        req.Location,
		CVPath:          req.CVPath,
		YearsExperience: req.YearsExperience,
		Specialization:  model.Specialization(req.Specialization),
		HourlyRateRange: req.HourlyRateRange,
		Availability:    req.Availability,
		Certifications:  model.StringList(req.Certifications),
		Skills:          model.StringList(req.Skills),
		Industries:      model.StringList(req.Industries),
		Bio:             req.Bio,
	}

	references := make([]model.ConsultantReference, 0, len(req.References))
	for _, r := range req.References {
		references = append(references, model.ConsultantReference{
			ProjectName:         r.ProjectName,
			ProjectDescription:  r.ProjectDescription,
			Duration:            r.Duration,
			ManagerName:         r.ManagerName,
			ManagerEmail:        r.ManagerEmail,
			Technologies:        model.StringList(r.Technologies),
			PermissionToContact: r.PermissionToContact,
		})
	}

	created, err := h.consultantService.Register(c.Request().Context(), consultant, references)
	if err != nil {
		if err == service.ErrUserAlreadyExists {
			return echo.NewHTTPError(http.StatusConflict, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "EMAIL_TAKEN",
			})
		}
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, created)
}

// Get godoc
// @Summary Get a consultant
// @Tags consultants
// @Produce json
// @Param id path string true "Consultant ID"
// @Success 200 {object} model.Consultant
// @Failure 404 {object} errors.ErrorResponse
// @Router /consultants/{id} [get]
func (h *ConsultantHandler) Get(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	consultant, err := h.consultantService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, consultant)
}

// List godoc
// @Summary List consultants
// @Tags consultants
// @Produce json
// @Success 200 {array} model.Consultant
// @Router /consultants [get]
func (h *ConsultantHandler) List(c echo.Context) error {
	// admins and staff see every status, everyone else only approved
	includeAll := false
	if claims, err := CurrentClaims(c); err == nil {
		includeAll = claims.Role == model.RoleAdmin || claims.Role == model.RoleStaff
	}

	consultants, err := h.consultantService.List(c.Request().Context(), includeAll)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to list consultants",
			Code:  "INTERNAL_ERROR",
		})
	}
	return c.JSON(http.StatusOK, consultants)
}
