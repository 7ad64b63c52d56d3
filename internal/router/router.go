package router

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"lakehire/internal/auth"
	"lakehire/internal/errors"
	"lakehire/internal/handler"
	"lakehire/internal/model"
)

// Handlers bundles the full handler set for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	Profile     *handler.ProfileHandler
	Company     *handler.CompanyHandler
	Job         *handler.JobHandler
	Application *handler.ApplicationHandler
	Consultant  *handler.ConsultantHandler
	Admin       *handler.AdminHandler
	Menu        *handler.MenuHandler
	Upload      *handler.UploadHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, jwtService *auth.JWTService, h Handlers) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = NewCustomValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/verify-email", h.Auth.VerifyEmail)
	api.POST("/auth/resend-verification", h.Auth.ResendVerification)
	api.POST("/auth/refresh", h.Auth.Refresh)
	api.POST("/auth/logout", h.Auth.Logout)

	api.GET("/menu/public", h.Menu.Public)

	// Public browse routes. A token, when present, identifies the viewer for
	// view events and owner visibility, but is never required.
	browse := api.Group("", OptionalAuth(jwtService))
	browse.GET("/jobs", h.Job.List)
	browse.GET("/jobs/:id", h.Job.Get)
	browse.GET("/profiles", h.Profile.List)
	browse.GET("/profiles/:id", h.Profile.Get)
	browse.GET("/companies", h.Company.List)
	browse.GET("/companies/:id", h.Company.Get)
	browse.GET("/consultants", h.Consultant.List)
	browse.GET("/consultants/:id", h.Consultant.Get)

	// Specialized consultant sign-up is open; the registration itself waits in
	// the review queue.
	api.POST("/consultants", h.Consultant.Register)

	// The upload target is pre-authorized by its ticket.
	api.PUT("/cv/files/:ticket", h.Upload.Receive)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
	}))

	secured.GET("/users/me", h.User.Me)
	secured.GET("/menu", h.Menu.Mine)

	// Profile routes
	secured.POST("/profiles", h.Profile.Create, RequireRole(model.RoleConsultant, model.RoleAdmin))
	secured.GET("/profiles/me", h.Profile.Me)
	secured.PUT("/profiles/:id", h.Profile.Update)

	// Company routes
	secured.POST("/companies", h.Company.Create, RequireRole(model.RoleCompany, model.RoleAdmin))
	secured.GET("/companies/mine", h.Company.Mine)
	secured.PUT("/companies/:id", h.Company.Update)
	secured.DELETE("/companies/:id", h.Company.Delete)

	// Job routes
	secured.POST("/jobs", h.Job.Create, RequireRole(model.RoleCompany, model.RoleAdmin))
	secured.PUT("/jobs/:id", h.Job.Update)
	secured.DELETE("/jobs/:id", h.Job.Delete)

	// Application routes
	secured.POST("/applications", h.Application.Apply, RequireRole(model.RoleConsultant))
	secured.GET("/applications/me", h.Application.Mine)
	secured.GET("/applications/:id", h.Application.Get)
	secured.PUT("/applications/:id/status", h.Application.UpdateStatus)

	// Upload routes
	secured.POST("/cv/upload", h.Upload.RequestUpload)

	// Admin routes
	admin := secured.Group("/admin", RequireRole(model.RoleAdmin))
	admin.GET("/users/pending", h.Admin.PendingUsers)
	admin.POST("/users/:id/approve", h.Admin.ApproveUser)
	admin.POST("/users/:id/reject", h.Admin.RejectUser)
	admin.GET("/stats", h.Admin.Stats)
	admin.GET("/jobs/pending", h.Admin.PendingJobs)
	admin.POST("/jobs/:id/verify", h.Admin.VerifyJob)
	admin.POST("/consultants/:id/status", h.Admin.SetConsultantStatus)
	admin.POST("/broadcast", h.Admin.Broadcast)

	secured.GET("/menu/all", h.Menu.All, RequireRole(model.RoleAdmin))
}

// OptionalAuth resolves a bearer token into claims when one is presented.
// Requests without a token, or with an invalid one, continue anonymously.
func OptionalAuth(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if token, ok := strings.CutPrefix(header, "Bearer "); ok {
				if claims, err := jwtService.ValidateToken(token); err == nil {
					c.Set("user", claims)
				}
			}
			return next(c)
		}
	}
}

// RequireRole rejects callers whose token role is not in the allowed set.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*auth.Claims)
			if !ok || claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			for _, role := range roles {
				if claims.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
				Error: errors.ErrForbidden.Error(),
				Code:  "FORBIDDEN",
			})
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// handleRe limits consultant handles to letters, digits, underscores and
// hyphens. Length bounds come from the min/max tags.
var handleRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// NewCustomValidator builds the request validator with the domain
// validations registered.
func NewCustomValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("handle", func(fl validator.FieldLevel) bool {
		return handleRe.MatchString(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
