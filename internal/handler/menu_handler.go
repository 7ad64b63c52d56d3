package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lakehire/internal/service"
)

// MenuHandler serves role-scoped navigation menus.
type MenuHandler struct {
	menuService service.MenuService
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(menuService service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// Public godoc
// @Summary Navigation menu for anonymous visitors
// @Tags menu
// @Produce json
// @Success 200 {array} service.MenuItem
// @Router /menu/public [get]
func (h *MenuHandler) Public(c echo.Context) error {
	return c.JSON(http.StatusOK, h.menuService.Public())
}

// Mine godoc
// @Summary Navigation menu for the caller's role
// @Tags menu
// @Produce json
// @Success 200 {array} service.MenuItem
// @Security BearerAuth
// @Router /menu [get]
func (h *MenuHandler) Mine(c echo.Context) error {
	claims, err := CurrentClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.menuService.ForRole(claims.Role))
}

// All godoc
// @Summary Every role's menu, for the admin console
// @Tags menu
// @Produce json
// @Success 200 {object} map[string][]service.MenuItem
// @Security BearerAuth
// @Router /menu/all [get]
func (h *MenuHandler) All(c echo.Context) error {
	return c.JSON(http.StatusOK, h.menuService.All())
}
