package service

import (
	"lakehire/internal/model"
)

// Icon is the closed set of navigation icons. Menu entries reference icons by
// constant, never by free-form string, so an unknown icon cannot reach a
// client.
type Icon string

const (
	IconHome         Icon = "home"
	IconBriefcase    Icon = "briefcase"
	IconUser         Icon = "user"
	IconUsers        Icon = "users"
	IconBuilding     Icon = "building"
	IconClipboard    Icon = "clipboard"
	IconShield       Icon = "shield"
	IconChart        Icon = "chart"
	IconLogin        Icon = "login"
	IconRegister     Icon = "register"
)

// MenuItem is one navigation entry.
type MenuItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  Icon   `json:"icon"`
}

// MenuService resolves navigation menus per role.
type MenuService interface {
	ForRole(role model.Role) []MenuItem
	Public() []MenuItem
	All() map[model.Role][]MenuItem
}

type menuService struct{}

// NewMenuService creates a new menu service.
func NewMenuService() MenuService {
	return &menuService{}
}

var publicMenu = []MenuItem{
	{Label: "Home", Path: "/", Icon: IconHome},
	{Label: "Jobs", Path: "/jobs", Icon: IconBriefcase},
	{Label: "Consultants", Path: "/consultants", Icon: IconUsers},
	{Label: "Sign in", Path: "/login", Icon: IconLogin},
	{Label: "Register", Path: "/register", Icon: IconRegister},
}

var consultantMenu = []MenuItem{
	{Label: "Home", Path: "/", Icon: IconHome},
	{Label: "Dashboard", Path: "/dashboard", Icon: IconChart},
	{Label: "Jobs", Path: "/jobs", Icon: IconBriefcase},
	{Label: "My applications", Path: "/applications", Icon: IconClipboard},
	{Label: "Profile", Path: "/profile", Icon: IconUser},
}

var companyMenu = []MenuItem{
	{Label: "Home", Path: "/", Icon: IconHome},
	{Label: "Dashboard", Path: "/dashboard", Icon: IconChart},
	{Label: "Jobs", Path: "/jobs", Icon: IconBriefcase},
	{Label: "Consultants", Path: "/consultants", Icon: IconUsers},
	{Label: "Company", Path: "/company", Icon: IconBuilding},
}

var adminMenu = []MenuItem{
	{Label: "Home", Path: "/", Icon: IconHome},
	{Label: "Dashboard", Path: "/dashboard", Icon: IconChart},
	{Label: "Admin", Path: "/admin", Icon: IconShield},
	{Label: "Jobs", Path: "/jobs", Icon: IconBriefcase},
	{Label: "Consultants", Path: "/consultants", Icon: IconUsers},
}

var staffMenu = []MenuItem{
	{Label: "Home", Path: "/", Icon: IconHome},
	{Label: "Dashboard", Path: "/dashboard", Icon: IconChart},
	{Label: "Jobs", Path: "/jobs", Icon: IconBriefcase},
	{Label: "Consultants", Path: "/consultants", Icon: IconUsers},
}

// ForRole returns the menu for a role. Unknown roles get the public menu.
func (s *menuService) ForRole(role model.Role) []MenuItem {
	switch role {
	case model.RoleConsultant:
		return consultantMenu
	case model.RoleCompany:
		return companyMenu
	case model.RoleAdmin:
		return adminMenu
	case model.RoleStaff:
		return staffMenu
	default:
		return publicMenu
	}
}

func (s *menuService) Public() []MenuItem {
	return publicMenu
}

func (s *menuService) All() map[model.Role][]MenuItem {
	return map[model.Role][]MenuItem{
		model.RoleConsultant: consultantMenu,
		model.RoleCompany:    companyMenu,
		model.RoleAdmin:      adminMenu,
		model.RoleStaff:      staffMenu,
	}
}
