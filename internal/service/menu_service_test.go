package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lakehire/internal/model"
)

var knownIcons = map[Icon]bool{
	IconHome: true, IconBriefcase: true, IconUser: true, IconUsers: true,
	IconBuilding: true, IconClipboard: true, IconShield: true, IconChart: true,
	IconLogin: true, IconRegister: true,
}

func TestMenuForRole(t *testing.T) {
	s := NewMenuService()

	tests := []struct {
		role     model.Role
		contains string
	}{
		{model.RoleConsultant, "/applications"},
		{model.RoleCompany, "/company"},
		{model.RoleAdmin, "/admin"},
		{model.RoleStaff, "/dashboard"},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			menu := s.ForRole(tt.role)
			assert.NotEmpty(t, menu)

			paths := make([]string, 0, len(menu))
			for _, item := range menu {
				paths = append(paths, item.Path)
			}
			assert.Contains(t, paths, tt.contains)
		})
	}
}

func TestUnknownRoleGetsPublicMenu(t *testing.T) {
	s := NewMenuService()
	assert.Equal(t, s.Public(), s.ForRole("intern"))
}

func TestEveryMenuIconIsInTheClosedSet(t *testing.T) {
	s := NewMenuService()

	check := func(items []MenuItem) {
		for _, item := range items {
			assert.True(t, knownIcons[item.Icon], "icon %q is not a declared constant", item.Icon)
		}
	}

	check(s.Public())
	for _, items := range s.All() {
		check(items)
	}
}

func TestAdminMenuIsNotExposedToOtherRoles(t *testing.T) {
	s := NewMenuService()
	for _, role := range []model.Role{model.RoleConsultant, model.RoleCompany, model.RoleStaff} {
		for _, item := range s.ForRole(role) {
			assert.NotEqual(t, "/admin", item.Path, "role %q must not see the admin entry", role)
		}
	}
}
