package gate

import "lakehire/internal/model"

// Capabilities is the named permission set a role maps to. Role branching
// happens here once, not ad hoc at each call site.
type Capabilities struct {
	CanApply       bool
	CanPostJobs    bool
	CanOwnCompany  bool
	CanEditProfile bool
	CanModerate    bool
	CanBroadcast   bool
}

// CapabilitiesFor maps a role to its capability set. Unknown or empty roles
// get no capabilities.
func CapabilitiesFor(role model.Role) Capabilities {
	switch role {
	case model.RoleConsultant:
		return Capabilities{
			CanApply:       true,
			CanEditProfile: true,
		}
	case model.RoleCompany:
		return Capabilities{
			CanPostJobs:   true,
			CanOwnCompany: true,
		}
	case model.RoleAdmin:
		return Capabilities{
			CanApply:       true,
			CanPostJobs:    true,
			CanOwnCompany:  true,
			CanEditProfile: true,
			CanModerate:    true,
			CanBroadcast:   true,
		}
	case model.RoleStaff:
		return Capabilities{
			CanModerate: true,
		}
	default:
		return Capabilities{}
	}
}
