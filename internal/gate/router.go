package gate

import "lakehire/internal/model"

// View is the closed set of renderable views. Route resolution always lands
// on exactly one of these.
type View string

const (
	ViewLoading          View = "loading"
	ViewLanding          View = "landing"
	ViewHome             View = "home"
	ViewLogin            View = "login"
	ViewRegister         View = "register"
	ViewJobs             View = "jobs"
	ViewConsultants      View = "consultants"
	ViewApplications     View = "applications"
	ViewProfile          View = "profile"
	ViewCompany          View = "company"
	ViewDashboard        View = "dashboard"
	ViewCompanyDashboard View = "company_dashboard"
	ViewAdmin            View = "admin"
	ViewNotFound         View = "not_found"
)

// route is one (path, view) pair. Matching is exact path equality; there is
// no parameterized or nested matching.
type route struct {
	path string
	view View
}

// ViewRouter maps (path, identity) to a view. It is a pure function of its
// inputs; all state lives in the resolver.
type ViewRouter struct {
	table []route
}

// NewViewRouter builds the router with the static ordered route table.
func NewViewRouter() *ViewRouter {
	return &ViewRouter{
		table: []route{
			{"/", ViewHome}, // role-conditional, see Resolve
			{"/login", ViewLogin},
			{"/register", ViewRegister},
			{"/jobs", ViewJobs},
			{"/consultants", ViewConsultants},
			{"/applications", ViewApplications},
			{"/profile", ViewProfile},
			{"/company", ViewCompany},
			{"/dashboard", ViewDashboard}, // role-conditional, see Resolve
			{"/admin", ViewAdmin},
		},
	}
}

// Resolve picks the view for a path. While identity is still loading no
// route is evaluated. Unmatched paths land on the terminal not-found view.
func (r *ViewRouter) Resolve(path string, id Identity) View {
	if id.State == StateLoading {
		return ViewLoading
	}

	for _, rt := range r.table {
		if rt.path != path {
			continue
		}
		switch rt.path {
		case "/":
			if !id.IsAuthenticated() {
				return ViewLanding
			}
			return ViewHome
		case "/dashboard":
			if id.Role() == model.RoleCompany {
				return ViewCompanyDashboard
			}
			return ViewDashboard
		default:
			return rt.view
		}
	}
	return ViewNotFound
}
