package gate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lakehire/internal/client"
	"lakehire/internal/model"
)

type fakeAPI struct {
	user  *model.User
	err   error
	calls int
}

func (f *fakeAPI) Me(ctx context.Context) (*model.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func consultant() *model.User {
	return &model.User{Email: "c@example.com", Role: model.RoleConsultant}
}

func TestResolverNoTokenSkipsNetwork(t *testing.T) {
	api := &fakeAPI{user: consultant()}
	r := NewResolver(client.NewMemoryStorage(), api)

	id := r.Resolve(context.Background())

	assert.Equal(t, StateUnauthenticated, id.State)
	assert.Zero(t, api.calls)
}

func TestResolverAuthenticatesFromEndpoint(t *testing.T) {
	storage := client.NewMemoryStorage()
	assert.NoError(t, storage.Save("tok"))
	api := &fakeAPI{user: consultant()}
	r := NewResolver(storage, api)

	id := r.Resolve(context.Background())

	assert.True(t, id.IsAuthenticated())
	assert.Equal(t, "c@example.com", id.User.Email)
	assert.Equal(t, 1, api.calls)
}

func TestResolverCachesWithinFreshnessWindow(t *testing.T) {
	storage := client.NewMemoryStorage()
	assert.NoError(t, storage.Save("tok"))
	api := &fakeAPI{user: consultant()}

	now := time.Now()
	r := NewResolver(storage, api)
	r.now = func() time.Time { return now }

	r.Resolve(context.Background())
	now = now.Add(4 * time.Minute)
	r.Resolve(context.Background())
	assert.Equal(t, 1, api.calls, "second resolve within the window must hit the cache")

	now = now.Add(2 * time.Minute)
	r.Resolve(context.Background())
	assert.Equal(t, 2, api.calls, "a stale cache triggers one refetch")
}

func TestResolverFailureLeavesTokenInPlace(t *testing.T) {
	storage := client.NewMemoryStorage()
	assert.NoError(t, storage.Save("tok"))
	api := &fakeAPI{err: errors.New("connection refused")}
	r := NewResolver(storage, api)

	id := r.Resolve(context.Background())

	assert.Equal(t, StateUnauthenticated, id.State)
	_, ok := storage.Token()
	assert.True(t, ok, "resolver must not clear the token on failure")
}

func TestRouterLoadingShortCircuits(t *testing.T) {
	router := NewViewRouter()
	assert.Equal(t, ViewLoading, router.Resolve("/jobs", Identity{State: StateLoading}))
	assert.Equal(t, ViewLoading, router.Resolve("/nope", Identity{State: StateLoading}))
}

func TestRouterUnknownPathIsNotFound(t *testing.T) {
	router := NewViewRouter()
	anon := Identity{State: StateUnauthenticated}
	authed := Identity{State: StateAuthenticated, User: consultant()}

	assert.Equal(t, ViewNotFound, router.Resolve("/does-not-exist", anon))
	assert.Equal(t, ViewNotFound, router.Resolve("/does-not-exist", authed))
	assert.Equal(t, ViewNotFound, router.Resolve("/jobs/123", anon), "matching is exact, not prefix")
}

func TestRouterRootIsRoleConditional(t *testing.T) {
	router := NewViewRouter()

	assert.Equal(t, ViewLanding, router.Resolve("/", Identity{State: StateUnauthenticated}))
	assert.Equal(t, ViewHome, router.Resolve("/", Identity{State: StateAuthenticated, User: consultant()}))
}

func TestRouterDashboardBranchesOnCompanyRole(t *testing.T) {
	router := NewViewRouter()

	company := Identity{State: StateAuthenticated, User: &model.User{Role: model.RoleCompany}}
	assert.Equal(t, ViewCompanyDashboard, router.Resolve("/dashboard", company))

	for _, role := range []model.Role{model.RoleConsultant, model.RoleAdmin, model.RoleStaff, ""} {
		id := Identity{State: StateAuthenticated, User: &model.User{Role: role}}
		assert.Equal(t, ViewDashboard, router.Resolve("/dashboard", id), "role %q", role)
	}
}

func TestCapabilitiesPerRole(t *testing.T) {
	assert.True(t, CapabilitiesFor(model.RoleConsultant).CanApply)
	assert.False(t, CapabilitiesFor(model.RoleConsultant).CanPostJobs)

	assert.True(t, CapabilitiesFor(model.RoleCompany).CanPostJobs)
	assert.False(t, CapabilitiesFor(model.RoleCompany).CanApply)

	assert.True(t, CapabilitiesFor(model.RoleAdmin).CanModerate)
	assert.True(t, CapabilitiesFor(model.RoleStaff).CanModerate)
	assert.False(t, CapabilitiesFor(model.RoleStaff).CanBroadcast)

	assert.Equal(t, Capabilities{}, CapabilitiesFor("unknown"))
}
