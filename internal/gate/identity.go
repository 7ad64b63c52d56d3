package gate

import (
	"context"
	"sync"
	"time"

	"lakehire/internal/client"
	"lakehire/internal/model"
)

// identityTTL is the freshness window for a resolved identity. Within it the
// resolver answers from cache and issues no network request.
const identityTTL = 5 * time.Minute

// AuthState is the tri-state identity signal views branch on.
type AuthState int

const (
	StateLoading AuthState = iota
	StateAuthenticated
	StateUnauthenticated
)

// Identity is the resolved session: a state and, when authenticated, the
// user it resolved to.
type Identity struct {
	State AuthState
	User  *model.User
}

// IsAuthenticated reports whether the identity resolved to a user.
func (i Identity) IsAuthenticated() bool {
	return i.State == StateAuthenticated
}

// Role returns the resolved user's role, or the empty role when there is
// no user.
func (i Identity) Role() model.Role {
	if i.User == nil {
		return ""
	}
	return i.User.Role
}

// IdentityClient fetches the current user. *client.Client satisfies it.
type IdentityClient interface {
	Me(ctx context.Context) (*model.User, error)
}

// Resolver derives the session identity from the persisted token. It is
// constructed once at startup and injected wherever identity is consulted.
type Resolver struct {
	storage client.TokenStorage
	api     IdentityClient
	now     func() time.Time

	mu        sync.Mutex
	cached    *model.User
	fetchedAt time.Time
}

// NewResolver creates a resolver over the given token storage and API client.
func NewResolver(storage client.TokenStorage, api IdentityClient) *Resolver {
	return &Resolver{
		storage: storage,
		api:     api,
		now:     time.Now,
	}
}

// Resolve returns the current identity. Without a token it short-circuits to
// unauthenticated with no network call. With a token it fetches the current
// user at most once per freshness window. On any fetch failure the state is
// unauthenticated; the token is left in place for the next attempt.
func (r *Resolver) Resolve(ctx context.Context) Identity {
	if _, ok := r.storage.Token(); !ok {
		return Identity{State: StateUnauthenticated}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != nil && r.now().Sub(r.fetchedAt) < identityTTL {
		return Identity{State: StateAuthenticated, User: r.cached}
	}

	user, err := r.api.Me(ctx)
	if err != nil {
		return Identity{State: StateUnauthenticated}
	}

	r.cached = user
	r.fetchedAt = r.now()
	return Identity{State: StateAuthenticated, User: user}
}

// Invalidate drops the cached identity, forcing the next Resolve to fetch.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cached = nil
	r.fetchedAt = time.Time{}
}
