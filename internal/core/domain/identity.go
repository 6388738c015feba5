package domain

import "context"

// Identity is the decoded claim of a bearer token: who is calling and with
// which role.
type Identity struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// IsZero reports whether no identity has been resolved.
func (i Identity) IsZero() bool {
	return i.ID == "" && i.Role == ""
}

// HasAnyRole reports whether the identity's role is one of roles. The
// comparison is exact; there is no role hierarchy.
func (i Identity) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity attached by WithIdentity, if any.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	if !ok || id.IsZero() {
		return Identity{}, false
	}
	return id, true
}
