package domain

// Caller is the authenticated principal decoded from a bearer credential.
type Caller struct {
	Email string
	ID    int64
	Role  Role
}

// IsAdmin reports whether the caller carries the admin role.
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// Authorize is the ownership policy for reads: the owner or an admin may
// proceed. Returns ErrForbidden otherwise.
func Authorize(caller Caller, ownerID int64) error {
	if caller.IsAdmin() || caller.ID == ownerID {
		return nil
	}
	return ErrForbidden
}

// AuthorizeOwner is the strict variant used by mutations: only the owning
// user may proceed, admins included. The asymmetry with Authorize matches
// the order/cart mutation rules.
func AuthorizeOwner(caller Caller, ownerID int64) error {
	if caller.ID == ownerID {
		return nil
	}
	return ErrForbidden
}

// RequireAdmin gates admin-only operations.
func RequireAdmin(caller Caller) error {
	if caller.IsAdmin() {
		return nil
	}
	return ErrUnauthorized
}

// RequireAdminOrSelf gates operations a user may run on their own account
// and admins may run on anyone's.
func RequireAdminOrSelf(caller Caller, userID int64) error {
	if caller.IsAdmin() || caller.ID == userID {
		return nil
	}
	return ErrUnauthorized
}
