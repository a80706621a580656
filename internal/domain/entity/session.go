package entity

// SessionKind describes what an authenticated session is allowed to do.
type SessionKind string

const (
	// SessionUser is a regular signed-in account.
	SessionUser SessionKind = "user"
	// SessionGuest is a read-only browsing session.
	SessionGuest SessionKind = "guest"
)

// CanWrite reports whether the session may mutate roles, profiles, vehicles or routes.
func (s SessionKind) CanWrite() bool {
	return s == SessionUser
}
