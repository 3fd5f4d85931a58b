package contextkeys

// Custom type so keys cannot collide with other packages.
type contextKey string

// ClaimsContextKey is where the auth middleware stores the verified claims
// of the acting user.
const ClaimsContextKey = contextKey("claims")
