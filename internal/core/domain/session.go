package domain

// Session is the client-held record of the current authenticated user.
// The zero value is the logged-out state.
type Session struct {
	// Token is the opaque bearer token, empty when logged out.
	Token string `json:"access_token"`
	// UserID is the backend identifier of the account.
	UserID string `json:"user_id"`
	// FullName is the display name of the account.
	FullName string `json:"full_name"`
	// Email is the account email address.
	Email string `json:"email"`
	// Authenticated mirrors Token presence. It is redundant but kept
	// in the persisted record so a restored session is self-describing.
	Authenticated bool `json:"is_authenticated"`
}

// IsZero reports whether the session is in the logged-out state with
// every identity field cleared.
func (s Session) IsZero() bool {
	return s.Token == "" && s.UserID == "" && s.FullName == "" &&
		s.Email == "" && !s.Authenticated
}
