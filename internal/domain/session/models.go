package session

// UserProfile is the display identity of the signed-in user. Read-only
// outside this package.
type UserProfile struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

// Session pairs the authenticated flag with the current profile.
type Session struct {
	Authenticated bool         `json:"authenticated"`
	User          *UserProfile `json:"user,omitempty"`
}
