package domain

// Profile describes the authenticated account attached to a credential. It is
// replaced wholesale on re-login and never mutated independently.
type Profile struct {
	ID          int      `json:"id"`
	Username    string   `json:"username"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	Department  string   `json:"department,omitempty"`
	Position    string   `json:"position,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// Credential pairs a bearer token with the profile it was issued for. At most
// one credential per user type is considered valid at a time.
type Credential struct {
	UserType  UserType `json:"user_type"`
	Token     string   `json:"token"`
	TokenType string   `json:"token_type"`
	ExpiresIn int64    `json:"expires_in"`
	User      Profile  `json:"user"`
}

// RouteContext carries the navigation metadata sent to the server-side
// verification endpoint on every route check.
type RouteContext struct {
	Route    string `json:"route"`
	FullPath string `json:"fullPath"`
	Search   string `json:"search"`
	Hash     string `json:"hash"`
}
