package models

// Role represents the role carried in a user's token claims
type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RolePM          Role = "PM"
	RoleRSP         Role = "RSP"
	RoleLND         Role = "LND"
	RoleInterviewer Role = "INTERVIEWER"
	RoleRater       Role = "RATER"
	RoleApplicant   Role = "APPLICANT"
)

// IsKnown returns true if the role is one of the enumerated set.
// Tokens with unknown roles parse fine but satisfy no authorization check.
func (r Role) IsKnown() bool {
	switch r {
	case RoleAdmin, RolePM, RoleRSP, RoleLND, RoleInterviewer, RoleRater, RoleApplicant:
		return true
	}
	return false
}

// Principal is the authenticated identity resolved for one request.
// It is only ever constructed from successfully validated token claims and
// is immutable for the lifetime of the request.
type Principal struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// LoginRequest is the login endpoint payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the login endpoint success payload
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	User        Principal `json:"user"`
}
