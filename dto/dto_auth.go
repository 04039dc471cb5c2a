package dto

// LoginRequest is the combined login payload. Identifier may be an email,
// a uhid or a phone number; Role picks the collection to search.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
	Role       string `json:"role"` // "admin" | "doctor" | "patient"
}

// GoogleLoginRequest is the federated login payload; the identity provider
// already verified the email, so no password travels here.
type GoogleLoginRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type PasswordResetRequest struct {
	UHID        string `json:"uhid"`
	NewPassword string `json:"new_password"`
}

// LoginResponse echoes the resolved user document. Token is only present when
// the server is configured with a signing secret.
type LoginResponse struct {
	Message string `json:"message"`
	Role    string `json:"role,omitempty"`
	User    any    `json:"user"`
	Token   string `json:"token,omitempty"`
}
