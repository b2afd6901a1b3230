package dto

// AdminLoginRequest payload for the admin console login.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CrewLoginRequest payload for crew dashboard login.
type CrewLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SuccessResponse is the minimal envelope used by the auth endpoints.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// VerifyResponse reports the resolved session without mutating state.
type VerifyResponse struct {
	Authenticated bool   `json:"authenticated"`
	Method        string `json:"method,omitempty"`
	CrewID        string `json:"crewId,omitempty"`
	Role          string `json:"role,omitempty"`
}
