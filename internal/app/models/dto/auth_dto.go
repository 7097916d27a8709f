package dto

// LoginRequest carries admin credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminInfo is the public identity of an admin session.
type AdminInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// LoginResponse confirms a successful login.
type LoginResponse struct {
	Success bool      `json:"success"`
	Admin   AdminInfo `json:"admin"`
}

// SessionCheckResponse reports the current session identity.
type SessionCheckResponse struct {
	Authenticated bool       `json:"authenticated"`
	Admin         *AdminInfo `json:"admin,omitempty"`
}
