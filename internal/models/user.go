package models

// User is a credential pair seeded out-of-band; there is no registration
// endpoint and passwords are matched by exact equality.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body for POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned for both successful and failed logins.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
