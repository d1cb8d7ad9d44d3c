package dto

// UserResponse is the public view of a login account.
type UserResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	CustomerNumber *int64 `json:"customerNumber,omitempty"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	ID int64 `json:"id"`
}

// LoginResponse carries the session token and the user's profile.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
