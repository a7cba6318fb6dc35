package api

import (
	"time"

	"github.com/taskdeck/api/internal/domain"
)

// RegisterRequest is the request body for POST /auth/register.
// Role is optional; an explicit "admin" elevates the new user, which
// mirrors how accounts are seeded in this system.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin"`
}

// LoginRequest is the request body for POST /auth/login.
// Identifier accepts either a username or an email address.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

// CreateTaskRequest is the request body for POST /tasks.
// Omitted status, priority and description fall back to their defaults.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"      validate:"omitempty,oneof=pending in_progress completed"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high"`
}

// UpdateTaskRequest is the request body for PUT /tasks/{id}.
// Updates are full-field replaces, so status and priority are required;
// an omitted description replaces the stored one with an empty string.
type UpdateTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"      validate:"required,oneof=pending in_progress completed"`
	Priority    string `json:"priority"    validate:"required,oneof=low medium high"`
}

// UserResponse is the client-facing view of a user. The password hash
// never appears here.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse is the payload returned by register and login.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// userToResponse converts a domain user to its client-facing view.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
