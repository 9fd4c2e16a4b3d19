package dto

import (
	"time"

	"github.com/spec-kit/constituent-office/internal/domain"
)

// RegisterRequest is the citizen self-registration payload.
type RegisterRequest struct {
	FullName    string      `json:"full_name"`
	PhoneNumber string      `json:"phone_number"`
	Password    string      `json:"password"`
	Area        domain.Area `json:"area"`
	Address     string      `json:"address"`
}

// LoginRequest payload.
type LoginRequest struct {
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// ChangePasswordRequest payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// CreateStaffRequest payload.
type CreateStaffRequest struct {
	FullName    string            `json:"full_name"`
	PhoneNumber string            `json:"phone_number"`
	Password    string            `json:"password"`
	Scope       []domain.Category `json:"scope"`
}

// RescopeStaffRequest payload.
type RescopeStaffRequest struct {
	Scope []domain.Category `json:"scope"`
}

// ActorResponse is the public view of an account.
type ActorResponse struct {
	ID          string            `json:"id"`
	FullName    string            `json:"full_name"`
	PhoneNumber string            `json:"phone_number"`
	Role        domain.Role       `json:"role"`
	Scope       []domain.Category `json:"scope,omitempty"`
	Area        domain.Area       `json:"area,omitempty"`
	Address     string            `json:"address,omitempty"`
	Active      bool              `json:"active"`
	CreatedAt   time.Time         `json:"created_at"`
}

// SessionResponse carries the token issued at login or registration.
type SessionResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	Actor     ActorResponse `json:"actor"`
}
