package users

import (
	"github.com/google/uuid"
	"github.com/staffhubhq/staffhub-backend/pkg/enums"
)

// SignupSuperAdminInput carries the bootstrap credentials.
type SignupSuperAdminInput struct {
	Email       string
	Password    string
	DisplayName string
}

// LoginInput carries the credentials exchanged for tokens.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshInput carries the expired-or-live access token plus its refresh pair.
type RefreshInput struct {
	AccessToken  string
	RefreshToken string
}

// UserResult is the public projection of a user row.
type UserResult struct {
	UID         uuid.UUID      `json:"uid"`
	Email       string         `json:"email"`
	DisplayName string         `json:"displayName"`
	Role        enums.UserRole `json:"role"`
}

// AuthResult is returned by login and refresh.
type AuthResult struct {
	UID          uuid.UUID      `json:"uid"`
	Role         enums.UserRole `json:"role"`
	Token        string         `json:"token"`
	RefreshToken string         `json:"refreshToken"`
}
