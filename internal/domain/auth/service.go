package auth

import (
	"context"
)

// AuthService defines the signup and token issuance glue around the core.
type AuthService interface {
	// Signup registers a new user with a bcrypt-hashed credential.
	Signup(ctx context.Context, req SignupRequest) (UserResponse, error)

	// Login verifies credentials and issues access/refresh tokens.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, req RefreshTokenRequest) (TokenResponse, error)
}
