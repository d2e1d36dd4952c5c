package auth

import "context"

// AuthService defines authentication business logic.
type AuthService interface {
	// Register creates an employee account and returns a token.
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)

	// Login verifies credentials and, when a device id is supplied,
	// authorizes the device (idempotent, capped at the configured max).
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Me returns the authenticated user's profile.
	Me(ctx context.Context) (UserPayload, error)

	// Logout revokes the presented token.
	Logout(ctx context.Context, token string) error
}
