package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenMissing       = errors.New("access token required")
	ErrTokenRevoked       = errors.New("token revoked")
)
