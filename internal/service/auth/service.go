package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ponto-digital/ponto-backend-go/internal/config"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/auth"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/company"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/user"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/authctx"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/jwt"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/validator"
)

type AuthServiceImpl struct {
	user.UserRepository
	company.CompanyRepository
	jwt.Service
	security config.SecurityConfig
}

func NewAuthService(userRepository user.UserRepository, companyRepository company.CompanyRepository, jwtService jwt.Service, security config.SecurityConfig) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:    userRepository,
		CompanyRepository: companyRepository,
		Service:           jwtService,
		security:          security,
	}
}

// Register implements auth.AuthService. Self-registration always creates
// an employee account; privileged roles are provisioned by hr or admin.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	companyData, err := a.CompanyRepository.GetByID(ctx, req.CompanyID)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if !companyData.IsActive {
		return auth.TokenResponse{}, company.ErrCompanyInactive
	}

	if _, err := a.UserRepository.GetByEmail(ctx, req.Email); err == nil {
		return auth.TokenResponse{}, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	cpf := validator.NormalizeCPF(req.CPF)
	if _, err := a.UserRepository.GetByCPF(ctx, cpf); err == nil {
		return auth.TokenResponse{}, user.ErrCPFExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to check cpf: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.security.BcryptCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.UserRepository.Create(ctx, user.User{
		CompanyID:    req.CompanyID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		CPF:          cpf,
		Role:         user.RoleEmployee,
		IsActive:     true,
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}
	created.CompanyName = &companyData.Name

	return a.tokenResponse(created)
}

// Login implements auth.AuthService. Supplying a device id authorizes it
// for clock actions, capped at the configured maximum.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !userData.IsActive {
		return auth.TokenResponse{}, user.ErrAccountDisabled
	}

	if req.DeviceID != nil && *req.DeviceID != "" {
		deviceName := ""
		if req.DeviceName != nil {
			deviceName = *req.DeviceName
		}
		device := user.AuthorizedDevice{
			DeviceID:     *req.DeviceID,
			DeviceName:   deviceName,
			AuthorizedAt: time.Now().UTC(),
		}
		if err := a.UserRepository.AddAuthorizedDevice(ctx, userData.ID, device, a.security.MaxDevices); err != nil {
			return auth.TokenResponse{}, err
		}
	}

	if err := a.UserRepository.UpdateLastLogin(ctx, userData.ID); err != nil {
		return auth.TokenResponse{}, err
	}

	if companyData, err := a.CompanyRepository.GetByID(ctx, userData.CompanyID); err == nil {
		userData.CompanyName = &companyData.Name
	}

	return a.tokenResponse(userData)
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (auth.UserPayload, error) {
	actor, err := authctx.ActorFromContext(ctx)
	if err != nil {
		return auth.UserPayload{}, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByID(ctx, actor.UserID)
	if err != nil {
		return auth.UserPayload{}, err
	}

	if companyData, err := a.CompanyRepository.GetByID(ctx, userData.CompanyID); err == nil {
		userData.CompanyName = &companyData.Name
	}

	return toUserPayload(userData), nil
}

// Logout implements auth.AuthService. Revocation is in-memory; restarting
// the process un-revokes, which token expiry bounds.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return auth.ErrTokenMissing
	}
	a.Service.RevokeToken(token)
	return nil
}

func (a *AuthServiceImpl) tokenResponse(userData user.User) (auth.TokenResponse, error) {
	token, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.CompanyID, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toUserPayload(userData),
	}, nil
}

func toUserPayload(u user.User) auth.UserPayload {
	return auth.UserPayload{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        string(u.Role),
		CompanyID:   u.CompanyID,
		CompanyName: u.CompanyName,
		Department:  u.Department,
		Position:    u.Position,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
	}
}
