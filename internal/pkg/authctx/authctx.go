// Package authctx extracts the authenticated actor from JWT claims
// placed on the request context by the verification middleware.
package authctx

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/policy"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/user"
)

// ActorFromContext reads user_id, company_id and role from the verified
// token claims.
func ActorFromContext(ctx context.Context) (policy.Actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return policy.Actor{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return policy.Actor{}, fmt.Errorf("user_id not found in token")
	}
	companyID, ok := claims["company_id"].(string)
	if !ok {
		return policy.Actor{}, fmt.Errorf("company_id not found in token")
	}
	role, ok := claims["role"].(string)
	if !ok || !user.ValidRole(role) {
		return policy.Actor{}, fmt.Errorf("role not found in token")
	}

	return policy.Actor{
		UserID:    userID,
		CompanyID: companyID,
		Role:      user.Role(role),
	}, nil
}
