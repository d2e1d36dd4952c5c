package authctx

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/user"
)

func contextWithClaims(t *testing.T, claims map[string]interface{}) context.Context {
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	claims["exp"] = time.Now().Add(time.Hour).Unix()
	token, _, err := tokenAuth.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestActorFromContext(t *testing.T) {
	ctx := contextWithClaims(t, map[string]interface{}{
		"user_id":    "u1",
		"company_id": "c1",
		"role":       "manager",
		"type":       "access",
	})

	actor, err := ActorFromContext(ctx)
	require.NoError(t, err)

	assert.Equal(t, "u1", actor.UserID)
	assert.Equal(t, "c1", actor.CompanyID)
	assert.Equal(t, user.RoleManager, actor.Role)
}

func TestActorFromContext_MissingClaims(t *testing.T) {
	ctx := contextWithClaims(t, map[string]interface{}{
		"company_id": "c1",
		"role":       "employee",
	})

	_, err := ActorFromContext(ctx)
	assert.Error(t, err)
}

func TestActorFromContext_UnknownRole(t *testing.T) {
	ctx := contextWithClaims(t, map[string]interface{}{
		"user_id":    "u1",
		"company_id": "c1",
		"role":       "superuser",
	})

	_, err := ActorFromContext(ctx)
	assert.Error(t, err)
}

func TestActorFromContext_NoToken(t *testing.T) {
	_, err := ActorFromContext(context.Background())
	assert.Error(t, err)
}
