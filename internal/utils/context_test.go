package utils

import (
	"context"
	"testing"

	"github.com/ebazar/auth-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPrincipalFromContext(t *testing.T) {
	principal := models.PublicUser{ID: "id-1", Email: "a@b.com", Role: models.RoleUser}
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, principal)

	got, ok := GetPrincipalFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, principal, got)
}

func TestGetPrincipalFromContext_Missing(t *testing.T) {
	_, ok := GetPrincipalFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetPrincipalFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, "not a user")
	_, ok := GetPrincipalFromContext(ctx)
	assert.False(t, ok)
}

func TestGetSessionTokenFromContext(t *testing.T) {
	token := models.Token{SignedString: "signed.jwt.token", UserID: "id-1"}
	ctx := context.WithValue(context.Background(), SessionTokenCtxKey, token)

	got, ok := GetSessionTokenFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, token.SignedString, got.SignedString)
}

func TestGetSessionTokenFromContext_Missing(t *testing.T) {
	_, ok := GetSessionTokenFromContext(context.Background())
	assert.False(t, ok)
}
