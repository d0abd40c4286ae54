package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcuspath/backend/internal/repository"
	"github.com/arcuspath/backend/model"
)

func authFixture(t *testing.T) *AuthService {
	t.Helper()
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	users := repository.NewMemoryUserRepo([]model.User{
		{ID: "user-1", Email: "sam@example.com", PasswordHash: hash, Role: model.RoleMember},
	})
	return NewAuthService(users, "test-secret")
}

func TestLoginIssuesToken(t *testing.T) {
	svc := authFixture(t)

	token, u, err := svc.Login(context.Background(), "sam@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.ID)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "user-1", claims["sub"])
	assert.Equal(t, "member", claims["role"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := authFixture(t)
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "sam@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, _, err = svc.Login(ctx, "nobody@example.com", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredential, "unknown emails fail the same way as bad passwords")
}
