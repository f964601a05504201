package usecase

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

func newAuthFixture() (*AuthUseCase, *fakeUserRepo) {
	users := newFakeUserRepo()
	uc := NewAuthUseCase(users, testJWTSecret, 3600, "admin@truvamate.test")
	return uc, users
}

func TestLoginCreatesUserOnFirstVisit(t *testing.T) {
	uc, _ := newAuthFixture()

	result, err := uc.Login(context.Background(), "somchai@example.com")
	require.NoError(t, err)

	assert.Equal(t, "somchai@example.com", result.User.Email)
	assert.Equal(t, "somchai", result.User.Username)
	assert.Equal(t, "user", result.User.Role)
	assert.NotEmpty(t, result.Token)
}

func TestLoginReturnsExistingUser(t *testing.T) {
	uc, _ := newAuthFixture()
	ctx := context.Background()

	first, err := uc.Login(ctx, "somchai@example.com")
	require.NoError(t, err)
	second, err := uc.Login(ctx, "somchai@example.com")
	require.NoError(t, err)

	assert.Equal(t, first.User.ID, second.User.ID)
}

func TestLoginAdminRole(t *testing.T) {
	uc, _ := newAuthFixture()

	result, err := uc.Login(context.Background(), "Admin@Truvamate.Test")
	require.NoError(t, err)
	assert.Equal(t, "admin", result.User.Role)
}

func TestLoginTokenCarriesSubject(t *testing.T) {
	uc, _ := newAuthFixture()

	result, err := uc.Login(context.Background(), "somchai@example.com")
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims["sub"])
	assert.Equal(t, "somchai@example.com", claims["email"])
}

func TestMe(t *testing.T) {
	uc, _ := newAuthFixture()
	ctx := context.Background()

	result, err := uc.Login(ctx, "somchai@example.com")
	require.NoError(t, err)

	user, err := uc.Me(ctx, result.User.ID)
	require.NoError(t, err)
	assert.Equal(t, result.User.Email, user.Email)
}
