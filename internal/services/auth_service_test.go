package services

import (
	"context"
	"strings"
	"testing"

	"streamhub-backend/internal/auth"
	"streamhub-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) *AuthService {
	db := newTestDB(t)
	users := repository.NewUserRepository(db, testTimeout)
	admins := repository.NewAdminRepository(db, testTimeout)
	tokens := auth.NewTokenManager("test-secret")
	return NewAuthService(users, admins, tokens, newTestLogger())
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Username:     "alice",
		Email:        "alice@example.com",
		Password:     "secret1",
		PasswordConf: "secret1",
	}
}

func TestRegisterUser(t *testing.T) {
	service := newAuthFixture(t)

	user, token, violations, err := service.RegisterUser(context.Background(), validRegisterInput())
	require.NoError(t, err)
	require.True(t, violations.Empty())

	assert.NotEmpty(t, token)
	assert.True(t, strings.HasPrefix(user.Avatar, "data:image/png;base64,"))

	// The stored password is a hash, never the plaintext.
	assert.NotEqual(t, "secret1", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret1")))
}

func TestRegisterUserDuplicateEmailCollected(t *testing.T) {
	service := newAuthFixture(t)
	ctx := context.Background()

	_, _, _, err := service.RegisterUser(ctx, validRegisterInput())
	require.NoError(t, err)

	// Duplicate email and password mismatch are reported together.
	input := validRegisterInput()
	input.PasswordConf = "different"
	_, _, violations, err := service.RegisterUser(ctx, input)
	require.NoError(t, err)
	require.Len(t, violations, 2)

	params := []string{violations[0].Param, violations[1].Param}
	assert.Contains(t, params, "password_conf")
	assert.Contains(t, params, "email")
}

func TestLoginUser(t *testing.T) {
	service := newAuthFixture(t)
	ctx := context.Background()

	registered, _, _, err := service.RegisterUser(ctx, validRegisterInput())
	require.NoError(t, err)

	user, token, violations, err := service.LoginUser(ctx, LoginInput{
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.True(t, violations.Empty())
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	service := newAuthFixture(t)
	ctx := context.Background()

	_, _, _, err := service.RegisterUser(ctx, validRegisterInput())
	require.NoError(t, err)

	_, _, _, wrongPassword := service.LoginUser(ctx, LoginInput{
		Email:    "alice@example.com",
		Password: "nope123",
	})
	_, _, _, unknownAccount := service.LoginUser(ctx, LoginInput{
		Email:    "bob@example.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, wrongPassword, ErrWrongCredentials)
	assert.ErrorIs(t, unknownAccount, ErrWrongCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownAccount.Error())
}

func TestAdminAccountsSeparateFromUsers(t *testing.T) {
	service := newAuthFixture(t)
	ctx := context.Background()

	_, _, violations, err := service.RegisterAdmin(ctx, validRegisterInput())
	require.NoError(t, err)
	require.True(t, violations.Empty())

	// Same email is free in the user space; the account stores never
	// overlap.
	_, _, violations, err = service.RegisterUser(ctx, validRegisterInput())
	require.NoError(t, err)
	assert.True(t, violations.Empty())

	// Admin credentials do not work as a user login.
	_, _, _, err = service.LoginAdmin(ctx, LoginInput{Email: "alice@example.com", Password: "secret1"})
	assert.NoError(t, err)
}

func TestTokenCarriesIdentity(t *testing.T) {
	db := newTestDB(t)
	users := repository.NewUserRepository(db, testTimeout)
	admins := repository.NewAdminRepository(db, testTimeout)
	tokens := auth.NewTokenManager("test-secret")
	service := NewAuthService(users, admins, tokens, newTestLogger())

	user, token, _, err := service.RegisterUser(context.Background(), validRegisterInput())
	require.NoError(t, err)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.False(t, claims.IsSubscribed)
}
