package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leettrack/leettrack/types"
)

func TestSignUpIssuesToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/auth/signup", "", SignUpRequest{
		Name:            "Ada",
		Email:           "ada@example.com",
		Password:        "longenough",
		ConfirmPassword: "longenough",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeBody[AuthResponse](t, rec)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.User.ID)

	// The issued token must pass the auth middleware.
	me := env.request(t, http.MethodGet, "/api/auth/me", resp.Token, nil)
	assert.Equal(t, http.StatusOK, me.Code)
}

func TestSignUpRejectsShortPassword(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/auth/signup", "", SignUpRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "short",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "ada@example.com", "longenough")

	rec := env.request(t, http.MethodPost, "/api/auth/signup", "", SignUpRequest{
		Name:     "Other Ada",
		Email:    "ada@example.com",
		Password: "longenough",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "ada@example.com", "longenough")

	rec := env.request(t, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email:    "ada@example.com",
		Password: "longenough",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decodeBody[AuthResponse](t, rec).Token)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "ada@example.com", "longenough")

	rec := env.request(t, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email:    "ada@example.com",
		Password: "wrongpassword",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid credentials", decodeBody[ErrorResponse](t, rec).Error)
}

func TestUpdateProfileRequiresCurrentPassword(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "ada@example.com", "longenough")

	email := "new@example.com"
	rec := env.request(t, http.MethodPut, "/api/auth/me", token, ProfileUpdateRequest{
		Email: &email,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProfileName(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "ada@example.com", "longenough")

	name := "Ada Lovelace"
	rec := env.request(t, http.MethodPut, "/api/auth/me", token, ProfileUpdateRequest{
		Name: &name,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ada Lovelace", decodeBody[types.User](t, rec).Name)
}

func TestDeleteAccountChecksPassword(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.seedUser(t, "ada@example.com", "longenough")

	rec := env.request(t, http.MethodDelete, "/api/auth/me", token, DeleteAccountRequest{
		Password: "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.request(t, http.MethodDelete, "/api/auth/me", token, DeleteAccountRequest{
		Password: "longenough",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, env.userRepo.users, user.ID)
}

func TestForgotPasswordDoesNotRevealAccounts(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "ada@example.com", "longenough")

	known := env.request(t, http.MethodPost, "/api/auth/forgot-password", "", ForgotPasswordRequest{
		Email: "ada@example.com",
	})
	unknown := env.request(t, http.MethodPost, "/api/auth/forgot-password", "", ForgotPasswordRequest{
		Email: "nobody@example.com",
	})

	assert.Equal(t, http.StatusOK, known.Code)
	assert.Equal(t, http.StatusOK, unknown.Code)
	assert.Len(t, env.userRepo.resetTokens, 1)
}

func TestResetPasswordFlow(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "ada@example.com", "longenough")

	rec := env.request(t, http.MethodPost, "/api/auth/forgot-password", "", ForgotPasswordRequest{
		Email: "ada@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, env.userRepo.resetTokens, 1)

	var token string
	for tok := range env.userRepo.resetTokens {
		token = tok
	}

	rec = env.request(t, http.MethodPost, "/api/auth/reset-password", "", ResetPasswordRequest{
		Token:    token,
		Password: "brandnewpass",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, env.userRepo.resetTokens)

	login := env.request(t, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email:    "ada@example.com",
		Password: "brandnewpass",
	})
	assert.Equal(t, http.StatusOK, login.Code)
}

func TestResetPasswordRejectsUnknownToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/auth/reset-password", "", ResetPasswordRequest{
		Token:    "bogus",
		Password: "brandnewpass",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
