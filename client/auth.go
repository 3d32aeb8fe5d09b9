package client

import (
	"context"
	"net/http"

	"github.com/leettrack/leettrack/session"
	"github.com/leettrack/leettrack/types"
)

const authPath = "/api/auth"

// AuthClient covers the auth surface and keeps the session store in
// step with it: sign-in and sign-up persist the session, profile
// updates refresh the stored user, account deletion clears it.
type AuthClient struct {
	c        *Client
	sessions *session.Store
}

// Auth returns the auth client bound to the given session store.
func (c *Client) Auth(sessions *session.Store) *AuthClient {
	return &AuthClient{c: c, sessions: sessions}
}

// SignUpData is the sign-up form payload.
type SignUpData struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ProfileUpdate is a partial profile edit. Changing the email or
// password requires CurrentPassword.
type ProfileUpdate struct {
	Name            *string `json:"name,omitempty"`
	Email           *string `json:"email,omitempty"`
	CurrentPassword *string `json:"currentPassword,omitempty"`
	NewPassword     *string `json:"newPassword,omitempty"`
}

type authResponse struct {
	Token string     `json:"token"`
	User  types.User `json:"user"`
}

// SignIn authenticates with email and password and saves the session.
func (a *AuthClient) SignIn(ctx context.Context, email, password string) (types.User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := a.c.do(ctx, http.MethodPost, authPath+"/login", body, &resp); err != nil {
		return types.User{}, err
	}
	if err := a.sessions.Save(resp.Token, resp.User); err != nil {
		return types.User{}, err
	}
	return resp.User, nil
}

// SignUp creates an account and saves the session.
func (a *AuthClient) SignUp(ctx context.Context, data SignUpData) (types.User, error) {
	var resp authResponse
	if err := a.c.do(ctx, http.MethodPost, authPath+"/signup", data, &resp); err != nil {
		return types.User{}, err
	}
	if err := a.sessions.Save(resp.Token, resp.User); err != nil {
		return types.User{}, err
	}
	return resp.User, nil
}

// Me fetches the current authenticated user from the backend.
func (a *AuthClient) Me(ctx context.Context) (types.User, error) {
	var user types.User
	if err := a.c.do(ctx, http.MethodGet, authPath+"/me", nil, &user); err != nil {
		return types.User{}, err
	}
	return user, nil
}

// UpdateProfile edits name/email/password and refreshes the stored
// user. Token and user always share one expiry, so both are rewritten.
func (a *AuthClient) UpdateProfile(ctx context.Context, data ProfileUpdate) (types.User, error) {
	var user types.User
	if err := a.c.do(ctx, http.MethodPut, authPath+"/me", data, &user); err != nil {
		return types.User{}, err
	}
	if token, ok := a.sessions.Token(); ok {
		if err := a.sessions.Save(token, user); err != nil {
			return types.User{}, err
		}
	}
	return user, nil
}

// DeleteAccount removes the account after password confirmation and
// clears the local session.
func (a *AuthClient) DeleteAccount(ctx context.Context, password string) error {
	body := map[string]string{"password": password}
	if err := a.c.do(ctx, http.MethodDelete, authPath+"/me", body, nil); err != nil {
		return err
	}
	a.sessions.Clear()
	return nil
}

// ForgotPassword requests an out-of-band reset link for email.
func (a *AuthClient) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return a.c.do(ctx, http.MethodPost, authPath+"/forgot-password", body, nil)
}

// ResetPassword redeems a reset token for a new password.
func (a *AuthClient) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "password": newPassword}
	return a.c.do(ctx, http.MethodPost, authPath+"/reset-password", body, nil)
}

// SignOut clears the local session.
func (a *AuthClient) SignOut() {
	a.sessions.Clear()
}
