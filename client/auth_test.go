package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leettrack/leettrack/session"
	"github.com/leettrack/leettrack/types"
)

func authTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(authResponse{
			Token: "tok-login",
			User:  types.User{ID: "u1", Name: "Ada", Email: body["email"]},
		})
	})
	mux.HandleFunc("PUT /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(types.User{ID: "u1", Name: "Ada Lovelace", Email: "ada@example.com"})
	})
	mux.HandleFunc("DELETE /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return httptest.NewServer(mux)
}

func TestSignInSavesSession(t *testing.T) {
	server := authTestServer(t)
	defer server.Close()

	sessions, err := session.New(t.TempDir())
	require.NoError(t, err)

	auth := New(server.URL, sessions).Auth(sessions)
	user, err := auth.SignIn(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	token, ok := sessions.Token()
	require.True(t, ok)
	assert.Equal(t, "tok-login", token)

	stored, ok := sessions.User()
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", stored.Email)
}

func TestSignInFailureLeavesSessionEmpty(t *testing.T) {
	server := authTestServer(t)
	defer server.Close()

	sessions, err := session.New(t.TempDir())
	require.NoError(t, err)

	auth := New(server.URL, sessions).Auth(sessions)
	_, err = auth.SignIn(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, ok := sessions.Token()
	assert.False(t, ok)
}

func TestUpdateProfileRefreshesStoredUser(t *testing.T) {
	server := authTestServer(t)
	defer server.Close()

	sessions, err := session.New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, sessions.Save("tok", types.User{ID: "u1", Name: "Ada"}))

	auth := New(server.URL, sessions).Auth(sessions)
	name := "Ada Lovelace"
	user, err := auth.UpdateProfile(context.Background(), ProfileUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", user.Name)

	stored, ok := sessions.User()
	require.True(t, ok)
	assert.Equal(t, "Ada Lovelace", stored.Name)

	// Token survives to the same expiry as the refreshed user.
	token, ok := sessions.Token()
	require.True(t, ok)
	assert.Equal(t, "tok", token)
}

func TestDeleteAccountClearsSession(t *testing.T) {
	server := authTestServer(t)
	defer server.Close()

	sessions, err := session.New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, sessions.Save("tok", types.User{ID: "u1"}))

	auth := New(server.URL, sessions).Auth(sessions)
	require.NoError(t, auth.DeleteAccount(context.Background(), "secret"))

	_, ok := sessions.Token()
	assert.False(t, ok)
	_, ok = sessions.User()
	assert.False(t, ok)
}
