package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/leettrack/leettrack/internal/services"
	"github.com/leettrack/leettrack/internal/store"
	"github.com/leettrack/leettrack/types"
)

const testSecret = "test-secret"

type fakeUserRepo struct {
	users       map[string]types.User
	resetTokens map[string]string // token -> user id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:       map[string]types.User{},
		resetTokens: map[string]string{},
	}
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (types.User, error) {
	user, ok := r.users[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (types.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user types.User) (types.User, error) {
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user types.User) (types.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return types.User{}, store.ErrNotFound
	}
	user.UpdatedAt = time.Now()
	r.users[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) SetResetToken(_ context.Context, userID, token string, _ time.Time) error {
	r.resetTokens[token] = userID
	return nil
}

func (r *fakeUserRepo) GetByResetToken(_ context.Context, token string) (types.User, error) {
	userID, ok := r.resetTokens[token]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return r.GetByID(context.Background(), userID)
}

func (r *fakeUserRepo) ClearResetToken(_ context.Context, userID string) error {
	for token, id := range r.resetTokens {
		if id == userID {
			delete(r.resetTokens, token)
		}
	}
	return nil
}

type fakeProblemRepo struct {
	problems map[string]types.Problem
	owners   map[string]string
}

func newFakeProblemRepo() *fakeProblemRepo {
	return &fakeProblemRepo{
		problems: map[string]types.Problem{},
		owners:   map[string]string{},
	}
}

func (r *fakeProblemRepo) List(_ context.Context, ownerID string) ([]types.Problem, error) {
	out := []types.Problem{}
	for id, p := range r.problems {
		if r.owners[id] == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProblemRepo) Get(_ context.Context, ownerID, id string) (types.Problem, error) {
	p, ok := r.problems[id]
	if !ok || r.owners[id] != ownerID {
		return types.Problem{}, store.ErrNotFound
	}
	return p, nil
}

func (r *fakeProblemRepo) Create(_ context.Context, ownerID string, problem types.Problem) (types.Problem, error) {
	for id, existing := range r.problems {
		if r.owners[id] == ownerID && existing.Number == problem.Number {
			return types.Problem{}, store.ErrDuplicateNumber
		}
	}
	problem.ID = uuid.NewString()
	r.problems[problem.ID] = problem
	r.owners[problem.ID] = ownerID
	return problem, nil
}

func (r *fakeProblemRepo) Update(_ context.Context, ownerID string, problem types.Problem) (types.Problem, error) {
	if _, ok := r.problems[problem.ID]; !ok || r.owners[problem.ID] != ownerID {
		return types.Problem{}, store.ErrNotFound
	}
	r.problems[problem.ID] = problem
	return problem, nil
}

func (r *fakeProblemRepo) Delete(_ context.Context, ownerID, id string) error {
	if _, ok := r.problems[id]; !ok || r.owners[id] != ownerID {
		return store.ErrNotFound
	}
	delete(r.problems, id)
	delete(r.owners, id)
	return nil
}

type testEnv struct {
	router   *chi.Mux
	userRepo *fakeUserRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	userRepo := newFakeUserRepo()
	problemRepo := newFakeProblemRepo()

	userService := services.NewUserService(userRepo)
	problemService := services.NewProblemService(problemRepo)

	router := chi.NewRouter()
	router.Route("/api/auth", func(r chi.Router) {
		AuthRouter(r, userService, nil, testSecret)
	})
	router.Route("/api/problems", func(r chi.Router) {
		ProblemRouter(r, problemService, RequireAuth(testSecret))
	})

	return &testEnv{router: router, userRepo: userRepo}
}

// seedUser creates an account directly and returns a valid token for it.
func (e *testEnv) seedUser(t *testing.T, email, password string) (types.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user, err := e.userRepo.Create(context.Background(), types.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hashed),
	})
	require.NoError(t, err)

	token, err := issueToken(user.ID, []byte(testSecret), time.Hour)
	require.NoError(t, err)
	return user, token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}
