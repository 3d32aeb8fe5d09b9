package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leettrack/leettrack/client"
	"github.com/leettrack/leettrack/types"
)

type staticToken string

func (s staticToken) Token() (string, bool) { return string(s), true }

// problemServer is a minimal in-memory problems backend.
type problemServer struct {
	mu       sync.Mutex
	problems []types.Problem
	nextID   int
	deny401  bool
}

func (ps *problemServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/problems", func(w http.ResponseWriter, r *http.Request) {
		ps.mu.Lock()
		defer ps.mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(ps.problems)
		case http.MethodPost:
			var p types.Problem
			json.NewDecoder(r.Body).Decode(&p)
			ps.nextID++
			p.ID = fmt.Sprintf("srv-%d", ps.nextID)
			ps.problems = append(ps.problems, p)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(p)
		}
	})
	mux.HandleFunc("/api/problems/", func(w http.ResponseWriter, r *http.Request) {
		ps.mu.Lock()
		defer ps.mu.Unlock()
		id := strings.TrimPrefix(r.URL.Path, "/api/problems/")
		idx := -1
		for i, p := range ps.problems {
			if p.ID == id {
				idx = i
			}
		}
		switch r.Method {
		case http.MethodPut:
			if ps.deny401 {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			if idx < 0 {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]string{"error": "problem not found"})
				return
			}
			var patch types.ProblemUpdate
			json.NewDecoder(r.Body).Decode(&patch)
			if patch.Title != nil {
				ps.problems[idx].Title = *patch.Title
			}
			json.NewEncoder(w).Encode(ps.problems[idx])
		case http.MethodDelete:
			if idx < 0 {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			ps.problems = append(ps.problems[:idx], ps.problems[idx+1:]...)
			w.WriteHeader(http.StatusNoContent)
		case http.MethodGet:
			if idx < 0 {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			json.NewEncoder(w).Encode(ps.problems[idx])
		}
	})
	return mux
}

func TestUnauthorizedUpdateFiresCallbackOnceAndKeepsCollection(t *testing.T) {
	backend := &problemServer{problems: []types.Problem{
		{ID: "p1", Number: 1, Title: "Two Sum"},
	}}
	server := httptest.NewServer(backend.handler())
	defer server.Close()

	redirects := 0
	c := client.New(server.URL, staticToken("tok")).OnUnauthorized(func() { redirects++ })
	tr := ForProblems(c.Problems())
	require.NoError(t, tr.Refresh(context.Background()))
	before := tr.Items()

	backend.deny401 = true
	title := "renamed"
	_, err := tr.Update(context.Background(), "p1", types.ProblemUpdate{Title: &title})
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Equal(t, 1, redirects, "unauthorized callback fires exactly once per failing call")
	assert.Equal(t, before, tr.Items(), "local collection unchanged")
	assert.False(t, tr.Busy("p1"))
}

func TestDeleteOverHTTPIsIdempotentish(t *testing.T) {
	backend := &problemServer{problems: []types.Problem{
		{ID: "p1", Number: 1, Title: "Two Sum"},
	}}
	server := httptest.NewServer(backend.handler())
	defer server.Close()

	c := client.New(server.URL, staticToken("tok"))
	tr := ForProblems(c.Problems())
	require.NoError(t, tr.Refresh(context.Background()))

	ok, err := tr.Remove(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = tr.Remove(context.Background(), "p1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAddOverHTTPSurfacesServerAssignedID(t *testing.T) {
	backend := &problemServer{}
	server := httptest.NewServer(backend.handler())
	defer server.Close()

	c := client.New(server.URL, staticToken("tok"))
	tr := ForProblems(c.Problems())
	require.NoError(t, tr.Refresh(context.Background()))

	created, err := tr.Add(context.Background(), types.Problem{Number: 121, Title: "Best Time to Buy and Sell Stock"})
	require.NoError(t, err)
	assert.Equal(t, "srv-1", created.ID)

	items := tr.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "srv-1", items[0].ID)
}
