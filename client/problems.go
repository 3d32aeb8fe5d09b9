package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/leettrack/leettrack/types"
)

const problemsPath = "/api/problems"

// ProblemsClient manages the problems resource.
type ProblemsClient struct {
	c *Client
}

// List fetches the full collection, bypassing any response cache.
func (p *ProblemsClient) List(ctx context.Context) ([]types.Problem, error) {
	var problems []types.Problem
	if err := p.c.do(ctx, http.MethodGet, problemsPath, nil, &problems); err != nil {
		return nil, err
	}
	return problems, nil
}

// Get fetches one problem. A 404 yields (nil, nil), not an error.
func (p *ProblemsClient) Get(ctx context.Context, id string) (*types.Problem, error) {
	var problem types.Problem
	err := p.c.do(ctx, http.MethodGet, problemsPath+"/"+id, nil, &problem)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &problem, nil
}

// Create submits a new problem. Any id on the input is ignored; the
// returned problem carries the server-assigned one.
func (p *ProblemsClient) Create(ctx context.Context, problem types.Problem) (types.Problem, error) {
	problem.ID = ""
	var created types.Problem
	if err := p.c.do(ctx, http.MethodPost, problemsPath, problem, &created); err != nil {
		return types.Problem{}, err
	}
	return created, nil
}

// Update submits a partial update. The server is authoritative for the
// merge; the fully updated problem is returned. A 404 is a hard error.
func (p *ProblemsClient) Update(ctx context.Context, id string, patch types.ProblemUpdate) (types.Problem, error) {
	var updated types.Problem
	if err := p.c.do(ctx, http.MethodPut, problemsPath+"/"+id, patch, &updated); err != nil {
		return types.Problem{}, err
	}
	return updated, nil
}

// Delete removes a problem. Returns true on success and false on 404
// (already gone).
func (p *ProblemsClient) Delete(ctx context.Context, id string) (bool, error) {
	err := p.c.do(ctx, http.MethodDelete, problemsPath+"/"+id, nil, nil)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
