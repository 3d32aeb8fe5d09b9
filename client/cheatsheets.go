package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/leettrack/leettrack/types"
)

const cheatsheetsPath = "/api/cheatsheets"

// CheatSheetsClient manages the cheatsheets resource.
type CheatSheetsClient struct {
	c *Client
}

// List fetches the full collection, bypassing any response cache.
func (cs *CheatSheetsClient) List(ctx context.Context) ([]types.CheatSheet, error) {
	var sheets []types.CheatSheet
	if err := cs.c.do(ctx, http.MethodGet, cheatsheetsPath, nil, &sheets); err != nil {
		return nil, err
	}
	return sheets, nil
}

// Get fetches one cheatsheet. A 404 yields (nil, nil), not an error.
func (cs *CheatSheetsClient) Get(ctx context.Context, id string) (*types.CheatSheet, error) {
	var sheet types.CheatSheet
	err := cs.c.do(ctx, http.MethodGet, cheatsheetsPath+"/"+id, nil, &sheet)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sheet, nil
}

// Create submits a new cheatsheet. Any id on the input is ignored.
func (cs *CheatSheetsClient) Create(ctx context.Context, sheet types.CheatSheet) (types.CheatSheet, error) {
	sheet.ID = ""
	var created types.CheatSheet
	if err := cs.c.do(ctx, http.MethodPost, cheatsheetsPath, sheet, &created); err != nil {
		return types.CheatSheet{}, err
	}
	return created, nil
}

// Update submits a partial update and returns the server's merge.
func (cs *CheatSheetsClient) Update(ctx context.Context, id string, patch types.CheatSheetUpdate) (types.CheatSheet, error) {
	var updated types.CheatSheet
	if err := cs.c.do(ctx, http.MethodPut, cheatsheetsPath+"/"+id, patch, &updated); err != nil {
		return types.CheatSheet{}, err
	}
	return updated, nil
}

// Delete removes a cheatsheet. Returns true on success and false on
// 404 (already gone).
func (cs *CheatSheetsClient) Delete(ctx context.Context, id string) (bool, error) {
	err := cs.c.do(ctx, http.MethodDelete, cheatsheetsPath+"/"+id, nil, nil)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ToggleFavourite flips the favourite flag by itself, without going
// through full edit validation.
func (cs *CheatSheetsClient) ToggleFavourite(ctx context.Context, sheet types.CheatSheet) (types.CheatSheet, error) {
	favourite := !sheet.Favourite
	return cs.Update(ctx, sheet.ID, types.CheatSheetUpdate{Favourite: &favourite})
}
