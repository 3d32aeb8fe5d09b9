package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leettrack/leettrack/internal/store"
	"github.com/leettrack/leettrack/types"
)

type fakeSheetRepo struct {
	sheets map[string]types.CheatSheet
}

func newFakeSheetRepo() *fakeSheetRepo {
	return &fakeSheetRepo{sheets: map[string]types.CheatSheet{}}
}

func (r *fakeSheetRepo) List(_ context.Context, _ string) ([]types.CheatSheet, error) {
	out := make([]types.CheatSheet, 0, len(r.sheets))
	for _, s := range r.sheets {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSheetRepo) Get(_ context.Context, _ string, id string) (types.CheatSheet, error) {
	s, ok := r.sheets[id]
	if !ok {
		return types.CheatSheet{}, store.ErrNotFound
	}
	return s, nil
}

func (r *fakeSheetRepo) Create(_ context.Context, _ string, sheet types.CheatSheet) (types.CheatSheet, error) {
	sheet.ID = uuid.NewString()
	r.sheets[sheet.ID] = sheet
	return sheet, nil
}

func (r *fakeSheetRepo) Update(_ context.Context, _ string, sheet types.CheatSheet) (types.CheatSheet, error) {
	if _, ok := r.sheets[sheet.ID]; !ok {
		return types.CheatSheet{}, store.ErrNotFound
	}
	r.sheets[sheet.ID] = sheet
	return sheet, nil
}

func (r *fakeSheetRepo) Delete(_ context.Context, _ string, id string) error {
	if _, ok := r.sheets[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.sheets, id)
	return nil
}

func TestFavouriteOnlyPatchPreservesContent(t *testing.T) {
	svc := NewCheatSheetService(newFakeSheetRepo())

	created, err := svc.Create(context.Background(), "owner", types.CheatSheet{
		Title:   "Sliding window",
		Type:    types.CheatSheetNote,
		Content: "expand right, shrink left",
	})
	require.NoError(t, err)
	require.False(t, created.Favourite)

	fav := true
	updated, err := svc.Update(context.Background(), "owner", created.ID, types.CheatSheetUpdate{
		Favourite: &fav,
	})
	require.NoError(t, err)

	assert.True(t, updated.Favourite)
	assert.Equal(t, "Sliding window", updated.Title)
	assert.Equal(t, "expand right, shrink left", updated.Content)
}

func TestSheetUpdateMissing(t *testing.T) {
	svc := NewCheatSheetService(newFakeSheetRepo())

	fav := true
	_, err := svc.Update(context.Background(), "owner", "missing", types.CheatSheetUpdate{Favourite: &fav})
	assert.ErrorIs(t, err, store.ErrNotFound)
}
