package services

import (
	"context"

	"github.com/leettrack/leettrack/types"
)

// CheatSheetRepository defines persistence operations for cheatsheets.
type CheatSheetRepository interface {
	List(ctx context.Context, ownerID string) ([]types.CheatSheet, error)
	Get(ctx context.Context, ownerID, id string) (types.CheatSheet, error)
	Create(ctx context.Context, ownerID string, sheet types.CheatSheet) (types.CheatSheet, error)
	Update(ctx context.Context, ownerID string, sheet types.CheatSheet) (types.CheatSheet, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// CheatSheetService encapsulates cheatsheet use-cases.
type CheatSheetService struct {
	repo CheatSheetRepository
}

func NewCheatSheetService(repo CheatSheetRepository) *CheatSheetService {
	return &CheatSheetService{repo: repo}
}

func (s *CheatSheetService) List(ctx context.Context, ownerID string) ([]types.CheatSheet, error) {
	return s.repo.List(ctx, ownerID)
}

func (s *CheatSheetService) Get(ctx context.Context, ownerID, id string) (types.CheatSheet, error) {
	return s.repo.Get(ctx, ownerID, id)
}

func (s *CheatSheetService) Create(ctx context.Context, ownerID string, sheet types.CheatSheet) (types.CheatSheet, error) {
	return s.repo.Create(ctx, ownerID, sheet)
}

// Update merges a partial update into the stored cheatsheet. A patch
// carrying only the favourite flag goes through here too, which is how
// the toggle skips full edit validation.
func (s *CheatSheetService) Update(ctx context.Context, ownerID, id string, patch types.CheatSheetUpdate) (types.CheatSheet, error) {
	sheet, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return types.CheatSheet{}, err
	}

	if patch.Title != nil {
		sheet.Title = *patch.Title
	}
	if patch.Type != nil {
		sheet.Type = *patch.Type
	}
	if patch.Content != nil {
		sheet.Content = *patch.Content
	}
	if patch.Favourite != nil {
		sheet.Favourite = *patch.Favourite
	}

	return s.repo.Update(ctx, ownerID, sheet)
}

func (s *CheatSheetService) Delete(ctx context.Context, ownerID, id string) error {
	return s.repo.Delete(ctx, ownerID, id)
}
