package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/leettrack/leettrack/types"
)

// CheatSheetRepository handles persistence for cheatsheets.
type CheatSheetRepository struct {
	db *sql.DB
}

func NewCheatSheetRepository(db *sql.DB) *CheatSheetRepository {
	return &CheatSheetRepository{db: db}
}

func (r *CheatSheetRepository) List(ctx context.Context, ownerID string) ([]types.CheatSheet, error) {
	const query = `
		SELECT id, title, type, content, favourite
		FROM cheatsheets
		WHERE owner_id = $1
		ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sheets := make([]types.CheatSheet, 0)
	for rows.Next() {
		var sheet types.CheatSheet
		if err := rows.Scan(
			&sheet.ID,
			&sheet.Title,
			&sheet.Type,
			&sheet.Content,
			&sheet.Favourite,
		); err != nil {
			return nil, err
		}
		sheets = append(sheets, sheet)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sheets, nil
}

func (r *CheatSheetRepository) Get(ctx context.Context, ownerID, id string) (types.CheatSheet, error) {
	const query = `
		SELECT id, title, type, content, favourite
		FROM cheatsheets
		WHERE owner_id = $1 AND id = $2`
	var sheet types.CheatSheet
	err := r.db.QueryRowContext(ctx, query, ownerID, id).Scan(
		&sheet.ID,
		&sheet.Title,
		&sheet.Type,
		&sheet.Content,
		&sheet.Favourite,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.CheatSheet{}, ErrNotFound
		}
		return types.CheatSheet{}, err
	}
	return sheet, nil
}

func (r *CheatSheetRepository) Create(ctx context.Context, ownerID string, sheet types.CheatSheet) (types.CheatSheet, error) {
	now := time.Now()
	sheet.ID = uuid.NewString()

	const query = `
		INSERT INTO cheatsheets (id, owner_id, title, type, content, favourite, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := r.db.ExecContext(
		ctx,
		query,
		sheet.ID,
		ownerID,
		sheet.Title,
		sheet.Type,
		sheet.Content,
		sheet.Favourite,
		now,
		now,
	); err != nil {
		return types.CheatSheet{}, err
	}

	return sheet, nil
}

func (r *CheatSheetRepository) Update(ctx context.Context, ownerID string, sheet types.CheatSheet) (types.CheatSheet, error) {
	const query = `
		UPDATE cheatsheets
		SET title = $1,
			type = $2,
			content = $3,
			favourite = $4,
			updated_at = $5
		WHERE owner_id = $6 AND id = $7`
	result, err := r.db.ExecContext(
		ctx,
		query,
		sheet.Title,
		sheet.Type,
		sheet.Content,
		sheet.Favourite,
		time.Now(),
		ownerID,
		sheet.ID,
	)
	if err != nil {
		return types.CheatSheet{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.CheatSheet{}, err
	}
	if affected == 0 {
		return types.CheatSheet{}, ErrNotFound
	}

	return sheet, nil
}

func (r *CheatSheetRepository) Delete(ctx context.Context, ownerID, id string) error {
	const query = `DELETE FROM cheatsheets WHERE owner_id = $1 AND id = $2`
	result, err := r.db.ExecContext(ctx, query, ownerID, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
