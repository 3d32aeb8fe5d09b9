package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/leettrack/leettrack/types"
)

const uniqueViolation = "23505"

// ProblemRepository handles persistence for problems.
type ProblemRepository struct {
	db *sql.DB
}

func NewProblemRepository(db *sql.DB) *ProblemRepository {
	return &ProblemRepository{db: db}
}

func (r *ProblemRepository) List(ctx context.Context, ownerID string) ([]types.Problem, error) {
	const query = `
		SELECT id, number, title, link, difficulty, status, tags, date_solved, approaches, notes
		FROM problems
		WHERE owner_id = $1
		ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	problems := make([]types.Problem, 0)
	for rows.Next() {
		var problem types.Problem
		var tagsJSON, approachesJSON []byte
		if err := rows.Scan(
			&problem.ID,
			&problem.Number,
			&problem.Title,
			&problem.Link,
			&problem.Difficulty,
			&problem.Status,
			&tagsJSON,
			&problem.DateSolved,
			&approachesJSON,
			&problem.Notes,
		); err != nil {
			return nil, err
		}

		_ = json.Unmarshal(tagsJSON, &problem.Tags)
		_ = json.Unmarshal(approachesJSON, &problem.Approaches)
		ensureProblemSlices(&problem)
		problems = append(problems, problem)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return problems, nil
}

func (r *ProblemRepository) Get(ctx context.Context, ownerID, id string) (types.Problem, error) {
	const query = `
		SELECT id, number, title, link, difficulty, status, tags, date_solved, approaches, notes
		FROM problems
		WHERE owner_id = $1 AND id = $2`
	var problem types.Problem
	var tagsJSON, approachesJSON []byte
	err := r.db.QueryRowContext(ctx, query, ownerID, id).Scan(
		&problem.ID,
		&problem.Number,
		&problem.Title,
		&problem.Link,
		&problem.Difficulty,
		&problem.Status,
		&tagsJSON,
		&problem.DateSolved,
		&approachesJSON,
		&problem.Notes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Problem{}, ErrNotFound
		}
		return types.Problem{}, err
	}

	_ = json.Unmarshal(tagsJSON, &problem.Tags)
	_ = json.Unmarshal(approachesJSON, &problem.Approaches)
	ensureProblemSlices(&problem)
	return problem, nil
}

func (r *ProblemRepository) Create(ctx context.Context, ownerID string, problem types.Problem) (types.Problem, error) {
	now := time.Now()
	problem.ID = uuid.NewString()

	tagsJSON, err := json.Marshal(problem.Tags)
	if err != nil {
		return types.Problem{}, err
	}
	approachesJSON, err := json.Marshal(problem.Approaches)
	if err != nil {
		return types.Problem{}, err
	}

	const query = `
		INSERT INTO problems (id, owner_id, number, title, link, difficulty, status, tags, date_solved, approaches, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	if _, err := r.db.ExecContext(
		ctx,
		query,
		problem.ID,
		ownerID,
		problem.Number,
		problem.Title,
		problem.Link,
		problem.Difficulty,
		problem.Status,
		tagsJSON,
		problem.DateSolved,
		approachesJSON,
		problem.Notes,
		now,
		now,
	); err != nil {
		return types.Problem{}, mapProblemError(err)
	}

	return problem, nil
}

func (r *ProblemRepository) Update(ctx context.Context, ownerID string, problem types.Problem) (types.Problem, error) {
	tagsJSON, err := json.Marshal(problem.Tags)
	if err != nil {
		return types.Problem{}, err
	}
	approachesJSON, err := json.Marshal(problem.Approaches)
	if err != nil {
		return types.Problem{}, err
	}

	const query = `
		UPDATE problems
		SET number = $1,
			title = $2,
			link = $3,
			difficulty = $4,
			status = $5,
			tags = $6,
			date_solved = $7,
			approaches = $8,
			notes = $9,
			updated_at = $10
		WHERE owner_id = $11 AND id = $12`
	result, err := r.db.ExecContext(
		ctx,
		query,
		problem.Number,
		problem.Title,
		problem.Link,
		problem.Difficulty,
		problem.Status,
		tagsJSON,
		problem.DateSolved,
		approachesJSON,
		problem.Notes,
		time.Now(),
		ownerID,
		problem.ID,
	)
	if err != nil {
		return types.Problem{}, mapProblemError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Problem{}, err
	}
	if affected == 0 {
		return types.Problem{}, ErrNotFound
	}

	return problem, nil
}

func (r *ProblemRepository) Delete(ctx context.Context, ownerID, id string) error {
	const query = `DELETE FROM problems WHERE owner_id = $1 AND id = $2`
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

func mapProblemError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return ErrDuplicateNumber
	}
	return err
}

// ensureProblemSlices keeps the never-nil invariant for tags and
// approaches on the way out of the database.
func ensureProblemSlices(problem *types.Problem) {
	if problem.Tags == nil {
		problem.Tags = []string{}
	}
	if problem.Approaches == nil {
		problem.Approaches = []types.Approach{}
	}
}
