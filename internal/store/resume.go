package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/leettrack/leettrack/types"
)

// ResumeRepository handles persistence for resumes. One row per user.
type ResumeRepository struct {
	db *sql.DB
}

func NewResumeRepository(db *sql.DB) *ResumeRepository {
	return &ResumeRepository{db: db}
}

func (r *ResumeRepository) Get(ctx context.Context, userID string) (types.Resume, error) {
	const query = `
		SELECT user_id, full_name, email, phone, summary, experience, education, skills, theme, updated_at
		FROM resumes
		WHERE user_id = $1`
	var resume types.Resume
	var experienceJSON, educationJSON, skillsJSON []byte
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&resume.UserID,
		&resume.FullName,
		&resume.Email,
		&resume.Phone,
		&resume.Summary,
		&experienceJSON,
		&educationJSON,
		&skillsJSON,
		&resume.Theme,
		&resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Resume{}, ErrNotFound
		}
		return types.Resume{}, err
	}

	_ = json.Unmarshal(experienceJSON, &resume.Experience)
	_ = json.Unmarshal(educationJSON, &resume.Education)
	_ = json.Unmarshal(skillsJSON, &resume.Skills)
	ensureResumeSlices(&resume)
	return resume, nil
}

// Save inserts or replaces the user's resume.
func (r *ResumeRepository) Save(ctx context.Context, resume types.Resume) (types.Resume, error) {
	resume.UpdatedAt = time.Now()

	experienceJSON, err := json.Marshal(resume.Experience)
	if err != nil {
		return types.Resume{}, err
	}
	educationJSON, err := json.Marshal(resume.Education)
	if err != nil {
		return types.Resume{}, err
	}
	skillsJSON, err := json.Marshal(resume.Skills)
	if err != nil {
		return types.Resume{}, err
	}

	const query = `
		INSERT INTO resumes (user_id, full_name, email, phone, summary, experience, education, skills, theme, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id) DO UPDATE
		SET full_name = EXCLUDED.full_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			summary = EXCLUDED.summary,
			experience = EXCLUDED.experience,
			education = EXCLUDED.education,
			skills = EXCLUDED.skills,
			theme = EXCLUDED.theme,
			updated_at = EXCLUDED.updated_at`
	if _, err := r.db.ExecContext(
		ctx,
		query,
		resume.UserID,
		resume.FullName,
		resume.Email,
		resume.Phone,
		resume.Summary,
		experienceJSON,
		educationJSON,
		skillsJSON,
		resume.Theme,
		resume.UpdatedAt,
	); err != nil {
		return types.Resume{}, err
	}

	return resume, nil
}

func ensureResumeSlices(resume *types.Resume) {
	if resume.Experience == nil {
		resume.Experience = []types.ResumeEntry{}
	}
	if resume.Education == nil {
		resume.Education = []types.ResumeEntry{}
	}
	if resume.Skills == nil {
		resume.Skills = []string{}
	}
}
