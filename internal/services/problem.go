package services

import (
	"context"
	"time"

	"github.com/leettrack/leettrack/types"
)

// ProblemRepository defines persistence operations for problems.
type ProblemRepository interface {
	List(ctx context.Context, ownerID string) ([]types.Problem, error)
	Get(ctx context.Context, ownerID, id string) (types.Problem, error)
	Create(ctx context.Context, ownerID string, problem types.Problem) (types.Problem, error)
	Update(ctx context.Context, ownerID string, problem types.Problem) (types.Problem, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// ProblemService encapsulates problem use-cases.
type ProblemService struct {
	repo ProblemRepository
	now  func() time.Time
}

func NewProblemService(repo ProblemRepository) *ProblemService {
	return &ProblemService{repo: repo, now: time.Now}
}

func (s *ProblemService) List(ctx context.Context, ownerID string) ([]types.Problem, error) {
	return s.repo.List(ctx, ownerID)
}

func (s *ProblemService) Get(ctx context.Context, ownerID, id string) (types.Problem, error) {
	return s.repo.Get(ctx, ownerID, id)
}

func (s *ProblemService) Create(ctx context.Context, ownerID string, problem types.Problem) (types.Problem, error) {
	s.normalize(&problem)
	return s.repo.Create(ctx, ownerID, problem)
}

// Update merges a partial update into the stored problem. The merged
// result is what gets persisted and returned; absent fields keep their
// stored values.
func (s *ProblemService) Update(ctx context.Context, ownerID, id string, patch types.ProblemUpdate) (types.Problem, error) {
	problem, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return types.Problem{}, err
	}

	if patch.Number != nil {
		problem.Number = *patch.Number
	}
	if patch.Title != nil {
		problem.Title = *patch.Title
	}
	if patch.Link != nil {
		problem.Link = *patch.Link
	}
	if patch.Difficulty != nil {
		problem.Difficulty = *patch.Difficulty
	}
	if patch.Status != nil {
		problem.Status = *patch.Status
	}
	if patch.Tags != nil {
		problem.Tags = *patch.Tags
	}
	if patch.DateSolved != nil {
		problem.DateSolved = *patch.DateSolved
	}
	if patch.Approaches != nil {
		problem.Approaches = *patch.Approaches
	}
	if patch.Notes != nil {
		problem.Notes = *patch.Notes
	}

	s.normalize(&problem)
	return s.repo.Update(ctx, ownerID, problem)
}

func (s *ProblemService) Delete(ctx context.Context, ownerID, id string) error {
	return s.repo.Delete(ctx, ownerID, id)
}

// normalize enforces the structural invariants: tags deduplicated in
// insertion order, slices never nil, and the solve date stamped when a
// problem reaches Solved or Reviewing without one.
func (s *ProblemService) normalize(problem *types.Problem) {
	problem.Tags = types.NormalizeTags(problem.Tags)
	if problem.Approaches == nil {
		problem.Approaches = []types.Approach{}
	}
	if problem.DateSolved == "" &&
		(problem.Status == types.StatusSolved || problem.Status == types.StatusReviewing) {
		problem.DateSolved = s.now().UTC().Format(types.DateLayout)
	}
}
