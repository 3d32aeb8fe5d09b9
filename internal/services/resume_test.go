package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leettrack/leettrack/internal/store"
	"github.com/leettrack/leettrack/types"
)

type fakeResumeRepo struct {
	resumes map[string]types.Resume
}

func newFakeResumeRepo() *fakeResumeRepo {
	return &fakeResumeRepo{resumes: map[string]types.Resume{}}
}

func (r *fakeResumeRepo) Get(_ context.Context, userID string) (types.Resume, error) {
	resume, ok := r.resumes[userID]
	if !ok {
		return types.Resume{}, store.ErrNotFound
	}
	return resume, nil
}

func (r *fakeResumeRepo) Save(_ context.Context, resume types.Resume) (types.Resume, error) {
	r.resumes[resume.UserID] = resume
	return resume, nil
}

func TestGetReturnsDefaultResume(t *testing.T) {
	svc := NewResumeService(newFakeResumeRepo(), nil)

	resume, err := svc.Get(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "user-1", resume.UserID)
	assert.Equal(t, types.ThemeProfessional, resume.Theme)
	assert.NotNil(t, resume.Experience)
	assert.NotNil(t, resume.Skills)
}

func TestSaveDefaultsTheme(t *testing.T) {
	svc := NewResumeService(newFakeResumeRepo(), nil)

	saved, err := svc.Save(context.Background(), types.Resume{UserID: "user-1", FullName: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, types.ThemeProfessional, saved.Theme)
}

func TestExportWithoutStorage(t *testing.T) {
	svc := NewResumeService(newFakeResumeRepo(), nil)

	_, err := svc.Export(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrExportUnavailable)
}

func TestRenderResumeEscapesContent(t *testing.T) {
	doc, err := RenderResume(types.Resume{
		FullName: "Ada <script>alert(1)</script>",
		Email:    "ada@example.com",
		Theme:    types.ThemeModern,
		Skills:   []string{"Go", "SQL"},
	})
	require.NoError(t, err)

	assert.NotContains(t, doc, "<script>alert(1)</script>")
	assert.Contains(t, doc, "ada@example.com")
	assert.Contains(t, doc, "Go, SQL")
	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
}
