package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/leettrack/leettrack/internal/storage"
	"github.com/leettrack/leettrack/internal/store"
	"github.com/leettrack/leettrack/types"
)

// ErrExportUnavailable is returned when no object storage backend is
// configured.
var ErrExportUnavailable = errors.New("resume export is not configured")

// ResumeRepository defines persistence operations for resumes.
type ResumeRepository interface {
	Get(ctx context.Context, userID string) (types.Resume, error)
	Save(ctx context.Context, resume types.Resume) (types.Resume, error)
}

// ResumeService encapsulates the resume builder's server side: one
// stored document per user plus HTML export into object storage.
type ResumeService struct {
	repo    ResumeRepository
	storage *storage.Storage
}

func NewResumeService(repo ResumeRepository, st *storage.Storage) *ResumeService {
	return &ResumeService{repo: repo, storage: st}
}

// Get returns the user's resume, or an empty default when none has
// been saved yet.
func (s *ResumeService) Get(ctx context.Context, userID string) (types.Resume, error) {
	resume, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.Resume{
				UserID:     userID,
				Experience: []types.ResumeEntry{},
				Education:  []types.ResumeEntry{},
				Skills:     []string{},
				Theme:      types.ThemeProfessional,
			}, nil
		}
		return types.Resume{}, err
	}
	return resume, nil
}

func (s *ResumeService) Save(ctx context.Context, resume types.Resume) (types.Resume, error) {
	if resume.Theme == "" {
		resume.Theme = types.ThemeProfessional
	}
	if resume.Experience == nil {
		resume.Experience = []types.ResumeEntry{}
	}
	if resume.Education == nil {
		resume.Education = []types.ResumeEntry{}
	}
	if resume.Skills == nil {
		resume.Skills = []string{}
	}
	return s.repo.Save(ctx, resume)
}

// Export renders the resume as a standalone HTML document, stores it
// in the configured bucket and returns the object key.
func (s *ResumeService) Export(ctx context.Context, userID string) (string, error) {
	if s.storage == nil {
		return "", ErrExportUnavailable
	}

	resume, err := s.Get(ctx, userID)
	if err != nil {
		return "", err
	}

	doc, err := RenderResume(resume)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("resumes/%s/resume.html", userID)
	reader := strings.NewReader(doc)
	if err := s.storage.Put(ctx, key, reader, int64(len(doc)), "text/html"); err != nil {
		return "", err
	}
	return key, nil
}

var resumeTemplate = template.Must(template.New("resume").Funcs(template.FuncMap{
	"join": func(items []string) string { return strings.Join(items, ", ") },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.FullName}} — Resume</title>
<style>body { font-family: {{.Font}}; margin: 2rem auto; max-width: 48rem; } h1 { border-bottom: 2px solid {{.Accent}}; } h2 { color: {{.Accent}}; } .meta { color: #555; }</style>
</head>
<body>
<h1>{{.FullName}}</h1>
<p class="meta">{{.Email}}{{if .Phone}} · {{.Phone}}{{end}}</p>
{{if .Summary}}<p>{{.Summary}}</p>{{end}}
{{if .Experience}}<h2>Experience</h2>{{range .Experience}}<h3>{{.Title}} — {{.Place}}</h3><p class="meta">{{.Start}}{{if .End}} – {{.End}}{{end}}</p><p>{{.Details}}</p>{{end}}{{end}}
{{if .Education}}<h2>Education</h2>{{range .Education}}<h3>{{.Title}} — {{.Place}}</h3><p class="meta">{{.Start}}{{if .End}} – {{.End}}{{end}}</p><p>{{.Details}}</p>{{end}}{{end}}
{{if .Skills}}<h2>Skills</h2><p>{{join .Skills}}</p>{{end}}
</body>
</html>
`))

type resumeView struct {
	types.Resume
	Font   template.CSS
	Accent template.CSS
}

// RenderResume produces the exported HTML for a resume. Theme keys map
// to font and accent choices; content layout is fixed.
func RenderResume(resume types.Resume) (string, error) {
	view := resumeView{Resume: resume}
	switch resume.Theme {
	case types.ThemeModern:
		view.Font = "'Helvetica Neue', sans-serif"
		view.Accent = "#0f766e"
	case types.ThemeMinimalist:
		view.Font = "Georgia, serif"
		view.Accent = "#333333"
	default: // professional
		view.Font = "'Times New Roman', serif"
		view.Accent = "#1d4ed8"
	}

	var buf bytes.Buffer
	if err := resumeTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}
