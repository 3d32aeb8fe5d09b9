package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/leettrack/leettrack/config"
	"github.com/leettrack/leettrack/internal/db"
	"github.com/leettrack/leettrack/internal/handlers"
	"github.com/leettrack/leettrack/internal/mq"
	"github.com/leettrack/leettrack/internal/services"
	"github.com/leettrack/leettrack/internal/storage"
	"github.com/leettrack/leettrack/internal/store"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
	queue      *mq.MQ
}

// New constructs a Server with basic middleware and defaults. Object
// storage and the message queue are optional; the features backed by
// them degrade when their backends are unavailable.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	jwtSecret := strings.TrimSpace(cfg.JWTSecret)
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	exportStorage, err := storage.NewFromConfig(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Msg("object storage unavailable, resume export disabled")
		exportStorage = nil
	} else if err := exportStorage.EnsureBucket(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure export bucket, resume export disabled")
		exportStorage = nil
	}

	queue, err := mq.NewFromConfig(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Msg("message queue unavailable, reset mail disabled")
		queue = nil
	}

	problemRepo := store.NewProblemRepository(dbConn)
	sheetRepo := store.NewCheatSheetRepository(dbConn)
	userRepo := store.NewUserRepository(dbConn)
	resumeRepo := store.NewResumeRepository(dbConn)

	problemService := services.NewProblemService(problemRepo)
	sheetService := services.NewCheatSheetService(sheetRepo)
	userService := services.NewUserService(userRepo)
	resumeService := services.NewResumeService(resumeRepo, exportStorage)

	authMiddleware := handlers.RequireAuth(jwtSecret)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/api/auth", func(r chi.Router) {
		handlers.AuthRouter(r, userService, queue, jwtSecret)
	})
	router.Route("/api/problems", func(r chi.Router) {
		handlers.ProblemRouter(r, problemService, authMiddleware)
	})
	router.Route("/api/cheatsheets", func(r chi.Router) {
		handlers.CheatSheetRouter(r, sheetService, authMiddleware)
	})
	router.Route("/api/resume", func(r chi.Router) {
		handlers.ResumeRouter(r, resumeService, authMiddleware)
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 4000
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
		queue:      queue,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	log.Info().Str("addr", s.httpServer.Addr).Msg("starting http server")
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.db != nil {
		_ = s.db.Close()
	}
	if s.queue != nil {
		_ = s.queue.Close()
	}
	return s.httpServer.Close()
}
