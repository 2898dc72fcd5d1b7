// Package server exposes the live session, file transcription jobs and the
// history over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/uts/vosk-transcriber/internal/history"
	"github.com/uts/vosk-transcriber/internal/session"
	"github.com/uts/vosk-transcriber/internal/store"
	"github.com/uts/vosk-transcriber/internal/transcription"
)

const shutdownTimeout = 10 * time.Second

// SessionController is the live session driven by the /session routes.
//
//go:generate moq -rm -out server_mock.go . SessionController Runner Command History
type SessionController interface {
	Start(name string) error
	Stop() error
	Save() (*store.Saved, error)
	Clear()
	Snapshot() session.Snapshot
	Subscribe() (<-chan session.Event, func())
}

var _ SessionController = (*session.Session)(nil)

// Runner runs file jobs in the background.
type Runner interface {
	Go(name string, fn func(ctx context.Context)) error
}

// Command transcribes one audio file.
type Command interface {
	Run(ctx context.Context, audioFile string, listener transcription.Listener) error
}

// FileCommandFactory builds the command for an uploaded file.
type FileCommandFactory func(sessionName string) (Command, error)

type History interface {
	List(ctx context.Context, limit int) ([]history.Entry, error)
	Get(ctx context.Context, id string) (history.Entry, error)
}

var _ History = (*history.Store)(nil)

type Options struct {
	Addr           string
	UploadDir      string
	MaxUploadBytes int64
}

type Server struct {
	opts           Options
	session        SessionController
	runner         Runner
	newFileCommand FileCommandFactory
	history        History

	jobs   *jobRegistry
	router chi.Router
}

func New(
	opts Options,
	sessionController SessionController,
	runner Runner,
	newFileCommand FileCommandFactory,
	hist History,
) (*Server, error) {
	if opts.Addr == "" {
		return nil, errors.New("address must be specified")
	}
	if opts.UploadDir == "" {
		return nil, errors.New("upload directory must be specified")
	}
	if opts.MaxUploadBytes <= 0 {
		return nil, errors.New("max upload bytes must be positive")
	}
	if sessionController == nil {
		return nil, errors.New("session must be specified")
	}
	if runner == nil {
		return nil, errors.New("runner must be specified")
	}
	if newFileCommand == nil {
		return nil, errors.New("file command factory must be specified")
	}
	if hist == nil {
		return nil, errors.New("history must be specified")
	}

	s := &Server{
		opts:           opts,
		session:        sessionController,
		runner:         runner,
		newFileCommand: newFileCommand,
		history:        hist,
		jobs:           newJobRegistry(),
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/session", func(r chi.Router) {
		r.Get("/", s.handleSessionSnapshot)
		r.Post("/start", s.handleSessionStart)
		r.Post("/stop", s.handleSessionStop)
		r.Post("/save", s.handleSessionSave)
		r.Post("/clear", s.handleSessionClear)
		r.Get("/events", s.handleSessionEvents)
	})

	r.Route("/transcriptions", func(r chi.Router) {
		r.Post("/", s.handleCreateJob)
		r.Get("/{id}", s.handleGetJob)
	})

	r.Route("/history", func(r chi.Router) {
		r.Get("/", s.handleListHistory)
		r.Get("/{id}", s.handleGetHistory)
	})

	return r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is done and then shuts the server down.
func (s *Server) Start(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server started", "component", "server", "addr", s.opts.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown failed: %w", err)
	}
	slog.Info("http server stopped", "component", "server")
	return nil
}
