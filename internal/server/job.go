package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/uts/vosk-transcriber/internal/audio"
	"github.com/uts/vosk-transcriber/internal/recognizer/model"
	"github.com/uts/vosk-transcriber/internal/transcription"
)

// uploadExt matches extensions kept on saved uploads so ffmpeg can probe them.
var uploadExt = regexp.MustCompile(`^\.[A-Za-z0-9]{1,8}$`)

type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// Job is an uploaded file being transcribed in the background.
type Job struct {
	ID          string     `json:"id"`
	Status      JobStatus  `json:"status"`
	SessionName string     `json:"session_name"`
	FileName    string     `json:"file_name"`
	Text        string     `json:"text,omitempty"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}

type jobRegistry struct {
	mu   sync.Mutex
	jobs map[string]*Job
}

func newJobRegistry() *jobRegistry {
	return &jobRegistry{jobs: make(map[string]*Job)}
}

func (r *jobRegistry) add(job *Job) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = job
}

func (r *jobRegistry) get(id string) (Job, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return Job{}, false
	}
	return *job, true
}

func (r *jobRegistry) update(id string, fn func(job *Job)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job, ok := r.jobs[id]; ok {
		fn(job)
	}
}

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxUploadBytes)

	src, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		writeError(w, http.StatusBadRequest, "multipart field \"file\" is required")
		return
	}
	defer src.Close()

	sessionName := strings.TrimSpace(r.FormValue("session"))
	if sessionName == "" {
		sessionName = transcription.DefaultSessionName
	}

	id := uuid.NewString()
	path, err := s.saveUpload(id, header.Filename, src)
	if err != nil {
		slog.Error("failed to save upload", "component", "server", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save upload")
		return
	}

	cmd, err := s.newFileCommand(sessionName)
	if err != nil {
		removeUpload(path)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	job := &Job{
		ID:          id,
		Status:      JobQueued,
		SessionName: sessionName,
		FileName:    header.Filename,
		CreatedAt:   time.Now().UTC(),
	}
	s.jobs.add(job)

	if err := s.runner.Go("file-job", func(ctx context.Context) {
		s.runJob(ctx, id, cmd, path)
	}); err != nil {
		removeUpload(path)
		s.jobs.update(id, func(job *Job) { job.finish(err) })
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	got, _ := s.jobs.get(id)
	writeJSON(w, http.StatusAccepted, got)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	job, ok := s.jobs.get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (s *Server) saveUpload(id, name string, src io.Reader) (string, error) {
	if err := os.MkdirAll(s.opts.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if !uploadExt.MatchString(ext) {
		ext = ""
	}
	path := filepath.Join(s.opts.UploadDir, id+"_"+audio.SanitizeFileName(base)+ext)
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		removeUpload(path)
		return "", err
	}
	if err := dst.Close(); err != nil {
		removeUpload(path)
		return "", err
	}
	return path, nil
}

func (s *Server) runJob(ctx context.Context, id string, cmd Command, path string) {
	defer removeUpload(path)
	s.jobs.update(id, func(job *Job) { job.Status = JobRunning })

	var (
		mu     sync.Mutex
		finals []string
	)
	listener := transcription.ListenerFuncs{
		Final: func(result *model.Result) {
			if t := strings.TrimSpace(result.Transcript); t != "" {
				mu.Lock()
				finals = append(finals, t)
				mu.Unlock()
			}
		},
	}

	err := cmd.Run(ctx, path, listener)

	mu.Lock()
	text := strings.Join(finals, " ")
	mu.Unlock()
	s.jobs.update(id, func(job *Job) {
		job.Text = text
		job.finish(err)
	})
	slog.Info("file job finished", "component", "server", "job", id, "error", err)
}

func (j *Job) finish(err error) {
	finished := time.Now().UTC()
	j.FinishedAt = &finished
	if err != nil {
		j.Status = JobFailed
		j.Error = err.Error()
		return
	}
	j.Status = JobCompleted
}

func removeUpload(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to remove upload", "component", "server", "path", path, "error", err)
	}
}
