package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/uts/vosk-transcriber/internal/session"
)

const eventWriteTimeout = 5 * time.Second

type startRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleSessionSnapshot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) handleSessionStart(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := s.session.Start(req.Name); err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) handleSessionStop(w http.ResponseWriter, _ *http.Request) {
	if err := s.session.Stop(); err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) handleSessionSave(w http.ResponseWriter, _ *http.Request) {
	saved, err := s.session.Save()
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"session_name": saved.SessionName,
		"text_path":    saved.TextPath,
		"json_path":    saved.JSONPath,
	})
}

func (s *Server) handleSessionClear(w http.ResponseWriter, _ *http.Request) {
	s.session.Clear()
	writeJSON(w, http.StatusOK, s.session.Snapshot())
}

func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrAlreadyRunning), errors.Is(err, session.ErrNotRunning):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, session.ErrNothingToSave):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("session request failed", "component", "server", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

var upgrader = websocket.Upgrader{
	// The server binds to localhost by default.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleSessionEvents streams session events as JSON text messages until the
// client goes away.
func (s *Server) handleSessionEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("failed to upgrade session events connection", "component", "server", "error", err)
		return
	}
	defer conn.Close()

	events, unsubscribe := s.session.Subscribe()
	defer unsubscribe()

	// The client never sends anything; reading detects when it leaves.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-gone:
			return
		case <-r.Context().Done():
			return
		case e, ok := <-events:
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(eventWriteTimeout))
			if err := conn.WriteJSON(e); err != nil {
				slog.Debug("session events client write failed", "component", "server", "error", err)
				return
			}
		}
	}
}
