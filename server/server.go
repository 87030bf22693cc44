// Package server exposes a read-only HTTP preview of generated workspaces:
// an index of runs, the parsed dialogue per run, and the audio and
// transcript files themselves.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"artdialogue/dialogue"
	"artdialogue/workspace"
)

type Server struct {
	store  *workspace.Store
	logger *log.Logger
}

func New(store *workspace.Store, logger *log.Logger) (*Server, error) {
	if store == nil {
		return nil, errors.New("workspace store required")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{store: store, logger: logger}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/workspaces", s.handleList)
	mux.HandleFunc("/api/workspaces/", s.handleWorkspace)
	mux.Handle("/files/", http.StripPrefix("/files/", http.FileServer(http.Dir(s.store.Base))))
	return s.logMiddleware(mux)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("http", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start))
	})
}

// --- Handlers ---

type workspaceInfo struct {
	Name  string `json:"name"`
	Ready bool   `json:"ready"` // dialogue artifact present
}

type workspaceResp struct {
	Name  string          `json:"name"`
	Lines []dialogue.Line `json:"lines"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	entries, err := os.ReadDir(s.store.Base)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			writeJSON(w, []workspaceInfo{})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	infos := []workspaceInfo{}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		path := filepath.Join(s.store.Base, e.Name())
		infos = append(infos, workspaceInfo{
			Name:  e.Name(),
			Ready: s.store.CheckRequirements(path, workspace.StageVoice),
		})
	}
	writeJSON(w, infos)
}

func (s *Server) handleWorkspace(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/api/workspaces/")
	if name == "" || strings.ContainsAny(name, "/\\") {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(s.store.Base, name)
	if !s.store.CheckRequirements(path, workspace.StageVoice) {
		http.NotFound(w, r)
		return
	}

	lines, err := dialogue.Load(s.store.Paths(path).Dialogue)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, workspaceResp{Name: name, Lines: lines})
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(payload)
}
