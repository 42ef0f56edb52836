package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"curator/internal/api"
	"curator/internal/curation"
	"curator/internal/preflight"
	"curator/internal/services"
	"curator/internal/themes"
)

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	names, err := themes.Names(s.cfg.Paths.ThemesDir)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	payload := api.Status{
		Version:    version,
		ThemeCount: len(names),
		Checks:     api.FromChecks(preflight.RunAll(r.Context(), s.cfg)),
	}
	if s.store != nil {
		if summary, err := s.store.Health(r.Context()); err == nil {
			payload.Runs = api.FromSummary(summary)
		}
		if runs, err := s.store.List(r.Context(), 1); err == nil && len(runs) > 0 {
			last := api.FromRun(runs[0])
			payload.LastRun = &last
		}
	}
	s.writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	list, err := themes.LoadDir(s.cfg.Paths.ThemesDir)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, api.ThemesResponse{Themes: api.FromThemes(list)})
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/themes/")
	if name, ok := strings.CutSuffix(rest, "/run"); ok {
		s.handleRunTheme(w, r, name)
		return
	}
	if rest == "" || strings.Contains(rest, "/") {
		s.writeError(w, http.StatusNotFound, "theme not found")
		return
	}
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	theme, err := themes.LoadByName(s.cfg.Paths.ThemesDir, rest)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, api.ThemeResponse{Theme: api.FromTheme(theme)})
}

func (s *Server) handleRunTheme(w http.ResponseWriter, r *http.Request, name string) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if name == "" || strings.Contains(name, "/") {
		s.writeError(w, http.StatusNotFound, "theme not found")
		return
	}
	if s.runner == nil {
		s.writeError(w, http.StatusServiceUnavailable, "curation runner unavailable")
		return
	}

	// The job outlives the request, so it runs on a background context.
	if err := s.runner.RunDetached(context.Background(), name); err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusAccepted, api.RunAccepted{Theme: name, State: "started"})
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.store == nil {
		s.writeJSON(w, http.StatusOK, api.RunsResponse{})
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	runs, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, api.RunsResponse{Runs: api.FromRuns(runs)})
}

// writeServiceError maps service error markers onto HTTP statuses.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, curation.ErrRunActive):
		s.writeError(w, http.StatusConflict, services.FailureDetail(err))
	case errors.Is(err, services.ErrNotFound):
		s.writeError(w, http.StatusNotFound, services.FailureDetail(err))
	case errors.Is(err, services.ErrValidation):
		s.writeError(w, http.StatusBadRequest, services.FailureDetail(err))
	default:
		s.writeError(w, http.StatusInternalServerError, err.Error())
	}
}
