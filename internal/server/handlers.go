package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/fetch"
	"github.com/alexanderramin/folio/internal/repository"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type listResponse struct {
	Projects []domain.Project `json:"projects"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.projects.List(r.Context())
	if err != nil {
		s.log.Error("listing projects", zap.String("request_id", RequestID(r.Context())), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not list projects")
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Projects: projects})
}

func (s *Server) getProject(w http.ResponseWriter, r *http.Request) {
	id, err := fetch.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.projects.GetByID(r.Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
		return
	case err != nil:
		s.log.Error("loading project", zap.Int64("id", id), zap.String("request_id", RequestID(r.Context())), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not load project")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}
