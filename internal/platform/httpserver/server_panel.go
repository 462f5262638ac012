package httpserver

import (
	"net/http"

	paneldto "artjury/contexts/identity-access/panel-service/transport/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req paneldto.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.panel.Handler.LoginHandler(r.Context(), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListJudges(w http.ResponseWriter, r *http.Request) {
	resp, err := s.panel.Handler.ListJudgesHandler(r.Context(), actorFrom(r))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateJudge(w http.ResponseWriter, r *http.Request) {
	var req paneldto.JudgeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.panel.Handler.CreateJudgeHandler(r.Context(), actorFrom(r), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateJudge(w http.ResponseWriter, r *http.Request) {
	var req paneldto.JudgeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.panel.Handler.UpdateJudgeHandler(r.Context(), actorFrom(r), chi.URLParam(r, "judge_id"), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteJudge(w http.ResponseWriter, r *http.Request) {
	if err := s.panel.Handler.DeleteJudgeHandler(r.Context(), actorFrom(r), chi.URLParam(r, "judge_id")); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
