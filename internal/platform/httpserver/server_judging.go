package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	judgingdto "artjury/contexts/competition/judging-engine/transport/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleSubmitVote(w http.ResponseWriter, r *http.Request) {
	var req judgingdto.SubmitVoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.judging.Handler.SubmitVoteHandler(r.Context(), actorFrom(r), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.metrics.observeVote(resp.WasUpdate)
	status := http.StatusCreated
	if resp.WasUpdate {
		status = http.StatusOK
	}
	writeJSON(w, status, resp)
}

func (s *Server) handleDeleteVote(w http.ResponseWriter, r *http.Request) {
	if err := s.judging.Handler.DeleteVoteHandler(r.Context(), actorFrom(r), chi.URLParam(r, "vote_id")); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMyVotes(w http.ResponseWriter, r *http.Request) {
	resp, err := s.judging.Handler.MyVotesHandler(r.Context(), actorFrom(r))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Code:    "validation_failed",
				Message: "limit must be an integer",
				Field:   "limit",
			})
			return
		}
		limit = parsed
	}
	resp, err := s.judging.Handler.ResultsHandler(r.Context(), actorFrom(r), limit)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
