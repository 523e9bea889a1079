package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/seaboard/crewmatch/internal/types"
)

// handleMatch handles POST /match.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "query is required and limit must be between 1 and 20")
		return
	}

	resp, err := s.matcher.Match(r.Context(), &req)
	if err != nil {
		s.log.Error("match request failed", zap.Error(err))
		message := "match request failed"
		// Surface dependency detail outside production only.
		if s.env != "production" {
			message = err.Error()
		}
		s.errorResponse(w, HTTPStatus(&ErrUpstream{Operation: "match", Cause: err}), message)
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}
