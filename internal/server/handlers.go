package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Wachary/BioPlus-AI-1.1/internal/assessment"
	"github.com/Wachary/BioPlus-AI-1.1/internal/diagnosis"
	"github.com/Wachary/BioPlus-AI-1.1/internal/questiongen"
	"github.com/Wachary/BioPlus-AI-1.1/internal/session"
	"github.com/Wachary/BioPlus-AI-1.1/internal/store"
)

// questionsRequest mirrors the request body of POST /api/questions. The
// client owns the transcript and sends it whole on every call; the server
// keeps no per-session state between requests.
type questionsRequest struct {
	SessionID string                `json:"sessionId"`
	Category  string                `json:"category"`
	Symptom   string                `json:"symptom"`
	Responses []assessment.Response `json:"responses"`
	Phase     assessment.Phase      `json:"phase"`
}

type questionsResponse struct {
	SessionID string `json:"sessionId"`
	*questiongen.Result
}

type diagnoseRequest struct {
	SessionID string                `json:"sessionId"`
	Responses []assessment.Response `json:"responses"`
}

type diagnoseResponse struct {
	SessionID string            `json:"sessionId"`
	Diagnoses []diagnosis.Match `json:"diagnoses"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"categories": session.Catalog()})
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	var req questionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "malformed request body", err)
		return
	}
	if req.Category == "" || req.Symptom == "" {
		s.writeError(w, http.StatusBadRequest, "missing required fields", nil)
		return
	}
	if !session.ValidSelection(req.Category, req.Symptom) {
		s.writeError(w, http.StatusBadRequest, "unknown category", nil)
		return
	}
	if req.Phase == "" {
		req.Phase = assessment.PhaseInitial
	}

	sessionID := req.SessionID
	newSession := sessionID == ""
	if newSession {
		sessionID = uuid.NewString()
	}

	result, err := s.generator.Next(r.Context(), questiongen.Input{
		Category:  req.Category,
		Symptom:   req.Symptom,
		Responses: req.Responses,
		Phase:     req.Phase,
	})
	if err != nil {
		var inv *assessment.ErrInvalidInput
		if errors.As(err, &inv) {
			s.writeError(w, http.StatusBadRequest, inv.Error(), nil)
			return
		}
		s.writeError(w, http.StatusBadGateway, "question generation failed", err)
		return
	}

	// Persist the session only once the first batch exists. A failed
	// generation followed by a client retry must not mint orphan rows.
	if newSession {
		s.recordSessionStart(r, sessionID, req)
	}

	// The newest response is the one this call was triggered by; older
	// ones were recorded on earlier calls.
	if s.events != nil && len(req.Responses) > 0 {
		last := req.Responses[len(req.Responses)-1]
		if err := s.events.AppendResponseEvent(r.Context(), store.ResponseEventData{
			SessionID: sessionID,
			Question:  last.Question,
			Answer:    last.Answer,
			Options:   last.QuestionData.Options,
			Phase:     string(req.Phase),
			OpenEnded: last.OpenEnded(),
		}); err != nil {
			s.logger.Warn().Err(err).Msg("append response event")
		}
	}

	s.writeJSON(w, http.StatusOK, questionsResponse{SessionID: sessionID, Result: result})
}

func (s *Server) handleDiagnose(w http.ResponseWriter, r *http.Request) {
	var req diagnoseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "malformed request body", err)
		return
	}

	matches, err := s.differ.ComputeDiagnosis(r.Context(), req.Responses)
	if err != nil {
		var inv *assessment.ErrInvalidInput
		if errors.As(err, &inv) {
			s.writeError(w, http.StatusBadRequest, inv.Error(), nil)
			return
		}
		var perr *diagnosis.ErrProfile
		if errors.As(err, &perr) {
			s.writeError(w, http.StatusBadGateway, "diagnosis failed", err)
			return
		}
		s.writeError(w, http.StatusInternalServerError, "diagnosis failed", err)
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	s.recordDiagnosis(r, sessionID, req, matches)

	s.writeJSON(w, http.StatusOK, diagnoseResponse{SessionID: sessionID, Diagnoses: matches})
}

func (s *Server) recordSessionStart(r *http.Request, sessionID string, req questionsRequest) {
	if s.events == nil {
		return
	}
	err := s.events.AppendSessionEvent(r.Context(), store.SessionEventData{
		SessionID: sessionID,
		Action:    "started",
		Category:  req.Category,
		Symptom:   req.Symptom,
		Phase:     string(req.Phase),
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("append session event")
	}
}

func (s *Server) recordDiagnosis(r *http.Request, sessionID string, req diagnoseRequest, matches []diagnosis.Match) {
	if s.events == nil {
		return
	}
	for i, m := range matches {
		err := s.events.AppendDiagnosisEvent(r.Context(), store.DiagnosisEventData{
			SessionID:           sessionID,
			Condition:           m.Condition,
			Similarity:          m.Similarity,
			Confidence:          m.Confidence,
			Rank:                i + 1,
			RecommendationCount: len(m.Recommendations),
		})
		if err != nil {
			s.logger.Warn().Err(err).Msg("append diagnosis event")
		}
	}
	err := s.events.AppendSessionEvent(r.Context(), store.SessionEventData{
		SessionID:     sessionID,
		Action:        "completed",
		Phase:         string(assessment.PhaseDetailed),
		ResponseCount: len(req.Responses),
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("append session event")
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error().Err(err).Msg("encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string, err error) {
	if err != nil {
		s.logger.Error().Err(err).Int("status", status).Msg(msg)
	}
	s.writeJSON(w, status, errorResponse{Error: msg})
}
