package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/recruiter-portal/internal/parsing"
	"github.com/jonathan/recruiter-portal/internal/ranking"
	"github.com/jonathan/recruiter-portal/internal/server/middleware"
	"github.com/jonathan/recruiter-portal/internal/types"
)

var validate = validator.New()

func (s *Server) authMiddleware() func(http.Handler) http.Handler {
	return middleware.Auth(s.jwtService.AsTokenValidator())
}

// AnalyzeCandidate is one candidate submitted for scoring. Email is optional;
// when absent it is recovered from the resume text or derived from the name.
type AnalyzeCandidate struct {
	Name       string `json:"name"`
	Email      string `json:"email" validate:"omitempty,email"`
	ResumeText string `json:"resume_text"`
}

// AnalyzeRequest is the scoring request payload.
type AnalyzeRequest struct {
	Job        types.JobPosting   `json:"job"`
	Candidates []AnalyzeCandidate `json:"candidates" validate:"required,min=1,dive"`
	Persist    bool               `json:"persist,omitempty"`
}

// AnalyzeResponse carries the ranked results, plus the run ID when the run
// was persisted.
type AnalyzeResponse struct {
	RunID   *uuid.UUID          `json:"run_id,omitempty"`
	Results []types.ScoreResult `json:"results"`
}

// handleAnalyze scores a candidate batch against a job posting.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	candidates := make([]types.CandidateRecord, 0, len(req.Candidates))
	for _, c := range req.Candidates {
		candidates = append(candidates, buildCandidate(c))
	}

	results, err := s.analyzer.Analyze(r.Context(), &req.Job, candidates)
	if err != nil {
		switch {
		case errors.Is(err, ranking.ErrNoJobDescription),
			errors.Is(err, ranking.ErrUnknownStrategy),
			errors.Is(err, ranking.ErrNoRemoteScorer):
			s.errorResponse(w, http.StatusBadRequest, err.Error())
		default:
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	resp := AnalyzeResponse{Results: results}

	if req.Persist {
		if s.database == nil {
			s.errorResponse(w, http.StatusServiceUnavailable, "run persistence is not configured")
			return
		}
		runID, err := s.database.CreateRun(r.Context(),
			req.Job.Title, string(req.Job.EffectiveStrategy()), len(results))
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		if err := s.database.SaveScores(r.Context(), runID, results); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp.RunID = &runID
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// buildCandidate fills in the derived candidate fields the scorers rely on.
func buildCandidate(c AnalyzeCandidate) types.CandidateRecord {
	email := c.Email
	if email == "" {
		email = parsing.FirstEmail(c.ResumeText)
	}
	if email == "" {
		email = parsing.PlaceholderEmail(c.Name)
	}

	return types.CandidateRecord{
		Name:            c.Name,
		Email:           email,
		ResumeText:      c.ResumeText,
		ExtractedSkills: parsing.Normalize(c.ResumeText, nil),
		ExperienceYears: parsing.CandidateYears(c.ResumeText),
		HasDegree:       parsing.MentionsDegree(c.ResumeText),
	}
}

// handleListRuns returns recent persisted runs.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.database == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "run persistence is not configured")
		return
	}

	runs, err := s.database.ListRuns(r.Context(), 50)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": runs})
}

// handleGetRun returns one persisted run with its scores.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.database == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "run persistence is not configured")
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run ID")
		return
	}

	run, err := s.database.GetRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if run == nil {
		s.errorResponse(w, http.StatusNotFound, "run not found")
		return
	}

	scores, err := s.database.RunScores(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"run": run, "scores": scores})
}
