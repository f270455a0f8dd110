package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jonathan/cv-wizard/internal/types"
)

// validatable is implemented by every request body type
type validatable interface {
	Validate() error
}

// LanguagesResponse represents the response for /languages
type LanguagesResponse struct {
	Default   string   `json:"default"`
	Supported []string `json:"supported"`
}

// BatchMatchResponse represents the response for /match/batch
type BatchMatchResponse struct {
	Results []types.MatchResult `json:"results"`
}

// SuggestionsResponse represents the response for /suggestions
type SuggestionsResponse struct {
	Suggestions []types.Suggestion `json:"suggestions"`
}

// ReviewResponse represents the response for /review
type ReviewResponse struct {
	Bullets []types.BulletReview `json:"bullets"`
}

// KeywordsResponse represents the response for /keywords
type KeywordsResponse struct {
	Language string                `json:"language"`
	Keywords []types.RankedKeyword `json:"keywords"`
}

// decodeRequest reads a size-capped JSON body into req and validates it
func decodeRequest(w http.ResponseWriter, r *http.Request, req validatable) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &ErrPayloadTooLarge{Limit: tooLarge.Limit}
		}
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if err := req.Validate(); err != nil {
		return validationError(err)
	}
	return nil
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleLanguages lists the supported languages and the default
func (s *Server) handleLanguages(w http.ResponseWriter, _ *http.Request) {
	langs := s.engine.Languages()
	supported := make([]string, len(langs))
	for i, l := range langs {
		supported[i] = l.String()
	}
	s.jsonResponse(w, http.StatusOK, LanguagesResponse{
		Default:   s.engine.DefaultLanguage().String(),
		Supported: supported,
	})
}

// handleTaxonomy returns the active skill taxonomy
func (s *Server) handleTaxonomy(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.engine.Taxonomy())
}

// handleMatch scores a profile against one job description
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, s.engine.ScoreMatch(req.Profile, req.JobDescription, req.Language))
}

// handleMatchBatch scores a profile against several job descriptions
func (s *Server) handleMatchBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchMatchRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	results, err := s.engine.ScoreBatch(r.Context(), req.Profile, req.JobDescriptions, req.Language)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, BatchMatchResponse{Results: results})
}

// handleCoverage measures taxonomy coverage of a profile
func (s *Server) handleCoverage(w http.ResponseWriter, r *http.Request) {
	var req types.CoverageRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, s.engine.AnalyzeCoverage(req.Profile))
}

// handleSuggestions lists weak phrases in free text
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	var req types.SuggestionRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, SuggestionsResponse{
		Suggestions: s.engine.SuggestTextImprovements(req.Text),
	})
}

// handleReview reviews the experience bullets of a profile
func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	var req types.ReviewRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, ReviewResponse{Bullets: s.engine.ReviewProfile(req.Profile)})
}

// handleKeywords ranks the keywords of a text
func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	var req types.KeywordsRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	ranked, lang := s.engine.ExtractKeywords(req.Text, req.Language, req.Top)
	s.jsonResponse(w, http.StatusOK, KeywordsResponse{
		Language: lang.String(),
		Keywords: ranked,
	})
}
