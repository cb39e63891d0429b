package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/cardledger/server/internal/importer"
	"github.com/cardledger/server/internal/logging"
	"github.com/cardledger/server/internal/match"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyze classifies the columns of a raw export without importing
// anything. The request body is the raw CSV text.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	text, err := s.readBody(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	_, analysis, err := s.importer.AnalyzeText(text)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	respondJSON(w, http.StatusOK, analysis)
}

// handleImport runs the full import pipeline on the raw CSV body and
// returns the normalized records with all validation findings.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	text, err := s.readBody(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	result, err := s.importer.Import(text, nil)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	respondJSON(w, http.StatusOK, result)
}

type matchRequest struct {
	Record     *importer.CanonicalRecord `json:"record"`
	Candidates []match.Candidate         `json:"candidates"`
	Config     *match.Config             `json:"config,omitempty"`
}

type matchResponse struct {
	Best    *match.Result  `json:"best"`
	Results []match.Result `json:"results"`
}

// handleMatch scores caller-supplied candidates against one record.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, errInvalidJSON(err), http.StatusBadRequest)
		return
	}
	if req.Record == nil {
		s.respondError(w, r, errMissingRecord, http.StatusBadRequest)
		return
	}

	cfg := s.matchConfig(req.Config)
	results := match.FindAllMatches(req.Record, req.Candidates, cfg)

	resp := matchResponse{Results: results}
	if len(results) > 0 {
		resp.Best = &results[0]
	}
	respondJSON(w, http.StatusOK, resp)
}

type batchMatchRequest struct {
	Records []*importer.CanonicalRecord `json:"records"`
	Config  *match.Config               `json:"config,omitempty"`
}

type batchMatchEntry struct {
	Record *importer.CanonicalRecord `json:"record"`
	Match  *match.Result             `json:"match"`
}

// handleBatchMatch resolves a batch of records against the reference
// catalog. Entries come back in input order; a null match means the
// record could not be resolved.
func (s *Server) handleBatchMatch(w http.ResponseWriter, r *http.Request) {
	if s.search == nil {
		s.respondError(w, r, errNoCatalog, http.StatusServiceUnavailable)
		return
	}

	var req batchMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, errInvalidJSON(err), http.StatusBadRequest)
		return
	}

	cfg := s.matchConfig(req.Config)
	cfg.Logger = logging.FromContext(r.Context())
	results := match.BatchMatch(r.Context(), req.Records, s.search, cfg)

	entries := make([]batchMatchEntry, len(req.Records))
	for i, rec := range req.Records {
		entries[i] = batchMatchEntry{Record: rec, Match: results[rec]}
	}
	respondJSON(w, http.StatusOK, entries)
}

// matchConfig merges a request-level config over the server defaults.
func (s *Server) matchConfig(override *match.Config) match.Config {
	cfg := match.DefaultConfig()
	cfg.MinScore = float64(s.cfg.Matching.MinScore)
	cfg.MaxResults = s.cfg.Matching.MaxResults
	cfg.Strict = s.cfg.Matching.Strict
	cfg.Concurrency = s.cfg.Matching.Concurrency

	if override != nil {
		if override.MinScore > 0 {
			cfg.MinScore = override.MinScore
		}
		if override.MaxResults > 0 {
			cfg.MaxResults = override.MaxResults
		}
		if override.Concurrency > 0 {
			cfg.Concurrency = override.Concurrency
		}
		cfg.Strict = override.Strict
	}
	return cfg
}

// readBody reads the raw request body up to the configured size limit.
func (s *Server) readBody(r *http.Request) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, s.cfg.Import.MaxFileSize+1))
	if err != nil {
		return "", err
	}
	if int64(len(data)) > s.cfg.Import.MaxFileSize {
		return "", errFileTooLarge
	}
	if len(data) == 0 {
		return "", importer.ErrEmptyInput
	}
	return string(data), nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, importer.ErrEmptyInput),
		errors.Is(err, importer.ErrNoNameColumn):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
