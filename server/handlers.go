// Copyright 2025 LinkU Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/linku/unime/core"
	"github.com/linku/unime/match"
	"github.com/linku/unime/mentors"
	"github.com/linku/unime/report"
)

// handleMatch returns the top 10 matches as a bare JSON array.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req answersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	matches, err := s.matcher.Rank(r.Context(), s.programs, req.toAnswers(), quickMatchCount)
	if err != nil {
		s.rankError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, matches)
}

// handleFullMatches returns the top 100 matches in a success envelope.
func (s *Server) handleFullMatches(w http.ResponseWriter, r *http.Request) {
	var req answersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, envelope{
			"success": false, "error": "invalid request body",
		})
		return
	}

	matches, err := s.matcher.Rank(r.Context(), s.programs, req.toAnswers(), fullMatchCount)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, match.ErrInvalidWeights) {
			status = http.StatusBadRequest
		}
		s.logger.Error("failed to compute matches", "error", err)
		s.writeJSON(w, status, envelope{"success": false, "error": err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{"success": true, "matches": matches})
}

func (s *Server) rankError(w http.ResponseWriter, err error) {
	if errors.Is(err, match.ErrInvalidWeights) {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Error("failed to compute matches", "error", err)
	s.writeError(w, http.StatusInternalServerError, err.Error())
}

// chanceMeRequest carries the chance-me form fields. ECs arrive as a
// single comma-separated string.
type chanceMeRequest struct {
	School  string  `json:"school"`
	Program string  `json:"program"`
	Top6    float64 `json:"top6"`
	ECs     string  `json:"ecs"`
}

func (s *Server) handleChanceMe(w http.ResponseWriter, r *http.Request) {
	var req chanceMeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, envelope{
			"success": false, "error": "invalid request body",
		})
		return
	}
	if s.admissions == nil {
		s.writeJSON(w, http.StatusInternalServerError, envelope{
			"success": false, "error": "admissions data not configured",
		})
		return
	}

	var ecs []string
	for _, ec := range strings.Split(req.ECs, ",") {
		if ec = strings.TrimSpace(ec); ec != "" {
			ecs = append(ecs, ec)
		}
	}

	prediction, err := s.admissions.Predict(req.School, req.Program, req.Top6, ecs)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, envelope{
			"success": false, "error": err.Error(),
		})
		return
	}

	s.writeJSON(w, http.StatusOK, envelope{
		"success":    true,
		"prediction": prediction,
		"inputs": envelope{
			"university":       req.School,
			"program":          req.Program,
			"top6_average":     req.Top6,
			"extracurriculars": ecs,
		},
	})
}

// downloadPDFRequest carries previously computed matches back from the
// client together with the weights shown in the report header.
type downloadPDFRequest struct {
	Results []core.Match `json:"results"`
	Weights *struct {
		WA  float64 `json:"wa"`
		WC  float64 `json:"wc"`
		WSO float64 `json:"wso"`
	} `json:"weights"`
}

func (s *Server) handleDownloadPDF(w http.ResponseWriter, r *http.Request) {
	var req downloadPDFRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	weights := report.DefaultWeights()
	if req.Weights != nil {
		weights = report.Weights{
			Academic: req.Weights.WA,
			Campus:   req.Weights.WC,
			Social:   req.Weights.WSO,
		}
	}

	// Render to a buffer first so a generation failure can still produce
	// a JSON error response.
	var buf bytes.Buffer
	if err := report.WritePDF(&buf, req.Results, weights); err != nil {
		s.logger.Error("failed to generate report", "error", err)
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		`attachment; filename="`+report.Filename(time.Now())+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Error("failed to send report", "error", err)
	}
}

func (s *Server) handleMentors(w http.ResponseWriter, r *http.Request) {
	if s.mentors == nil {
		s.writeJSON(w, http.StatusOK, []mentors.Mentor{})
		return
	}
	s.writeJSON(w, http.StatusOK, s.mentors.All())
}

func (s *Server) handleProgramMentors(w http.ResponseWriter, r *http.Request) {
	if s.mentors == nil {
		s.writeJSON(w, http.StatusOK, []mentors.Mentor{})
		return
	}

	found := s.mentors.ForProgram(r.PathValue("key"))
	if found == nil {
		found = []mentors.Mentor{}
	}
	s.writeJSON(w, http.StatusOK, found)
}
