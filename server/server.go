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
	"fmt"
	"log/slog"
	"net/http"

	"github.com/linku/unime/admission"
	"github.com/linku/unime/core"
	"github.com/linku/unime/match"
	"github.com/linku/unime/mentors"
)

// Result counts for the two match endpoints.
const (
	quickMatchCount = 10
	fullMatchCount  = 100
)

// Server wires the scoring engine and data stores to HTTP handlers.
// Mentors and admissions are optional; their endpoints return errors
// when the backing data was not configured.
type Server struct {
	matcher    *match.Matcher
	programs   []core.Program
	mentors    *mentors.Store
	admissions *admission.Table
	logger     *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger sets the logger used for request logging and errors.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithMentors attaches the mentor directory.
func WithMentors(store *mentors.Store) Option {
	return func(s *Server) error {
		s.mentors = store
		return nil
	}
}

// WithAdmissions attaches the admissions table.
func WithAdmissions(table *admission.Table) Option {
	return func(s *Server) error {
		s.admissions = table
		return nil
	}
}

// New creates a Server over a catalog snapshot.
func New(matcher *match.Matcher, programs []core.Program, opts ...Option) (*Server, error) {
	if matcher == nil {
		return nil, fmt.Errorf("matcher must not be nil")
	}

	s := &Server{
		matcher:  matcher,
		programs: programs,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Routes returns the HTTP handler with all API routes registered.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/match", s.handleMatch)
	mux.HandleFunc("POST /api/full-matches", s.handleFullMatches)
	mux.HandleFunc("POST /api/chance-me", s.handleChanceMe)
	mux.HandleFunc("POST /api/download-pdf", s.handleDownloadPDF)
	mux.HandleFunc("GET /api/mentors", s.handleMentors)
	// Wildcard because program keys can contain slashes.
	mux.HandleFunc("GET /api/program-mentors/{key...}", s.handleProgramMentors)
	return s.logRequests(mux)
}
