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


package mentors

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
)

// fallbackLimit bounds how many mentors the university and random
// fallbacks return.
const fallbackLimit = 2

// Mentor is a single entry in the mentor directory.
type Mentor struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	School  string `json:"school"`
	Program string `json:"program"`
	Year    string `json:"year,omitempty"`
	Bio     string `json:"bio,omitempty"`
	Avatar  string `json:"avatar,omitempty"`
}

// directory is the on-disk shape of mentors.json.
type directory struct {
	Mentors        []Mentor         `json:"mentors"`
	ProgramMentors map[string][]int `json:"programMentors"`
}

// Store holds the mentor directory in memory. The directory is small and
// read-only after load, so no locking is needed.
type Store struct {
	mentors        []Mentor
	programMentors map[string][]int
	logger         *slog.Logger
}

// Option configures a Store.
type Option func(*Store) error

// WithLogger sets the logger used by the store.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) error {
		if logger == nil {
			return fmt.Errorf("logger must not be nil")
		}
		s.logger = logger
		return nil
	}
}

// Load reads the mentor directory from a JSON file.
func Load(filePath string, opts ...Option) (*Store, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return Parse(data, opts...)
}

// Parse builds a Store from raw mentors.json bytes.
func Parse(data []byte, opts ...Option) (*Store, error) {
	var dir directory
	if err := json.Unmarshal(data, &dir); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	store := &Store{
		mentors:        dir.Mentors,
		programMentors: dir.ProgramMentors,
		logger:         slog.Default(),
	}
	if store.programMentors == nil {
		store.programMentors = map[string][]int{}
	}
	for _, opt := range opts {
		if err := opt(store); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// All returns every mentor in directory order.
func (s *Store) All() []Mentor {
	out := make([]Mentor, len(s.mentors))
	copy(out, s.mentors)
	return out
}

// ForProgram returns mentors for a "University_Program" key.
//
// Resolution order: mentors assigned to the exact program key, then up to
// two mentors from the same university (key prefix before the first '_',
// matched as a case-insensitive substring of the mentor's school), then up
// to two random mentors.
func (s *Store) ForProgram(programKey string) []Mentor {
	if ids, ok := s.programMentors[programKey]; ok && len(ids) > 0 {
		assigned := map[int]bool{}
		for _, id := range ids {
			assigned[id] = true
		}
		var matched []Mentor
		for _, m := range s.mentors {
			if assigned[m.ID] {
				matched = append(matched, m)
			}
		}
		if len(matched) > 0 {
			return matched
		}
	}

	university, _, _ := strings.Cut(programKey, "_")
	if university != "" {
		needle := strings.ToLower(university)
		var fromUni []Mentor
		for _, m := range s.mentors {
			if strings.Contains(strings.ToLower(m.School), needle) {
				fromUni = append(fromUni, m)
				if len(fromUni) == fallbackLimit {
					break
				}
			}
		}
		if len(fromUni) > 0 {
			s.logger.Debug("no program mentors, using university fallback",
				"program_key", programKey, "university", university)
			return fromUni
		}
	}

	s.logger.Debug("no program or university mentors, using random fallback",
		"program_key", programKey)
	return s.randomSample(fallbackLimit)
}

func (s *Store) randomSample(n int) []Mentor {
	if n > len(s.mentors) {
		n = len(s.mentors)
	}
	perm := rand.Perm(len(s.mentors))
	sample := make([]Mentor, 0, n)
	for _, idx := range perm[:n] {
		sample = append(sample, s.mentors[idx])
	}
	return sample
}
