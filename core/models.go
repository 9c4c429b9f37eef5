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


package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for catalog entries.
// It is derived from the program's identity via content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// DefaultTrait is the neutral value assumed for any 1-5 trait that was
// not provided. Absence of a trait is never an error.
const DefaultTrait = 3

// AcademicProfile holds a program's academic attributes.
// Numeric traits are on a 1-5 scale; zero means "not provided" and is
// treated as DefaultTrait during scoring.
type AcademicProfile struct {
	Interests        []string `json:"interests"`
	LikedCourses     []string `json:"liked_hs_courses"`
	AltToEngineering []string `json:"alt_to_engineering"`

	LearningStyle           int `json:"learning_style"`
	FirstYearSpecialization int `json:"first_year_specialization"`
	CoopImportance          int `json:"coop_importance"`
	ResearchImportance      int `json:"research_importance"`
	CreativityOrientation   int `json:"creativity_orientation"`
	CareerCertainty         int `json:"career_certainty"`
	MathEnjoyment           int `json:"math_enjoyment"`
	CollaborationPreference int `json:"collaboration_preference"`
}

// CampusProfile holds a program's campus attributes.
type CampusProfile struct {
	ClassSizeBin  string   `json:"class_size_bin"`
	Setting       string   `json:"setting"`
	HousingStyles []string `json:"housing_styles"`
	CampusSize    string   `json:"campus_size"`
}

// SocialProfile holds a program's social attributes.
type SocialProfile struct {
	NightScene        int      `json:"night_scene"`
	Sports            []string `json:"sports"`
	Clubs             []string `json:"clubs"`
	CulturalEventFreq int      `json:"cultural_event_freq"`
}

// Program is a single catalog entry: one program offered by one university.
// Programs are loaded once and treated as read-only during ranking.
type Program struct {
	Uni      string          `json:"uni"`
	Name     string          `json:"program"`
	Academic AcademicProfile `json:"academic"`
	Campus   CampusProfile   `json:"campus"`
	Social   SocialProfile   `json:"social"`
}

// Key returns the "University_Program" key used by external lookup tables
// (e.g. the mentors table).
func (p *Program) Key() string {
	return p.Uni + "_" + p.Name
}

// ID returns the content-based identifier for the program.
func (p *Program) ID() ID {
	return IDFromContent(p.Uni + "|" + p.Name)
}

// Answers is one user's quiz submission. It lives for the duration of a
// single ranking run and is never persisted.
type Answers struct {
	// Facet weights. Must be non-negative; their sum is the
	// normalization denominator for the overall score.
	WeightAcademic float64
	WeightCampus   float64
	WeightSocial   float64

	// Academic traits, 1-5.
	LearningStyle           int
	FirstYearSpecialization int
	CoopImportance          int
	ResearchImportance      int
	CreativityOrientation   int
	CareerCertainty         int
	MathEnjoyment           int
	CollaborationPreference int

	// Tag sets. Order is irrelevant and duplicates collapse during
	// scoring; an empty set means "no preference".
	Interests     []string
	LikedCourses  []string
	Alternatives  []string
	HousingStyles []string
	Sports        []string
	Clubs         []string

	// Categorical singletons.
	ClassSize  string
	Setting    string
	CampusSize string

	// Social traits, 1-5.
	NightScene     int
	CulturalEvents int
}

// WeightTotal returns the sum of the three facet weights.
func (a *Answers) WeightTotal() float64 {
	return a.WeightAcademic + a.WeightCampus + a.WeightSocial
}

// Match is one scored catalog entry. All scores are intended to lie in
// [0, 1]; Overall is the weighted average of the three facet scores.
type Match struct {
	Uni      string  `json:"school"`
	Program  string  `json:"program"`
	Overall  float64 `json:"overall"`
	Academic float64 `json:"academic"`
	Campus   float64 `json:"campus"`
	Social   float64 `json:"social"`
}
