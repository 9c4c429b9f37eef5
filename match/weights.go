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


package match

import "github.com/linku/unime/core"

// Trait names shared by the base weight table and the program-type
// multiplier table. The slice fixes the iteration order used when
// aggregating the weighted trait score.
const (
	traitLearningStyle           = "learning_style"
	traitFirstYearSpecialization = "first_year_specialization"
	traitCoopImportance          = "coop_importance"
	traitResearchImportance      = "research_importance"
	traitCreativityOrientation   = "creativity_orientation"
	traitCareerCertainty         = "career_certainty"
	traitMathEnjoyment           = "math_enjoyment"
	traitCollaborationPreference = "collaboration_preference"
)

var traitOrder = []string{
	traitLearningStyle,
	traitFirstYearSpecialization,
	traitCoopImportance,
	traitResearchImportance,
	traitCreativityOrientation,
	traitCareerCertainty,
	traitMathEnjoyment,
	traitCollaborationPreference,
}

// TraitWeights maps trait names to their aggregation weight.
type TraitWeights map[string]float64

// Weights holds the trait weight tables as data: the base per-trait
// weights and the per-program-type multipliers. Pass a partial Weights
// to WithWeights to override individual entries; zero values keep the
// defaults.
type Weights struct {
	Base            TraitWeights
	TypeMultipliers map[Category]TraitWeights
}

// DefaultWeights returns the built-in weight tables. Multipliers apply
// only to the traits they name; other traits keep their base weight.
func DefaultWeights() *Weights {
	return &Weights{
		Base: TraitWeights{
			traitLearningStyle:           1.2,
			traitFirstYearSpecialization: 1.0,
			traitCoopImportance:          1.0,
			traitResearchImportance:      1.0,
			traitCreativityOrientation:   1.0,
			traitCareerCertainty:         1.0,
			traitMathEnjoyment:           1.3,
			traitCollaborationPreference: 1.0,
		},
		TypeMultipliers: map[Category]TraitWeights{
			CategoryEngineering: {
				traitMathEnjoyment:         1.8,
				traitLearningStyle:         1.4, // hands-on matters for engineering
				traitCoopImportance:        1.3,
				traitCreativityOrientation: 1.0,
			},
			CategoryCSMath: {
				traitMathEnjoyment:           1.7,
				traitCollaborationPreference: 1.2,
				traitCoopImportance:          1.3,
			},
			CategoryBusiness: {
				traitCollaborationPreference: 1.5,
				traitCareerCertainty:         1.3,
				traitCoopImportance:          1.4,
			},
			CategoryArts: {
				traitCreativityOrientation: 1.8,
				traitMathEnjoyment:         0.7, // less important
				traitResearchImportance:    1.3,
			},
			CategorySciences: {
				traitResearchImportance: 1.6,
				traitMathEnjoyment:      1.4,
				traitLearningStyle:      1.3,
			},
			CategoryHealth: {
				traitCollaborationPreference: 1.4,
				traitResearchImportance:      1.3,
				traitCareerCertainty:         1.2,
			},
		},
	}
}

// MergeWeights overlays the non-zero entries of override onto a copy of
// base. A nil override returns a plain copy; trait names base does not
// know are ignored, so a typo cannot introduce a dead weight.
func MergeWeights(base, override *Weights) *Weights {
	if base == nil {
		base = DefaultWeights()
	}

	merged := &Weights{
		Base:            make(TraitWeights, len(base.Base)),
		TypeMultipliers: make(map[Category]TraitWeights, len(base.TypeMultipliers)),
	}
	for trait, weight := range base.Base {
		merged.Base[trait] = weight
	}
	for category, multipliers := range base.TypeMultipliers {
		copied := make(TraitWeights, len(multipliers))
		for trait, multiplier := range multipliers {
			copied[trait] = multiplier
		}
		merged.TypeMultipliers[category] = copied
	}

	if override == nil {
		return merged
	}

	for trait, weight := range override.Base {
		if _, known := merged.Base[trait]; known && weight != 0 {
			merged.Base[trait] = weight
		}
	}
	for category, multipliers := range override.TypeMultipliers {
		target, ok := merged.TypeMultipliers[category]
		if !ok {
			continue
		}
		for trait, multiplier := range multipliers {
			if _, known := merged.Base[trait]; known && multiplier != 0 {
				target[trait] = multiplier
			}
		}
	}
	return merged
}

// Boost factors applied when the user rates a trait's importance >= 4.
const (
	importanceBoostThreshold = 4

	coopBoost       = 1.5
	researchBoost   = 1.5
	creativityBoost = 1.2
)

// baseTraitWeights builds the per-run trait weights. Traits the user rated
// as highly important get boosted before any program-type adjustment.
func (w *Weights) baseTraitWeights(answers *core.Answers) TraitWeights {
	weights := make(TraitWeights, len(w.Base))
	for trait, weight := range w.Base {
		weights[trait] = weight
	}
	if answers.CoopImportance >= importanceBoostThreshold {
		weights[traitCoopImportance] *= coopBoost
	}
	if answers.ResearchImportance >= importanceBoostThreshold {
		weights[traitResearchImportance] *= researchBoost
	}
	if answers.CreativityOrientation >= importanceBoostThreshold {
		weights[traitCreativityOrientation] *= creativityBoost
	}
	return weights
}

// effectiveTraitWeights applies the program-type multipliers for the
// detected type on top of the base weights.
func (w *Weights) effectiveTraitWeights(answers *core.Answers, programType Category, detected bool) TraitWeights {
	weights := w.baseTraitWeights(answers)
	if !detected {
		return weights
	}
	multipliers, ok := w.TypeMultipliers[programType]
	if !ok {
		return weights
	}
	for trait, multiplier := range multipliers {
		if _, known := weights[trait]; known {
			weights[trait] *= multiplier
		}
	}
	return weights
}
