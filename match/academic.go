package match

import (
	"strings"

	"github.com/linku/unime/core"
)

// Sub-score weights for the academic facet.
const (
	interestWeight = 0.4
	courseWeight   = 0.2
	traitWeight    = 0.3
	altWeight      = 0.1

	interestPartialCredit = 0.75
	coursePartialCredit   = 0.8

	matchBonusStep = 0.05
	matchBonusCap  = 0.15
)

// scoreAcademic combines interest, course, engineering-alternative and
// weighted numeric trait sub-scores into the academic facet score.
func scoreAcademic(program *core.Program, answers *core.Answers, weights *Weights) float64 {
	interest := interestScore(answers.Interests, program.Academic.Interests)
	course := courseScore(answers.LikedCourses, program.Academic.LikedCourses)
	alt := altScore(answers.Alternatives, program.Academic.AltToEngineering)
	traits := weightedTraitScore(program, answers, weights)

	return interest*interestWeight + course*courseWeight + alt + traits*traitWeight
}

// interestScore awards full credit for exact normalized matches between
// program and user interest tags, and partial credit when a program tag's
// mapped category appears among the user's interests (at most once per
// distinct category). The sum is scaled by the number of user interests,
// capped at 1.0, then topped up with a small bonus per distinct match.
func interestScore(userInterests, programInterests []string) float64 {
	if len(userInterests) == 0 {
		return 0
	}

	userSet := normalizeSet(userInterests)
	userRaw := make(map[string]bool, len(userInterests))
	for _, tag := range userInterests {
		userRaw[tag] = true
	}

	var total float64
	matched := make(map[string]bool)

	for _, tag := range programInterests {
		normalized := Normalize(tag)

		// Direct match earns full points.
		if userSet[normalized] {
			total += 1.0
			matched[normalized] = true
			continue
		}

		// Otherwise look for a category the user named. Scanning continues
		// past keywords whose category the user did not mention.
		for _, m := range interestKeywords {
			if !strings.Contains(normalized, m.keyword) {
				continue
			}
			categoryNormalized := Normalize(string(m.category))
			if userSet[categoryNormalized] {
				if !matched[categoryNormalized] {
					total += interestPartialCredit
					matched[categoryNormalized] = true
				}
				break
			}
			if userRaw[string(m.category)] {
				if !matched[string(m.category)] {
					total += interestPartialCredit
					matched[string(m.category)] = true
				}
				break
			}
		}
	}

	if total == 0 {
		return 0
	}

	base := min(total/float64(len(userInterests)), 1.0)
	bonus := min(float64(len(matched))*matchBonusStep, matchBonusCap)
	return min(base+bonus, 1.0)
}

// courseScore is the course analogue of interestScore with a flat partial
// credit per category match and no multi-match bonus.
func courseScore(userCourses, programCourses []string) float64 {
	if len(userCourses) == 0 || len(programCourses) == 0 {
		return 0
	}

	userSet := normalizeSet(userCourses)
	userRaw := make(map[string]bool, len(userCourses))
	for _, tag := range userCourses {
		userRaw[tag] = true
	}

	var total float64
	matched := make(map[string]bool)

	for _, tag := range programCourses {
		normalized := Normalize(tag)

		if userSet[normalized] {
			total += 1.0
			matched[normalized] = true
			continue
		}

		for _, m := range courseKeywords {
			if !strings.Contains(normalized, m.keyword) {
				continue
			}
			categoryNormalized := Normalize(m.category)
			if userSet[categoryNormalized] || userRaw[m.category] {
				if !matched[categoryNormalized] {
					total += coursePartialCredit
					matched[categoryNormalized] = true
				}
				break
			}
		}
	}

	ratio := total / float64(max(len(userCourses), 1))
	return min(ratio, 1.0)
}

// altScore gives a small boost when the program's "alternative to
// engineering" tags overlap the user's.
func altScore(userAlts, programAlts []string) float64 {
	if len(userAlts) == 0 {
		return 0
	}

	programSet := normalizeSet(programAlts)
	userSet := normalizeSet(userAlts)

	matches := 0
	for tag := range userSet {
		if programSet[tag] {
			matches++
		}
	}

	return float64(matches) / float64(max(len(userAlts), 1)) * altWeight
}

// weightedTraitScore compares the eight academic traits with confidence
// weighting and aggregates them under the effective per-trait weights
// (base weights adjusted for the detected program type).
func weightedTraitScore(program *core.Program, answers *core.Answers, tables *Weights) float64 {
	programType, detected := DetectProgramType(program)
	weights := tables.effectiveTraitWeights(answers, programType, detected)

	userVals := map[string]int{
		traitLearningStyle:           answers.LearningStyle,
		traitFirstYearSpecialization: answers.FirstYearSpecialization,
		traitCoopImportance:          answers.CoopImportance,
		traitResearchImportance:      answers.ResearchImportance,
		traitCreativityOrientation:   answers.CreativityOrientation,
		traitCareerCertainty:         answers.CareerCertainty,
		traitMathEnjoyment:           answers.MathEnjoyment,
		traitCollaborationPreference: answers.CollaborationPreference,
	}
	programVals := map[string]int{
		traitLearningStyle:           program.Academic.LearningStyle,
		traitFirstYearSpecialization: program.Academic.FirstYearSpecialization,
		traitCoopImportance:          program.Academic.CoopImportance,
		traitResearchImportance:      program.Academic.ResearchImportance,
		traitCreativityOrientation:   program.Academic.CreativityOrientation,
		traitCareerCertainty:         program.Academic.CareerCertainty,
		traitMathEnjoyment:           program.Academic.MathEnjoyment,
		traitCollaborationPreference: program.Academic.CollaborationPreference,
	}

	var weightedSum, totalWeight float64
	for _, trait := range traitOrder {
		similarity := TraitSimilarity(
			core.TraitOrDefault(userVals[trait]),
			core.TraitOrDefault(programVals[trait]),
		)
		weightedSum += similarity * weights[trait]
		totalWeight += weights[trait]
	}

	return weightedSum / totalWeight
}
