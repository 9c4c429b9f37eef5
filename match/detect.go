package match

import (
	"strings"

	"github.com/linku/unime/core"
)

// nameHint associates a category with substrings of program display names
// that strongly suggest it. Declared as an ordered list so detection
// behaves the same on every run.
type nameHint struct {
	category Category
	hints    []string
}

var nameHints = []nameHint{
	{CategoryEngineering, []string{"engineering", "mechanical", "electrical", "civil", "chemical"}},
	{CategoryCSMath, []string{"computer", "software", "math", "data science", "computing"}},
	{CategoryBusiness, []string{"business", "commerce", "management", "finance", "accounting", "marketing"}},
	{CategoryArts, []string{"arts", "humanities", "english", "philosophy", "history", "music"}},
	{CategorySciences, []string{"science", "biology", "chemistry", "physics", "environmental"}},
	{CategoryHealth, []string{"health", "nursing", "medicine", "kinesiology", "pharmacy"}},
}

// Name-hint matches outweigh interest-tag matches: the program's display
// name is the more authoritative signal.
const (
	interestHitScore = 1
	nameHintScore    = 2
)

// DetectProgramType infers the dominant category of a program from its
// declared interest tags and its display name. Each interest tag contributes
// one point for its first matching interest keyword; each name hint found in
// the program name contributes two points.
//
// Returns false when nothing matched. Ties resolve to the first category in
// the canonical category order.
func DetectProgramType(program *core.Program) (Category, bool) {
	counts := make(map[Category]int)

	for _, interest := range program.Academic.Interests {
		lower := strings.ToLower(interest)
		for _, m := range interestKeywords {
			if strings.Contains(lower, m.keyword) {
				counts[m.category] += interestHitScore
				break
			}
		}
	}

	programName := strings.ToLower(program.Name)
	for _, nh := range nameHints {
		for _, hint := range nh.hints {
			if strings.Contains(programName, hint) {
				counts[nh.category] += nameHintScore
			}
		}
	}

	var best Category
	bestCount := 0
	for _, category := range categoryOrder {
		if counts[category] > bestCount {
			best = category
			bestCount = counts[category]
		}
	}

	if bestCount == 0 {
		return "", false
	}
	return best, true
}
