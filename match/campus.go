package match

import (
	"strings"

	"github.com/linku/unime/core"
)

// Ordered categorical value sets for the campus facet.
var (
	classSizeOrder  = []string{"< 60", "60-200", "200+"}
	settingOrder    = []string{"urban", "suburban", "small town", "rural"}
	campusSizeOrder = []string{"Small", "Medium", "Large"}
)

const defaultClassSizeBin = "60-200"
const defaultCampusSize = "Medium"

// scoreCampus is the unweighted mean of the class-size, setting, housing
// and campus-size sub-scores.
func scoreCampus(program *core.Program, answers *core.Answers) float64 {
	classSize := CategoricalDistance(
		answers.ClassSize,
		valueOrDefault(program.Campus.ClassSizeBin, defaultClassSizeBin),
		classSizeOrder,
	)

	setting := settingScore(answers.Setting, program.Campus.Setting)
	housing := housingScore(answers.HousingStyles, program.Campus.HousingStyles)

	campusSize := CategoricalDistance(
		capitalize(valueOrDefault(answers.CampusSize, defaultCampusSize)),
		capitalize(valueOrDefault(program.Campus.CampusSize, defaultCampusSize)),
		campusSizeOrder,
	)

	return (classSize + setting + housing + campusSize) / 4
}

// settingScore compares campus settings. Exact normalized match is perfect;
// settings known to the urban-rural spectrum score by ordered distance;
// otherwise same-side pairs (urban/suburban, small town/rural) get partial
// credit and cross-side pairs a floor score.
func settingScore(userSetting, programSetting string) float64 {
	user := Normalize(userSetting)
	program := Normalize(programSetting)

	if user == program {
		return 1.0
	}

	if indexIn(settingOrder, user) >= 0 && indexIn(settingOrder, program) >= 0 {
		return CategoricalDistance(user, program, settingOrder)
	}

	urbanSide := map[string]bool{"urban": true, "suburban": true}
	ruralSide := map[string]bool{"small town": true, "rural": true}

	if urbanSide[user] && urbanSide[program] {
		return 0.6
	}
	if ruralSide[user] && ruralSide[program] {
		return 0.6
	}
	return 0.2
}

// housingScore measures overlap between the user's preferred housing styles
// and what the program offers, scaled by the user's preference count.
// No user preference is neutral; a preference the program says nothing
// about scores low but not zero.
func housingScore(userStyles, programStyles []string) float64 {
	userSet := normalizeSet(userStyles)
	programSet := normalizeSet(programStyles)

	switch {
	case len(userSet) == 0:
		return 0.5
	case len(programSet) == 0:
		return 0.2
	}

	matches := 0
	for style := range userSet {
		if programSet[style] {
			matches++
		}
	}
	return float64(matches) / float64(len(userSet))
}

func valueOrDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// capitalize uppercases the first rune and lowercases the rest, matching
// how campus-size buckets are written in the catalog.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
