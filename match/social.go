package match

import "github.com/linku/unime/core"

// noSportsPreference is the sentinel tag users pick when sports do not
// matter to them; it makes the sports sub-score a non-factor.
const noSportsPreference = "none"

// scoreSocial is the unweighted mean of the night-scene, sports, clubs and
// cultural-event sub-scores.
func scoreSocial(program *core.Program, answers *core.Answers) float64 {
	nightScene := TraitSimilarity(
		core.TraitOrDefault(answers.NightScene),
		core.TraitOrDefault(program.Social.NightScene),
	)

	sports := sportsScore(answers.Sports, program.Social.Sports)
	clubs := clubsScore(answers.Clubs, program.Social.Clubs)

	cultural := TraitSimilarity(
		core.TraitOrDefault(answers.CulturalEvents),
		core.TraitOrDefault(program.Social.CulturalEventFreq),
	)

	return (nightScene + sports + clubs + cultural) / 4
}

// sportsScore is perfect when the user has no sports preference (empty set
// or "none"), otherwise overlap scaled by the user's preference count.
func sportsScore(userSports, programSports []string) float64 {
	userSet := normalizeSet(userSports)
	if len(userSet) == 0 || userSet[noSportsPreference] {
		return 1.0
	}

	programSet := normalizeSet(programSports)
	matches := 0
	for sport := range userSet {
		if programSet[sport] {
			matches++
		}
	}
	return float64(matches) / float64(max(len(userSet), 1))
}

// clubsScore is overlap scaled by the user's preference count, neutral when
// the user expressed no club preference.
func clubsScore(userClubs, programClubs []string) float64 {
	userSet := normalizeSet(userClubs)
	if len(userSet) == 0 {
		return 0.5
	}

	programSet := normalizeSet(programClubs)
	matches := 0
	for club := range userSet {
		if programSet[club] {
			matches++
		}
	}
	return float64(matches) / float64(len(userSet))
}
