package match

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linku/unime/core"
)

func testCatalog() []core.Program {
	return []core.Program{
		{
			Uni: "Waterworth", Name: "Mechanical Engineering",
			Academic: core.AcademicProfile{
				Interests:    []string{"Robotics", "Manufacturing"},
				LikedCourses: []string{"Calculus", "Physics"},
				MathEnjoyment: 5, CoopImportance: 5,
			},
			Campus: core.CampusProfile{
				ClassSizeBin: "200+", Setting: "suburban",
				HousingStyles: []string{"dorms"}, CampusSize: "Large",
			},
			Social: core.SocialProfile{
				NightScene: 4, Sports: []string{"hockey"},
				Clubs: []string{"robotics club"}, CulturalEventFreq: 3,
			},
		},
		{
			Uni: "Eastvale", Name: "English Literature",
			Academic: core.AcademicProfile{
				Interests:    []string{"Literature", "Creative Writing"},
				LikedCourses: []string{"English"},
				CreativityOrientation: 5, MathEnjoyment: 1,
			},
			Campus: core.CampusProfile{
				ClassSizeBin: "< 60", Setting: "urban",
				HousingStyles: []string{"apartments"}, CampusSize: "Small",
			},
			Social: core.SocialProfile{
				NightScene: 2, Clubs: []string{"book club"}, CulturalEventFreq: 5,
			},
		},
		{
			Uni: "Northgate", Name: "Computer Science",
			Academic: core.AcademicProfile{
				Interests:    []string{"Programming", "Machine Learning"},
				LikedCourses: []string{"Calculus", "Computer Programming"},
				MathEnjoyment: 5,
			},
			Campus: core.CampusProfile{
				ClassSizeBin: "60-200", Setting: "urban",
				HousingStyles: []string{"dorms", "apartments"}, CampusSize: "Medium",
			},
			Social: core.SocialProfile{
				NightScene: 3, Sports: []string{"soccer"},
				Clubs: []string{"chess"}, CulturalEventFreq: 3,
			},
		},
	}
}

func newTestMatcher(t *testing.T) *Matcher {
	t.Helper()
	matcher, err := New(WithPoolSize(2))
	require.NoError(t, err)
	t.Cleanup(matcher.Release)
	return matcher
}

func TestScoreOne(t *testing.T) {
	matcher := newTestMatcher(t)
	programs := testCatalog()

	t.Run("nil program", func(t *testing.T) {
		_, err := matcher.ScoreOne(nil, neutralAnswers())
		assert.ErrorIs(t, err, ErrNilProgram)
	})

	t.Run("nil answers", func(t *testing.T) {
		_, err := matcher.ScoreOne(&programs[0], nil)
		assert.ErrorIs(t, err, ErrNilAnswers)
	})

	t.Run("zero weights", func(t *testing.T) {
		answers := neutralAnswers()
		answers.WeightAcademic = 0
		answers.WeightCampus = 0
		answers.WeightSocial = 0
		_, err := matcher.ScoreOne(&programs[0], answers)
		assert.ErrorIs(t, err, ErrInvalidWeights)
	})

	t.Run("scores within bounds", func(t *testing.T) {
		m, err := matcher.ScoreOne(&programs[0], neutralAnswers())
		require.NoError(t, err)
		assert.Equal(t, "Waterworth", m.Uni)
		assert.Equal(t, "Mechanical Engineering", m.Program)
		for _, score := range []float64{m.Overall, m.Academic, m.Campus, m.Social} {
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	})

	t.Run("academic-only weights make overall the academic score", func(t *testing.T) {
		answers := neutralAnswers()
		answers.WeightAcademic = 1
		answers.WeightCampus = 0
		answers.WeightSocial = 0

		m, err := matcher.ScoreOne(&programs[0], answers)
		require.NoError(t, err)
		assert.InDelta(t, m.Academic, m.Overall, 1e-9)
	})
}

func TestRank(t *testing.T) {
	matcher := newTestMatcher(t)
	ctx := context.Background()

	t.Run("sorted descending", func(t *testing.T) {
		matches, err := matcher.Rank(ctx, testCatalog(), neutralAnswers(), 0)
		require.NoError(t, err)
		require.Len(t, matches, 3)
		for i := 1; i < len(matches); i++ {
			assert.GreaterOrEqual(t, matches[i-1].Overall, matches[i].Overall)
		}
	})

	t.Run("truncates to k", func(t *testing.T) {
		matches, err := matcher.Rank(ctx, testCatalog(), neutralAnswers(), 2)
		require.NoError(t, err)
		assert.Len(t, matches, 2)
	})

	t.Run("k larger than catalog", func(t *testing.T) {
		matches, err := matcher.Rank(ctx, testCatalog(), neutralAnswers(), 50)
		require.NoError(t, err)
		assert.Len(t, matches, 3)
	})

	t.Run("empty catalog", func(t *testing.T) {
		matches, err := matcher.Rank(ctx, nil, neutralAnswers(), 10)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("nil answers", func(t *testing.T) {
		_, err := matcher.Rank(ctx, testCatalog(), nil, 10)
		assert.ErrorIs(t, err, ErrNilAnswers)
	})

	t.Run("zero weights fail fast", func(t *testing.T) {
		answers := neutralAnswers()
		answers.WeightAcademic = 0
		answers.WeightCampus = 0
		answers.WeightSocial = 0
		_, err := matcher.Rank(ctx, testCatalog(), answers, 10)
		assert.ErrorIs(t, err, ErrInvalidWeights)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := matcher.Rank(cancelled, testCatalog(), neutralAnswers(), 10)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("interest alignment drives ranking", func(t *testing.T) {
		answers := neutralAnswers()
		answers.WeightAcademic = 1
		answers.WeightCampus = 0
		answers.WeightSocial = 0
		answers.Interests = []string{"Programming", "Machine Learning"}
		answers.LikedCourses = []string{"Calculus"}
		answers.MathEnjoyment = 5

		matches, err := matcher.Rank(ctx, testCatalog(), answers, 1)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "Northgate", matches[0].Uni)
	})
}

func TestRankTieStability(t *testing.T) {
	matcher := newTestMatcher(t)

	// Identical profiles under different names score identically; the
	// catalog order must decide their relative ranking every time.
	programs := []core.Program{
		{Uni: "Alpha", Name: "General Program"},
		{Uni: "Beta", Name: "General Program"},
		{Uni: "Gamma", Name: "General Program"},
	}

	for i := 0; i < 20; i++ {
		matches, err := matcher.Rank(context.Background(), programs, neutralAnswers(), 0)
		require.NoError(t, err)
		require.Len(t, matches, 3)
		assert.Equal(t, "Alpha", matches[0].Uni)
		assert.Equal(t, "Beta", matches[1].Uni)
		assert.Equal(t, "Gamma", matches[2].Uni)
	}
}

func TestRankScoreBoundsFuzz(t *testing.T) {
	matcher := newTestMatcher(t)
	rng := rand.New(rand.NewSource(42))

	tags := []string{"Robotics", "Programming", "Finance", "Literature", "Biology", "Nursing"}
	pick := func(n int) []string {
		out := make([]string, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, tags[rng.Intn(len(tags))])
		}
		return out
	}

	for i := 0; i < 50; i++ {
		programs := testCatalog()
		answers := &core.Answers{
			WeightAcademic: rng.Float64() + 0.01,
			WeightCampus:   rng.Float64(),
			WeightSocial:   rng.Float64(),

			LearningStyle:           rng.Intn(5) + 1,
			FirstYearSpecialization: rng.Intn(5) + 1,
			CoopImportance:          rng.Intn(5) + 1,
			ResearchImportance:      rng.Intn(5) + 1,
			CreativityOrientation:   rng.Intn(5) + 1,
			CareerCertainty:         rng.Intn(5) + 1,
			MathEnjoyment:           rng.Intn(5) + 1,
			CollaborationPreference: rng.Intn(5) + 1,

			Interests:    pick(rng.Intn(4)),
			LikedCourses: pick(rng.Intn(3)),
			Sports:       pick(rng.Intn(2)),
			Clubs:        pick(rng.Intn(2)),

			NightScene:     rng.Intn(5) + 1,
			CulturalEvents: rng.Intn(5) + 1,
		}

		matches, err := matcher.Rank(context.Background(), programs, answers, 0)
		require.NoError(t, err)
		for _, m := range matches {
			for _, score := range []float64{m.Overall, m.Academic, m.Campus, m.Social} {
				assert.GreaterOrEqual(t, score, 0.0, "match %s_%s", m.Uni, m.Program)
				assert.LessOrEqual(t, score, 1.0, "match %s_%s", m.Uni, m.Program)
			}
		}
	}
}
