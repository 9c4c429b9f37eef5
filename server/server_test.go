package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linku/unime/admission"
	"github.com/linku/unime/core"
	"github.com/linku/unime/match"
	"github.com/linku/unime/mentors"
)

func testPrograms() []core.Program {
	return []core.Program{
		{
			Uni: "Waterworth", Name: "Mechanical Engineering",
			Academic: core.AcademicProfile{
				Interests:     []string{"Robotics"},
				LikedCourses:  []string{"Calculus", "Physics"},
				MathEnjoyment: 5,
			},
			Campus: core.CampusProfile{ClassSizeBin: "200+", Setting: "suburban"},
			Social: core.SocialProfile{NightScene: 4},
		},
		{
			Uni: "Eastvale", Name: "English Literature",
			Academic: core.AcademicProfile{
				Interests: []string{"Literature"},
			},
			Campus: core.CampusProfile{ClassSizeBin: "< 60", Setting: "urban"},
		},
	}
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	matcher, err := match.New(match.WithPoolSize(2))
	require.NoError(t, err)
	t.Cleanup(matcher.Release)

	mentorStore, err := mentors.Parse([]byte(`{
		"mentors": [
			{"id": 1, "name": "Avery", "school": "Waterworth", "program": "Mechanical Engineering"}
		],
		"programMentors": {"Waterworth_Mechanical Engineering": [1]}
	}`))
	require.NoError(t, err)

	admissions, err := admission.ParseTable(strings.NewReader(
		"Waterworth,Mechanical Engineering,92,0.35\n"))
	require.NoError(t, err)

	srv, err := New(matcher, testPrograms(),
		WithMentors(mentorStore),
		WithAdmissions(admissions),
	)
	require.NoError(t, err)
	return srv.Routes()
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleMatch(t *testing.T) {
	handler := newTestServer(t)

	rec := postJSON(t, handler, "/api/match",
		`{"wa": 1, "wc": 0.5, "wso": 0.5, "AA": ["Robotics"], "ME": 5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var matches []core.Match
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
	require.Len(t, matches, 2)
	assert.Equal(t, "Waterworth", matches[0].Uni)
	assert.GreaterOrEqual(t, matches[0].Overall, matches[1].Overall)
}

func TestHandleMatchDefaults(t *testing.T) {
	handler := newTestServer(t)

	// An empty submission is valid: weights default to 1 and traits to 3.
	rec := postJSON(t, handler, "/api/match", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var matches []core.Match
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
	assert.Len(t, matches, 2)
}

func TestHandleMatchErrors(t *testing.T) {
	handler := newTestServer(t)

	t.Run("malformed body", func(t *testing.T) {
		rec := postJSON(t, handler, "/api/match", `{broken`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body["error"])
	})

	t.Run("zero weights", func(t *testing.T) {
		rec := postJSON(t, handler, "/api/match", `{"wa": 0, "wc": 0, "wso": 0}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleFullMatches(t *testing.T) {
	handler := newTestServer(t)

	rec := postJSON(t, handler, "/api/full-matches", `{"wa": 1, "wc": 1, "wso": 1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool         `json:"success"`
		Matches []core.Match `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Matches, 2)
}

func TestHandleChanceMe(t *testing.T) {
	handler := newTestServer(t)

	rec := postJSON(t, handler, "/api/chance-me",
		`{"school": "Waterworth", "program": "Mechanical Engineering", "top6": 95, "ecs": "robotics, debate"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success    bool                  `json:"success"`
		Prediction *admission.Prediction `json:"prediction"`
		Inputs     struct {
			Extracurriculars []string `json:"extracurriculars"`
		} `json:"inputs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.NotNil(t, body.Prediction)
	assert.True(t, body.Prediction.MatchedRow)
	assert.Greater(t, body.Prediction.Probability, 0.35)
	assert.Equal(t, []string{"robotics", "debate"}, body.Inputs.Extracurriculars)
}

func TestHandleChanceMeInvalidAverage(t *testing.T) {
	handler := newTestServer(t)

	rec := postJSON(t, handler, "/api/chance-me",
		`{"school": "Waterworth", "program": "Mechanical Engineering", "top6": 150}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}

func TestHandleDownloadPDF(t *testing.T) {
	handler := newTestServer(t)

	rec := postJSON(t, handler, "/api/download-pdf", `{
		"results": [
			{"school": "Waterworth", "program": "Mechanical Engineering",
			 "overall": 0.8, "academic": 0.9, "campus": 0.6, "social": 0.5}
		],
		"weights": {"wa": 0.6, "wc": 0.2, "wso": 0.2}
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "LinkU_matches_")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
}

func TestHandleMentors(t *testing.T) {
	handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/mentors", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var all []mentors.Mentor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 1)
	assert.Equal(t, "Avery", all[0].Name)
}

func TestHandleProgramMentors(t *testing.T) {
	handler := newTestServer(t)

	// The program key carries a space, so the request target must escape
	// it; the route's wildcard decodes it back before the lookup.
	req := httptest.NewRequest(http.MethodGet,
		"/api/program-mentors/Waterworth_Mechanical%20Engineering", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var found []mentors.Mentor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
	require.Len(t, found, 1)
	assert.Equal(t, 1, found[0].ID)
}

func TestDecodeAnswers(t *testing.T) {
	answers, err := DecodeAnswers(strings.NewReader(
		`{"wa": 0.6, "AA": ["Robotics"], "ME": 5, "CSB": "< 60"}`))
	require.NoError(t, err)

	assert.Equal(t, 0.6, answers.WeightAcademic)
	assert.Equal(t, 1.0, answers.WeightCampus)
	assert.Equal(t, 5, answers.MathEnjoyment)
	assert.Equal(t, 3, answers.LearningStyle)
	assert.Equal(t, []string{"Robotics"}, answers.Interests)
	assert.Equal(t, "< 60", answers.ClassSize)
}
