package mentors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDirectory = `{
  "mentors": [
    {"id": 1, "name": "Avery", "school": "Waterworth University", "program": "Mechanical Engineering"},
    {"id": 2, "name": "Jordan", "school": "Waterworth University", "program": "Computer Science"},
    {"id": 3, "name": "Sam", "school": "Eastvale College", "program": "English Literature"},
    {"id": 4, "name": "Riley", "school": "Northgate Institute", "program": "Commerce"}
  ],
  "programMentors": {
    "Waterworth_Mechanical Engineering": [1],
    "Eastvale_English Literature": [3, 99]
  }
}`

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Parse([]byte(sampleDirectory))
	require.NoError(t, err)
	return store
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("{broken"))
	assert.ErrorIs(t, err, ErrLoadFailed)
}

func TestAll(t *testing.T) {
	store := testStore(t)

	all := store.All()
	require.Len(t, all, 4)
	assert.Equal(t, "Avery", all[0].Name)

	// Mutating the returned slice must not affect the store.
	all[0].Name = "changed"
	assert.Equal(t, "Avery", store.All()[0].Name)
}

func TestForProgramExactMatch(t *testing.T) {
	store := testStore(t)

	found := store.ForProgram("Waterworth_Mechanical Engineering")
	require.Len(t, found, 1)
	assert.Equal(t, 1, found[0].ID)
}

func TestForProgramIgnoresUnknownIDs(t *testing.T) {
	store := testStore(t)

	// ID 99 has no mentor entry; the one resolvable ID still counts as an
	// exact program match.
	found := store.ForProgram("Eastvale_English Literature")
	require.Len(t, found, 1)
	assert.Equal(t, 3, found[0].ID)
}

func TestForProgramUniversityFallback(t *testing.T) {
	store := testStore(t)

	// No program entry, but the university prefix matches two mentors.
	found := store.ForProgram("Waterworth_Chemical Engineering")
	require.Len(t, found, 2)
	assert.Equal(t, 1, found[0].ID)
	assert.Equal(t, 2, found[1].ID)
}

func TestForProgramRandomFallback(t *testing.T) {
	store := testStore(t)

	// Unknown university: falls back to two random mentors.
	found := store.ForProgram("Southfield_Physics")
	assert.Len(t, found, 2)
	for _, m := range found {
		assert.NotZero(t, m.ID)
	}
}

func TestForProgramEmptyDirectory(t *testing.T) {
	store, err := Parse([]byte(`{"mentors": [], "programMentors": {}}`))
	require.NoError(t, err)

	assert.Empty(t, store.ForProgram("Anywhere_Anything"))
}
