package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Computer Science", "computer science"},
		{"hyphen to space", "co-op", "co op"},
		{"slash to space", "CS/Math", "cs math"},
		{"underscore to space", "small_town", "small town"},
		{"trims whitespace", "  urban  ", "urban"},
		{"empty string", "", ""},
		{"mixed separators", "Arts/Humanities-Design", "arts humanities design"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Computer Science", "co-op", "CS/Math", "  Urban  ", "small_town"}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestNormalizeSet(t *testing.T) {
	set := normalizeSet([]string{"Robotics", "robotics", "CO-OP", "", "  "})
	assert.Equal(t, map[string]bool{
		"robotics": true,
		"co op":    true,
	}, set)
}
