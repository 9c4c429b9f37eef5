package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraitSimilarity(t *testing.T) {
	tests := []struct {
		name       string
		userVal    int
		programVal int
		want       float64
	}{
		{"neutral exact match", 3, 3, 0.6},
		{"low extreme exact match", 1, 1, 1.0},
		{"high extreme exact match", 5, 5, 1.0},
		{"opposite extremes", 1, 5, 0.0},
		{"opposite extremes reversed", 5, 1, 0.0},
		{"moderate answers", 2, 4, 0.4},
		{"confident user, neutral program", 5, 3, 0.5},
		{"neutral user, confident program", 3, 5, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TraitSimilarity(tt.userVal, tt.programVal)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestTraitSimilarityBounds(t *testing.T) {
	for user := 1; user <= 5; user++ {
		for program := 1; program <= 5; program++ {
			got := TraitSimilarity(user, program)
			assert.GreaterOrEqual(t, got, 0.0, "user=%d program=%d", user, program)
			assert.LessOrEqual(t, got, 1.0, "user=%d program=%d", user, program)
		}
	}
}

func TestCategoricalDistance(t *testing.T) {
	classSizes := []string{"< 60", "60-200", "200+"}

	tests := []struct {
		name    string
		user    string
		program string
		order   []string
		want    float64
	}{
		{"identical values", "60-200", "60-200", classSizes, 1.0},
		{"adjacent values", "< 60", "60-200", classSizes, 0.65},
		{"opposite ends", "< 60", "200+", classSizes, 0.3},
		{"unknown user value", "huge", "200+", classSizes, 0.5},
		{"unknown program value", "< 60", "huge", classSizes, 0.5},
		{"single element order", "only", "only", []string{"only"}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CategoricalDistance(tt.user, tt.program, tt.order)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCategoricalDistanceSymmetry(t *testing.T) {
	order := []string{"Small", "Medium", "Large"}
	for _, a := range order {
		for _, b := range order {
			assert.Equal(t,
				CategoricalDistance(a, b, order),
				CategoricalDistance(b, a, order))
		}
	}
}
