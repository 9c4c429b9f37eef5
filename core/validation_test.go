package core

import (
	"errors"
	"testing"
)

func TestValidateProgram(t *testing.T) {
	tests := []struct {
		name    string
		program *Program
		wantErr error
	}{
		{
			name:    "valid program",
			program: &Program{Uni: "Waterworth", Name: "Mechanical Engineering"},
			wantErr: nil,
		},
		{
			name:    "nil program",
			program: nil,
			wantErr: ErrInvalidProgram,
		},
		{
			name:    "empty university",
			program: &Program{Uni: "", Name: "Mechanical Engineering"},
			wantErr: ErrEmptyUni,
		},
		{
			name:    "empty program name",
			program: &Program{Uni: "Waterworth", Name: ""},
			wantErr: ErrEmptyProgramName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProgram(tt.program)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateProgram() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAnswers(t *testing.T) {
	tests := []struct {
		name    string
		answers *Answers
		wantErr error
	}{
		{
			name:    "valid answers",
			answers: &Answers{WeightAcademic: 1, WeightCampus: 1, WeightSocial: 1},
			wantErr: nil,
		},
		{
			name:    "zero weights are valid here",
			answers: &Answers{},
			wantErr: nil,
		},
		{
			name:    "nil answers",
			answers: nil,
			wantErr: ErrInvalidAnswers,
		},
		{
			name:    "negative weight",
			answers: &Answers{WeightAcademic: -0.1},
			wantErr: ErrNegativeWeight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAnswers(tt.answers)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAnswers() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTraitOrDefault(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 3},
		{1, 1},
		{3, 3},
		{5, 5},
	}

	for _, tt := range tests {
		if got := TraitOrDefault(tt.in); got != tt.want {
			t.Errorf("TraitOrDefault(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
