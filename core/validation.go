// Copyright 2025 LinkU Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidateProgram validates a Program according to domain rules.
//
// Validation rules:
//   - Uni must not be empty
//   - Name must not be empty
//
// NOT validated (handled by scoring-time defaults):
//   - numeric traits (0 means "not provided", defaulted to DefaultTrait)
//   - tag sets (empty means "no preference")
//   - categorical fields (empty means "unknown", scored as neutral)
func ValidateProgram(program *Program) error {
	if program == nil {
		return fmt.Errorf("%w: program is nil", ErrInvalidProgram)
	}

	if program.Uni == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProgram, ErrEmptyUni)
	}

	if program.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProgram, ErrEmptyProgramName)
	}

	return nil
}

// ValidateAnswers validates an Answers value according to domain rules.
//
// Validation rules:
//   - facet weights must not be negative
//
// NOT validated (caller responsibility per the scoring contract):
//   - trait values outside 1-5 (similarity formulas degrade gracefully)
//   - zero total weight (rejected by the ranking engine, which owns
//     that failure mode)
func ValidateAnswers(answers *Answers) error {
	if answers == nil {
		return fmt.Errorf("%w: answers is nil", ErrInvalidAnswers)
	}

	if answers.WeightAcademic < 0 || answers.WeightCampus < 0 || answers.WeightSocial < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidAnswers, ErrNegativeWeight)
	}

	return nil
}

// TraitOrDefault returns the trait value, substituting DefaultTrait when
// the value was not provided (zero).
func TraitOrDefault(v int) int {
	if v == 0 {
		return DefaultTrait
	}
	return v
}
