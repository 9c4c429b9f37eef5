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

import "errors"

// Domain validation errors
var (
	// ErrInvalidProgram indicates a Program failed validation.
	ErrInvalidProgram = errors.New("invalid program")

	// ErrInvalidAnswers indicates an Answers value failed validation.
	ErrInvalidAnswers = errors.New("invalid answers")

	// ErrEmptyUni indicates the Uni field is empty.
	ErrEmptyUni = errors.New("university name cannot be empty")

	// ErrEmptyProgramName indicates the program Name field is empty.
	ErrEmptyProgramName = errors.New("program name cannot be empty")

	// ErrNegativeWeight indicates a facet weight is negative.
	ErrNegativeWeight = errors.New("facet weights cannot be negative")
)
