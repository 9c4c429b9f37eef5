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


package match

import "errors"

var (
	// ErrInvalidWeights is returned when the facet weights sum to zero,
	// which would make the overall score undefined.
	ErrInvalidWeights = errors.New("invalid weights: facet weights must not sum to zero")

	// ErrNilAnswers is returned when answers are not provided.
	ErrNilAnswers = errors.New("answers required")

	// ErrNilProgram is returned when a program is not provided.
	ErrNilProgram = errors.New("program required")
)
