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

import "math"

// TraitSimilarity scores how closely a program's 1-5 trait value matches the
// user's 1-5 answer, weighted by how confident the answer is.
//
// The base similarity is 1 - |program - user| / 4. The answer's distance
// from neutral (3) sets a confidence weight in [0.6, 1.0]: a neutral answer
// is a weak signal and must not swing the score as strongly as an extreme
// one, but the 0.6 floor keeps neutral answers contributing partial credit
// rather than zero.
//
// An exact match returns the confidence weight itself, so identical values
// score 1.0 only at the extremes of the scale.
func TraitSimilarity(userVal, programVal int) float64 {
	similarity := 1 - math.Abs(float64(programVal-userVal))/4.0

	// Importance ranges from 0.0 (neutral) to 1.0 (extreme).
	importance := math.Abs(float64(userVal-3)) / 2.0

	confidence := 0.6 + importance*0.4

	return similarity * confidence
}

// CategoricalDistance scores two values of an ordered categorical attribute
// by their index distance in order. Adjacent categories score higher than
// opposite ends; the 0.7 falloff factor caps the penalty so maximal distance
// never drops below 0.3.
//
// Returns 0.5 (neutral) when either value is absent from order, and 1.0 for
// a degenerate single-element order.
func CategoricalDistance(userPref, programVal string, order []string) float64 {
	userIdx := indexIn(order, userPref)
	programIdx := indexIn(order, programVal)
	if userIdx < 0 || programIdx < 0 {
		return 0.5
	}

	maxDistance := len(order) - 1
	if maxDistance == 0 {
		return 1.0
	}

	distance := math.Abs(float64(userIdx - programIdx))
	return 1.0 - (distance/float64(maxDistance))*0.7
}

func indexIn(order []string, value string) int {
	for i, v := range order {
		if v == value {
			return i
		}
	}
	return -1
}
