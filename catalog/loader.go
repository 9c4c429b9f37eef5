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


package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/linku/unime/core"
)

// LoadFile reads a catalog from a program_profiles.json file: a JSON array
// of program objects. Entries that fail domain validation are dropped with
// an error listing; absence of optional fields within an entry is handled
// by scoring-time defaults, not here.
func LoadFile(path string) ([]core.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a JSON catalog document.
func Parse(data []byte) ([]core.Program, error) {
	var programs []core.Program
	if err := json.Unmarshal(data, &programs); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(programs) == 0 {
		return nil, ErrEmptyCatalog
	}

	for i := range programs {
		if err := core.ValidateProgram(&programs[i]); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
	}
	return programs, nil
}
