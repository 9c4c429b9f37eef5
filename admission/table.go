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


package admission

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/linku/unime/match"
)

// Row is one program's historical admissions record.
type Row struct {
	University     string
	Program        string
	AdmitAverage   float64
	AcceptanceRate float64
}

// Table is an in-memory admissions dataset loaded from CSV.
type Table struct {
	rows []Row

	// Catalog-wide means, used when no row matches the request.
	globalAverage float64
	globalRate    float64
}

// LoadTable reads an admissionsData.csv file.
//
// Expected columns: university, program, admit_average, acceptance_rate.
// The first record is treated as a header when its numeric columns do not
// parse.
func LoadTable(filePath string) (*Table, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return ParseTable(bytes.NewReader(data))
}

// ParseTable reads admissions CSV rows from r.
func ParseTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 4
	reader.TrimLeadingSpace = true

	var rows []Row
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
		}

		avg, avgErr := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		rate, rateErr := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if avgErr != nil || rateErr != nil {
			if first {
				first = false
				continue
			}
			return nil, fmt.Errorf("%w: bad numeric field in row %q",
				ErrLoadFailed, record)
		}
		first = false

		rows = append(rows, Row{
			University:     strings.TrimSpace(record[0]),
			Program:        strings.TrimSpace(record[1]),
			AdmitAverage:   avg,
			AcceptanceRate: rate,
		})
	}
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}

	table := &Table{rows: rows}
	for _, row := range rows {
		table.globalAverage += row.AdmitAverage
		table.globalRate += row.AcceptanceRate
	}
	table.globalAverage /= float64(len(rows))
	table.globalRate /= float64(len(rows))
	return table, nil
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// lookup finds the first row whose university and program match the
// request as normalized substrings, in either direction. Returns false
// when nothing matches.
func (t *Table) lookup(university, program string) (Row, bool) {
	uni := match.Normalize(university)
	prog := match.Normalize(program)
	for _, row := range t.rows {
		if !looseContains(match.Normalize(row.University), uni) {
			continue
		}
		if looseContains(match.Normalize(row.Program), prog) {
			return row, true
		}
	}
	return Row{}, false
}

func looseContains(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
