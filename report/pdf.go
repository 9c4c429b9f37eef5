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


package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/linku/unime/core"
)

// maxReportRows caps the table at the top 100 matches.
const maxReportRows = 100

// highlightThreshold marks facet scores worth calling out.
const highlightThreshold = 0.7

// Weights labels the facet weights printed in the report header.
type Weights struct {
	Academic float64
	Campus   float64
	Social   float64
}

// DefaultWeights mirrors the quiz defaults.
func DefaultWeights() Weights {
	return Weights{Academic: 0.6, Campus: 0.2, Social: 0.2}
}

var columnWidths = [7]float64{30, 110, 280, 60, 60, 60, 60}

var columnTitles = [7]string{
	"Rank", "University", "Program", "Academic", "Campus", "Social", "Total",
}

// WritePDF renders the ranked matches as a landscape-letter PDF table.
// At most the top 100 matches are included. Facet cells above 0.7 are
// highlighted.
func WritePDF(w io.Writer, matches []core.Match, weights Weights) error {
	if len(matches) > maxReportRows {
		matches = matches[:maxReportRows]
	}

	pdf := fpdf.New("L", "pt", "Letter", "")
	pdf.SetMargins(30, 30, 30)
	pdf.SetAutoPageBreak(true, 30)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 20, "UniMe: Your University Program Matches",
		"", 1, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 14, fmt.Sprintf("Academic Weight: %.2f", weights.Academic),
		"", 1, "L", false, 0, "")
	pdf.CellFormat(0, 14, fmt.Sprintf("Campus Life Weight: %.2f", weights.Campus),
		"", 1, "L", false, 0, "")
	pdf.CellFormat(0, 14, fmt.Sprintf("Social Weight: %.2f", weights.Social),
		"", 1, "L", false, 0, "")
	pdf.CellFormat(0, 14, "Generated: "+time.Now().Format("2006-01-02 15:04"),
		"", 1, "L", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 16, fmt.Sprintf("Top %d Program Matches", len(matches)),
		"", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeHeaderRow(pdf)

	pdf.SetFont("Helvetica", "", 9)
	for i, m := range matches {
		// Repeat the header after a page break.
		if pdf.GetY() > 560 {
			pdf.AddPage()
			writeHeaderRow(pdf)
			pdf.SetFont("Helvetica", "", 9)
		}

		shaded := i%2 == 1
		cells := [7]string{
			fmt.Sprintf("%d", i+1),
			m.Uni,
			m.Program,
			fmt.Sprintf("%.3f", m.Academic),
			fmt.Sprintf("%.3f", m.Campus),
			fmt.Sprintf("%.3f", m.Social),
			fmt.Sprintf("%.3f", m.Overall),
		}
		facets := [7]float64{0, 0, 0, m.Academic, m.Campus, m.Social, 0}
		aligns := [7]string{"C", "L", "L", "R", "R", "R", "R"}

		pdf.SetTextColor(0, 0, 0)
		for col := range cells {
			fill := shaded
			if col >= 3 && col <= 5 && facets[col] > highlightThreshold {
				pdf.SetFillColor(152, 251, 152)
				fill = true
			} else {
				pdf.SetFillColor(211, 211, 211)
			}
			pdf.CellFormat(columnWidths[col], 16, cells[col],
				"1", 0, aligns[col], fill, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

func writeHeaderRow(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(173, 216, 230)
	pdf.SetTextColor(255, 255, 255)
	for col, title := range columnTitles {
		pdf.CellFormat(columnWidths[col], 20, title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)
}

// Filename returns the attachment name for a generated report.
func Filename(now time.Time) string {
	return "LinkU_matches_" + now.Format("20060102_150405") + ".pdf"
}
