package admission

// Probability clamp bounds. Estimates never claim certainty either way.
const (
	minProbability = 0.02
	maxProbability = 0.98
)

// Per-unit adjustments applied to the row's historical acceptance rate.
const (
	averagePointWeight = 0.03
	ecWeight           = 0.01
	maxCountedECs      = 5
)

// Prediction is the outcome of a chance-me request.
type Prediction struct {
	Probability float64 `json:"probability"`
	Band        string  `json:"band"`
	MatchedRow  bool    `json:"matched_row"`
	University  string  `json:"university,omitempty"`
	Program     string  `json:"program,omitempty"`
}

// Predict estimates the admission probability for a program.
//
// The base is the matched row's historical acceptance rate, shifted by
// how far the applicant's top-6 average sits from the row's admitted
// average and by a small bonus per extracurricular (capped at five).
// When no row matches, the table-wide means are used instead.
func (t *Table) Predict(university, program string, average float64, ecs []string) (*Prediction, error) {
	if average < 0 || average > 100 {
		return nil, ErrInvalidAverage
	}

	row, matched := t.lookup(university, program)
	baseRate, admitAvg := t.globalRate, t.globalAverage
	if matched {
		baseRate, admitAvg = row.AcceptanceRate, row.AdmitAverage
	}

	counted := len(ecs)
	if counted > maxCountedECs {
		counted = maxCountedECs
	}

	probability := baseRate +
		(average-admitAvg)*averagePointWeight +
		float64(counted)*ecWeight
	probability = clamp(probability)

	prediction := &Prediction{
		Probability: probability,
		Band:        band(probability),
		MatchedRow:  matched,
	}
	if matched {
		prediction.University = row.University
		prediction.Program = row.Program
	}
	return prediction, nil
}

func clamp(p float64) float64 {
	if p < minProbability {
		return minProbability
	}
	if p > maxProbability {
		return maxProbability
	}
	return p
}

func band(p float64) string {
	switch {
	case p >= 0.75:
		return "Safety"
	case p >= 0.5:
		return "Likely"
	case p >= 0.25:
		return "Target"
	default:
		return "Reach"
	}
}
