package admission

import "errors"

var (
	// ErrLoadFailed indicates the admissions table could not be read or
	// parsed.
	ErrLoadFailed = errors.New("failed to load admissions table")

	// ErrEmptyTable indicates the admissions table has no data rows.
	ErrEmptyTable = errors.New("admissions table is empty")

	// ErrInvalidAverage indicates the applicant average is outside [0,100].
	ErrInvalidAverage = errors.New("average must be between 0 and 100")
)
