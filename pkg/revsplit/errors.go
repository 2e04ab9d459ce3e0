package revsplit

import "fmt"

// InvalidInputError reports a total or share that is missing, non-finite or
// out of range. Field names follow the wire format (e.g. "admin_share").
type InvalidInputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s (got %v)", e.Field, e.Reason, e.Value)
}

// PercentageMismatchError reports percentage shares that do not sum to 100
// within SumTolerance after auto-balance resolution.
type PercentageMismatchError struct {
	Sum float64
}

func (e *PercentageMismatchError) Error() string {
	return fmt.Sprintf("percentage shares must sum to 100, got %.2f", e.Sum)
}

// IncompleteInputError reports a fixed-mode share that was not supplied.
type IncompleteInputError struct {
	Field string
}

func (e *IncompleteInputError) Error() string {
	return fmt.Sprintf("incomplete input: %s is required in fixed mode", e.Field)
}
