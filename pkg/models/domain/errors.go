package domain

import "fmt"

// UnknownIssueCodeError is returned when an issue code is not present in the
// static catalog. An unrecognized code must never contribute a zero penalty
// silently.
type UnknownIssueCodeError struct {
	Code string
}

func (e *UnknownIssueCodeError) Error() string {
	return fmt.Sprintf("unknown issue code %q", e.Code)
}

// InvalidInputError is a caller-contract violation, e.g. a missing audit
// dimension. A partial audit must never be reported as complete.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// InvalidEnumError is returned for severity or difficulty values outside
// their enums.
type InvalidEnumError struct {
	Kind  string
	Value int
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid %s value %d", e.Kind, e.Value)
}

// NegativeValueError is returned when a magnitude that must be non-negative
// is negative. Negative magnitudes indicate a caller bug and are rejected,
// not clamped.
type NegativeValueError struct {
	Field string
	Value float64
}

func (e *NegativeValueError) Error() string {
	return fmt.Sprintf("%s must be non-negative, got %v", e.Field, e.Value)
}
