package growth

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is matched by every precondition failure.
var ErrInvalidParameter = errors.New("growth: invalid parameter")

// Field names reported by InvalidParameterError.
const (
	FieldPrincipal            = "principal"
	FieldAnnualRatePercent    = "annualRatePercent"
	FieldCompoundingFrequency = "compoundingFrequency"
	FieldYears                = "years"
)

// InvalidParameterError names the offending field of a rejected Params.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("growth: invalid parameter %s: %s", e.Field, e.Reason)
}

func (e *InvalidParameterError) Unwrap() error {
	return ErrInvalidParameter
}

func invalid(field, format string, args ...any) error {
	return &InvalidParameterError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
