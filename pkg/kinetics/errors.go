package kinetics

import (
	"errors"
	"fmt"
)

// ErrDomain is matched by every error raised for physically meaningless input.
var ErrDomain = errors.New("kinetics: domain error")

// DomainError reports the parameter that made the model undefined.
type DomainError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("kinetics: %s = %g: %s", e.Field, e.Value, e.Reason)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}

func domainError(field string, value float64, reason string) error {
	return &DomainError{Field: field, Value: value, Reason: reason}
}
