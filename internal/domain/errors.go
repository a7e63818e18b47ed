package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCustomerNotFound  = errors.New("customer does not exist")
	ErrHatNotFound       = errors.New("hat does not exist")
	ErrInsufficientStock = errors.New("not enough stock for the hat")
)

// ValidationError reports a bad or missing input field, caught before any write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// DataAccessError wraps a driver failure (connectivity, constraint, bad
// statement) so callers can tell store trouble from business-rule errors.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("data access: %s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error { return e.Err }

func DataAccess(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DataAccessError{Op: op, Err: err}
}
