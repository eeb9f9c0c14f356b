package model

import "fmt"

// ValidationError reports bad generator or loader input, such as requesting
// orders against an empty customer set. Fatal to the run; no retry.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + e.Msg
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IntegrityError reports a row whose foreign key target is absent. The loader
// surfaces these when an upstream invariant was violated.
type IntegrityError struct {
	Table string
	Key   string
	Err   error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("referential integrity violated in %s (row %s): %v", e.Table, e.Key, e.Err)
}

func (e *IntegrityError) Unwrap() error { return e.Err }

// ConflictError reports a duplicate primary key or unique value (email,
// transaction_id) presented to the store.
type ConflictError struct {
	Table string
	Key   string
	Err   error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("uniqueness violated in %s (row %s): %v", e.Table, e.Key, e.Err)
}

func (e *ConflictError) Unwrap() error { return e.Err }
