package grana

import "fmt"

// ValidationError reports why a draft transaction was rejected. It is
// always produced before any persistence happens, so a rejected draft
// never leaves a partial write behind.
type ValidationError struct {
	Field  string // the offending field, e.g. "amount"
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid transaction: %s %s", e.Field, e.Reason)
}

func errMissingField(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "is required"}
}

func errInvalidAmount(value string) *ValidationError {
	return &ValidationError{Field: "amount", Reason: fmt.Sprintf("%q is not a positive number", value)}
}

func errInvalidDate(value string) *ValidationError {
	return &ValidationError{Field: "date", Reason: fmt.Sprintf("%q is not a valid %s date", value, DayFormat)}
}

// StorageError reports a failed read or write against the persistence
// layer. It is non-fatal by contract: the in-memory ledger stays usable
// and the persisted blob simply remains stale until the next successful
// write.
type StorageError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// DateParseError aborts an aggregation when a persisted date cannot be
// ordered chronologically. Silently miscomputing the order would be
// worse than failing, so the whole series fails.
type DateParseError struct {
	Input string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("cannot order ledger by date: %q: %v", e.Input, e.Err)
}

func (e *DateParseError) Unwrap() error { return e.Err }
