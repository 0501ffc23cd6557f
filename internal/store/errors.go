package store

import "fmt"

// LoadError represents an error during skill set loading: a missing
// source path, a parse failure, or a malformed record.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("skill load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("skill load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
