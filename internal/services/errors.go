package services

import (
	"errors"
	"fmt"
)

var (
	// ErrLoadFailure matches every error caused by a failed dataset load.
	ErrLoadFailure = errors.New("load customer directory failed")
	// ErrLoadTimeout matches load failures caused by a deadline.
	ErrLoadTimeout = errors.New("load customer directory timed out")
)

// LoadError reports why the directory could not be loaded.
// A later call may retry; a LoadError is never cached.
type LoadError struct {
	Err     error
	Timeout bool
}

func (e *LoadError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("%v: %v", ErrLoadTimeout, e.Err)
	}
	return fmt.Sprintf("%v: %v", ErrLoadFailure, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool {
	return target == ErrLoadFailure || (e.Timeout && target == ErrLoadTimeout)
}
