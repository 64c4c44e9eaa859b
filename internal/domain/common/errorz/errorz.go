package errorz

import (
	"errors"
	"fmt"
)

var (
	Unauthenticated   = errors.New("unauthenticated")
	Forbidden         = errors.New("forbidden")
	AlreadyAffiliated = errors.New("already affiliated with a club")
	IncompleteProfile = errors.New("profile is missing required fields")
	Validation        = errors.New("validation failed")
	InvalidTransition = errors.New("invalid role transition")
	NotFound          = errors.New("not found")
	InvalidCode       = errors.New("invalid verification code")
	InvalidCredential = errors.New("invalid email or password")
	Store             = errors.New("storage unavailable")
)

// StepError wraps a store failure that happened partway through an
// ordered multi-document write. Steps before Index have already been
// committed; there is no rollback.
type StepError struct {
	Op    string
	Index int
	Step  string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: step %d (%s): %v", e.Op, e.Index, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
