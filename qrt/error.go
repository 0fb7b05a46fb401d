package qrt

import (
	"fmt"
	"strings"
)

type (
	AttemptError struct {
		Mode  AlignmentMode
		Cause error
	}
	// ErrUnresolvedAlignment is returned when neither directory layout decodes.
	ErrUnresolvedAlignment struct {
		Attempts []AttemptError
	}
)

func (r AttemptError) Error() string {
	return fmt.Sprintf("%s attempt: %v", r.Mode, r.Cause)
}

func (r AttemptError) Unwrap() error {
	return r.Cause
}

func (r ErrUnresolvedAlignment) Error() string {
	msgs := make([]string, 0, len(r.Attempts))
	for _, attempt := range r.Attempts {
		msgs = append(msgs, attempt.Error())
	}
	return "unresolved alignment: " + strings.Join(msgs, "; ")
}

// Unwrap returns the error of the last attempt.
func (r ErrUnresolvedAlignment) Unwrap() error {
	if len(r.Attempts) == 0 {
		return nil
	}
	return r.Attempts[len(r.Attempts)-1]
}
