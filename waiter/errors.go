package waiter

import (
	"fmt"
	"time"
)

// ParseError records a Spec which could not be converted into a time
type ParseError struct {
	Input  string
	Reason string
	Err    error
}

// Error returns the string form of the error
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("improperly formatted input %q: %s", e.Input, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns the underlying error, if any
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NotFutureError records a Spec which resolved to a time which is not
// strictly later than the time at which it was checked
type NotFutureError struct {
	Target time.Time
	Now    time.Time
}

// Error returns the string form of the error
func (e *NotFutureError) Error() string {
	return fmt.Sprintf("the time %s is not in the future (now: %s)",
		e.Target.Format(time.DateTime), e.Now.Format(time.DateTime))
}

// FatalInputError is returned when no time to wait until could be found.
// Callers should treat it as a reason to stop.
type FatalInputError struct {
	Spec Spec
	Err  error
}

// Error returns the string form of the error
func (e *FatalInputError) Error() string {
	return fmt.Sprintf("invalid input (%q), unable to calculate wait time: %v",
		e.Spec.String(), e.Err)
}

// Unwrap returns the cause of the failure
func (e *FatalInputError) Unwrap() error {
	return e.Err
}
