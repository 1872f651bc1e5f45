package framework

import (
	"errors"
	"fmt"
)

// Verdict is what a test case returns: either a pass or a failure, each with a human-readable
// message and optional details. The runner turns it into exactly one recorded Outcome.
type Verdict struct {
	Success bool
	Message string
	Details string
}

func Pass(message, details string) Verdict {
	return Verdict{Success: true, Message: message, Details: details}
}

func Fail(message, details string) Verdict {
	return Verdict{Success: false, Message: message, Details: details}
}

// FailWith converts an error returned by a harness or validation step into a failing Verdict.
// A *Failure keeps its own message and details; any other error is reported as a failed request.
func FailWith(err error) Verdict {
	var f *Failure
	if errors.As(err, &f) {
		return Fail(f.Message, f.Details)
	}
	return Fail("Request failed: "+err.Error(), "")
}

// Failure is an error that already knows how it should be presented in a test outcome.
type Failure struct {
	Message string
	Details string
}

func (f *Failure) Error() string {
	if f.Details == "" {
		return f.Message
	}
	return fmt.Sprintf("%s (%s)", f.Message, f.Details)
}
