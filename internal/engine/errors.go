package engine

import (
	"errors"
	"fmt"

	"github.com/piwi3910/cubefit/internal/model"
)

// Cause classifies a placement failure. Causes are errors themselves, so
// callers can test a failure with errors.Is(err, CauseWidthExceeded).
type Cause string

const (
	CauseInvalidConstraint      Cause = "invalid-constraint"
	CauseWeightExceeded         Cause = "weight-exceeded"
	CauseLengthExceeded         Cause = "length-exceeded"
	CauseWidthExceeded          Cause = "width-exceeded"
	CauseHeightExceeded         Cause = "height-exceeded"
	CauseNoRemainingCapacity    Cause = "no-remaining-capacity"
	CauseOrientationUnsupported Cause = "orientation-unsupported"
	CauseEmptySpaceSplit        Cause = "empty-space-split"
)

func (c Cause) Error() string { return string(c) }

// PlacementError reports why an item could not be placed. Space is the
// summary of the space that rejected the item, empty when no space existed yet.
type PlacementError struct {
	Cause   Cause
	Space   string
	Item    *model.Item
	Message string
}

func (e *PlacementError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Cause, e.Message)
	if e.Space != "" {
		msg = e.Space + ". " + msg
	}
	if e.Item != nil {
		msg += " " + e.Item.String()
	}
	return msg
}

func (e *PlacementError) Unwrap() error {
	return e.Cause
}

func newPlacementError(cause Cause, summary string, item *model.Item, format string, args ...any) *PlacementError {
	return &PlacementError{
		Cause:   cause,
		Space:   summary,
		Item:    item,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrNoCandidate is returned, wrapped in a SelectionError, when none of the
// candidate containers can hold the items.
var ErrNoCandidate = errors.New("no candidate container could hold the items")

// CandidateFailure records why one candidate was rejected.
type CandidateFailure struct {
	Container model.Container
	Err       error
}

// SelectionError lists the rejection of every candidate.
type SelectionError struct {
	Failures []CandidateFailure
}

func (e *SelectionError) Error() string {
	msg := fmt.Sprintf("%s (%d tried)", ErrNoCandidate, len(e.Failures))
	for _, f := range e.Failures {
		msg += fmt.Sprintf("; %s: %v", f.Container, f.Err)
	}
	return msg
}

func (e *SelectionError) Unwrap() error {
	return ErrNoCandidate
}

// Exit codes for the cubefit CLI.
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitInvalidInput = 2
	ExitDoesNotFit   = 3
	ExitUnsupported  = 4
	ExitNoCandidate  = 5
	ExitSplitFailed  = 6
)

// ExitCode maps an error to the CLI exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, ErrNoCandidate) {
		return ExitNoCandidate
	}
	var pe *PlacementError
	if !errors.As(err, &pe) {
		return ExitGeneralError
	}
	switch pe.Cause {
	case CauseInvalidConstraint:
		return ExitInvalidInput
	case CauseOrientationUnsupported:
		return ExitUnsupported
	case CauseEmptySpaceSplit:
		return ExitSplitFailed
	default:
		return ExitDoesNotFit
	}
}
