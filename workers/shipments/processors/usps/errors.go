package usps

import (
	"errors"
	"fmt"
)

var (
	ErrTrackFailed       = errors.New("track failed")
	ErrMalformedDate     = errors.New("malformed date")
	ErrMalformedResponse = errors.New("malformed response")
)

// FailureKind tells which part of a TrackV2 response carried the error.
type FailureKind int

const (
	// SystemFailure means USPS rejected the whole request.
	SystemFailure FailureKind = iota + 1
	// ResultFailure means the request was accepted but the tracking number has no result.
	ResultFailure
)

func (k FailureKind) String() string {
	switch k {
	case SystemFailure:
		return "system"
	case ResultFailure:
		return "result"
	default:
		return "unknown"
	}
}

// TrackFailedError carries the description USPS sent with an error node.
type TrackFailedError struct {
	Kind        FailureKind
	Description string
}

func NewTrackFailedError(kind FailureKind, description string) *TrackFailedError {
	return &TrackFailedError{Kind: kind, Description: description}
}

func (e *TrackFailedError) Error() string {
	return fmt.Sprintf("%s (%s error): %s", ErrTrackFailed, e.Kind, e.Description)
}

func (e *TrackFailedError) Unwrap() error {
	return ErrTrackFailed
}

// MalformedDateError is returned when an EventDate or EventTime does not parse.
type MalformedDateError struct {
	Field string
	Value string
	Cause error
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("%s: %s is %q (cause: %v)", ErrMalformedDate, e.Field, e.Value, e.Cause)
}

func (e *MalformedDateError) Unwrap() []error {
	return []error{ErrMalformedDate, e.Cause}
}

func malformedResponse(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedResponse, fmt.Sprintf(format, args...))
}
