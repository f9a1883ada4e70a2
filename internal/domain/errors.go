package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a stored key or entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidProfile is returned when body measurements are not positive
	ErrInvalidProfile = errors.New("weight, height and age must be positive")
)

// UpstreamError reports a failed call to a vision provider.
// StatusCode is zero when no HTTP response was received.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Payload    string
	Err        error
}

func (e *UpstreamError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s upstream error", e.Provider)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": status %d", e.StatusCode)
	}
	if e.Payload != "" {
		fmt.Fprintf(&b, " - %s", e.Payload)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ParseError reports a provider reply without a JSON object
type ParseError struct {
	Content string
}

func (e *ParseError) Error() string {
	return "reply does not contain a JSON object"
}

// ValidationError reports a parsed reply missing required numeric fields
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	msg := "incomplete nutrition data"
	if len(e.Fields) > 0 {
		msg += ": missing or non-numeric " + strings.Join(e.Fields, ", ")
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// IsAnalysisError reports whether err is one of the meal analysis failures
func IsAnalysisError(err error) bool {
	var upstream *UpstreamError
	var parse *ParseError
	var validation *ValidationError
	return errors.As(err, &upstream) || errors.As(err, &parse) || errors.As(err, &validation)
}
