package analyze

import (
	"fmt"
)

// Kind classifies a processing error
type Kind string

const (
	// KindIO marks failures talking to the filesystem: stat, open, read
	KindIO Kind = "io"

	// KindOther marks every failure that is not an IO failure
	KindOther Kind = "other"
)

// Error is a structured processing error attached to a Record
// Analysis never aborts on a failure; it records one of these and either
// continues or stops reading, so callers always get a Record back
type Error struct {
	// Kind classifies the failure
	Kind Kind `json:"kind" yaml:"kind"`

	// Message is the human-readable description
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface
func (e Error) Error() string {
	if e.Kind == KindIO {
		return fmt.Sprintf("io error: %s", e.Message)
	}
	return e.Message
}

// Is matches errors by kind, so errors.Is(err, Error{Kind: KindIO}) works
// as a classification check. A target with a message requires an exact
// match
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && (t.Message == "" || t.Message == e.Message)
}

// IOErrorf creates an IO-kind error with a formatted message
func IOErrorf(format string, args ...interface{}) Error {
	return Error{
		Kind:    KindIO,
		Message: fmt.Sprintf(format, args...),
	}
}

// Otherf creates an other-kind error with a formatted message
func Otherf(format string, args ...interface{}) Error {
	return Error{
		Kind:    KindOther,
		Message: fmt.Sprintf(format, args...),
	}
}
