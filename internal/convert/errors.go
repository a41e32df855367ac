package convert

import (
	"errors"
	"fmt"
)

// Kind is the pipeline stage a conversion failed in.
type Kind int

const (
	// KindRead: the input is not recognizable image data at all.
	KindRead Kind = iota + 1
	// KindDecode: the container was recognized but could not be decoded.
	KindDecode
	// KindUnsupportedFormat: the target token matched no encoding.
	KindUnsupportedFormat
	// KindEncode: the decoded image could not be written in the target format.
	KindEncode
)

// Sentinels for errors.Is; each matches any *Error of the same Kind.
var (
	ErrRead              = &Error{Kind: KindRead}
	ErrDecode            = &Error{Kind: KindDecode}
	ErrUnsupportedFormat = &Error{Kind: KindUnsupportedFormat}
	ErrEncode            = &Error{Kind: KindEncode}
)

var errEmptyInput = errors.New("empty input")

// Error is the only error type Convert returns. Its message is stable
// regardless of which codec produced the cause.
type Error struct {
	Kind Kind
	// Token is the rejected target token, set for KindUnsupportedFormat.
	Token string
	Err   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindRead:
		return fmt.Sprintf("Failed to read image: %v", e.Err)
	case KindDecode:
		return fmt.Sprintf("Failed to decode image: %v", e.Err)
	case KindUnsupportedFormat:
		return fmt.Sprintf("Unsupported format: %s", e.Token)
	case KindEncode:
		return fmt.Sprintf("Failed to write image: %v", e.Err)
	}
	return fmt.Sprintf("conversion failed: %v", e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports kind equality, so errors.Is(err, ErrDecode) works on any
// decode failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
