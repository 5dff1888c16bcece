package trakt

import (
	"errors"
	"fmt"
)

// ErrBadPageBound is returned when a pagination request asks for a page
// fan-out outside of 1..MaxPages.
var ErrBadPageBound = errors.New("page bound must be a positive integer no greater than the page limit")

// ValidationError reports invalid caller input: an unknown category, a
// section that belongs to a different category, or a missing argument.
// It is always raised before any network traffic happens.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// RequestError reports a connection-level failure: an unreachable or
// invalid URL, a non-2xx response, or exhausted retries.
type RequestError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf(
			"request to %q failed with status %d%s", e.URL, e.StatusCode, yearHint,
		)
	}
	return fmt.Sprintf("request to %q failed: %v%s", e.URL, e.Err, yearHint)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// many title pages 404 without a release year suffix in the slug, so
// every connection failure carries the reminder
const yearHint = `
note: many queries need the release year (YYYY) included, e.g. "The Matrix 1999"`

// ParseError reports markup that does not hold the fragment an
// extraction grammar expects, or a response of an unexpected content type.
type ParseError struct {
	Fragment string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing %q: %v", e.Fragment, e.Err)
	}
	return fmt.Sprintf("expected markup fragment %q is missing", e.Fragment)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
