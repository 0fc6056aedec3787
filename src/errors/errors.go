package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure conditions the pipeline can hit.
// Every one of them is fatal; the command reports it and exits non-zero.
var (
	// Startup errors
	ErrMissingCredentials = errors.New("missing required credentials")
	ErrInvalidUsername    = errors.New("invalid username")

	// Collector errors
	ErrUserNotFound = errors.New("reddit user not found")

	// Synthesizer errors
	ErrMalformedPersona = errors.New("malformed persona response")

	// Renderer errors
	ErrRenderIO = errors.New("persona card write failed")
)

// APIError represents a failed request against one of the external APIs,
// keeping the HTTP status and a snippet of the response body for the
// user-visible report.
type APIError struct {
	Service    string // "reddit" or "gemini"
	Op         string // request being made, e.g. "user listing"
	StatusCode int
	Body       string // response body snippet, may be empty
	Err        error  // underlying transport error, may be nil
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		if e.Body != "" {
			return fmt.Sprintf("%s %s failed (status %d): %s",
				e.Service, e.Op, e.StatusCode, e.Body)
		}
		return fmt.Sprintf("%s %s failed (status %d)",
			e.Service, e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Service, e.Op, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates an error for a non-success HTTP response.
func NewAPIError(service, op string, statusCode int, body string) error {
	return &APIError{
		Service:    service,
		Op:         op,
		StatusCode: statusCode,
		Body:       body,
	}
}

// Helper predicates used by the command layer to pick exit messages.

// IsUserNotFound checks if the error indicates a missing, suspended or
// private account.
func IsUserNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsMalformedPersona checks if the error indicates an unparseable or
// incomplete model response.
func IsMalformedPersona(err error) bool {
	return errors.Is(err, ErrMalformedPersona)
}

// IsStartup checks if the error occurred before any network call was made.
func IsStartup(err error) bool {
	return errors.Is(err, ErrMissingCredentials) ||
		errors.Is(err, ErrInvalidUsername)
}

// IsAPIError reports whether any error in the chain is an *APIError and
// returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// WrapWithContext adds context to an error, preserving the chain.
func WrapWithContext(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
