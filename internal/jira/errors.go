package jira

import (
	"errors"
	"fmt"
)

// AuthorizationError reports an HTTP 403 from the tracker. The stored
// credentials are present but not accepted for issue creation.
type AuthorizationError struct {
	StatusCode int
	Body       string
}

func (e *AuthorizationError) Error() string {
	return "access denied by jira, check your permissions or re-authenticate (forget credentials and rerun)"
}

// ValidationError reports an HTTP 400 from the tracker: the request
// was well-formed JSON but Jira rejected its fields.
type ValidationError struct {
	StatusCode int
	Body       string
}

func (e *ValidationError) Error() string {
	return "jira rejected the request, check the project key and required fields"
}

// UnknownTransportError covers every other failure: unexpected status
// codes, unreadable bodies, and transport-level errors including an
// expired deadline.
type UnknownTransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UnknownTransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("jira request failed: %v", e.Err)
	}
	return fmt.Sprintf("jira request failed with status %d: %s", e.StatusCode, e.Body)
}

func (e *UnknownTransportError) Unwrap() error {
	return e.Err
}

// IsAuthorizationError reports whether err is an AuthorizationError.
func IsAuthorizationError(err error) bool {
	var authErr *AuthorizationError
	return errors.As(err, &authErr)
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
