package pays

import "errors"

var (
	ErrInvalidConfiguration   = errors.New("invalid merchant configuration")
	ErrInvalidArgument        = errors.New("invalid argument")
	ErrPriceNotSet            = errors.New("price not set")
	ErrAuthenticationFailed   = errors.New("callback authentication failed")
	ErrEnvironmentUnsupported = errors.New("non-production gateway endpoint not configured")
)

// MissingFieldError reports a required callback field that was absent or empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required callback field " + e.Field
}

// MalformedFieldError reports a callback field that was present but could not
// be decoded to its expected type or range.
type MalformedFieldError struct {
	Field  string
	Reason string
}

func (e *MalformedFieldError) Error() string {
	return "malformed callback field " + e.Field + ": " + e.Reason
}
