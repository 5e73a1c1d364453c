package completion

import (
	"errors"
	"fmt"
)

// Kind classifies why a completion failed
type Kind int

const (
	KindTransport Kind = iota
	KindStatus
	KindDecode
	KindMissingKey
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	case KindMissingKey:
		return "missing key"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Error is the single failure type produced at the client boundary. Non-2xx
// statuses, transport failures and malformed bodies all end up here.
type Error struct {
	Provider   string
	Kind       Kind
	StatusCode int // set for KindStatus
	Err        error
}

func (e *Error) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("API call failed with status code %d", e.StatusCode)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String() + " error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrNoChoices is returned when a response decodes but carries no choices
var ErrNoChoices = errors.New("no choices in response")

// statusError builds a KindStatus error
func statusError(provider string, code int) *Error {
	return &Error{Provider: provider, Kind: KindStatus, StatusCode: code}
}

// asError converts any error into *Error, keeping an existing classification
func asError(provider string, err error) *Error {
	var cerr *Error
	if errors.As(err, &cerr) {
		if cerr.Provider == "" {
			cerr.Provider = provider
		}
		return cerr
	}
	return &Error{Provider: provider, Kind: KindTransport, Err: err}
}
