package common

import (
	"errors"
	"fmt"
	"time"
)

// Kind classifies a gateway failure. Every error that crosses the gateway
// boundary carries exactly one of these.
type Kind string

const (
	// KindInvalidQuery - caller error, correctable, no upstream call was made
	KindInvalidQuery Kind = "invalid_query"

	// KindUpstreamUnavailable - transient upstream failure (network, timeout, 5xx)
	KindUpstreamUnavailable Kind = "upstream_unavailable"

	// KindCredentialRejected - upstream rejected the configured API key
	KindCredentialRejected Kind = "credential_rejected"

	// KindRateLimited - upstream throttled the request
	KindRateLimited Kind = "rate_limited"

	// KindUpstreamProtocol - upstream payload did not match the expected shape
	KindUpstreamProtocol Kind = "upstream_protocol"
)

// GatewayError is the tagged error returned by the gateway. Message is safe
// to return to callers; Cause carries upstream detail for logs only.
type GatewayError struct {
	Kind       Kind
	Message    string
	RetryAfter time.Duration // rate_limited only; 0 when the upstream gave no hint
	Cause      error
}

func (e *GatewayError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *GatewayError) Unwrap() error {
	return e.Cause
}

// InvalidQuery builds a caller-correctable validation error
func InvalidQuery(format string, args ...interface{}) *GatewayError {
	return &GatewayError{
		Kind:    KindInvalidQuery,
		Message: fmt.Sprintf(format, args...),
	}
}

// UpstreamUnavailable wraps a transient upstream failure
func UpstreamUnavailable(cause error) *GatewayError {
	return &GatewayError{
		Kind:    KindUpstreamUnavailable,
		Message: "upstream provider unavailable",
		Cause:   cause,
	}
}

// CredentialRejected wraps an upstream authentication failure
func CredentialRejected(cause error) *GatewayError {
	return &GatewayError{
		Kind:    KindCredentialRejected,
		Message: "upstream provider rejected credential",
		Cause:   cause,
	}
}

// RateLimited wraps an upstream throttling response. retryAfter is the
// upstream's hint, 0 when none was given.
func RateLimited(retryAfter time.Duration, cause error) *GatewayError {
	return &GatewayError{
		Kind:       KindRateLimited,
		Message:    "upstream provider rate limited",
		RetryAfter: retryAfter,
		Cause:      cause,
	}
}

// UpstreamProtocol wraps an unexpected upstream payload shape
func UpstreamProtocol(cause error) *GatewayError {
	return &GatewayError{
		Kind:    KindUpstreamProtocol,
		Message: "upstream provider returned unexpected payload",
		Cause:   cause,
	}
}

// AsGatewayError unwraps err into a GatewayError if one is in the chain
func AsGatewayError(err error) (*GatewayError, bool) {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

// KindOf returns the kind of err, or empty when err is not a GatewayError
func KindOf(err error) Kind {
	if ge, ok := AsGatewayError(err); ok {
		return ge.Kind
	}
	return ""
}
