package shoppinglist

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the failure modes callers are expected to branch on.
// Anything more specific is carried by RequestFailedError.
var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrRegistrationFailed   = errors.New("registration failed")
	ErrNetworkUnavailable   = errors.New("network unavailable")
	ErrSessionExpired       = errors.New("session expired")
)

// RequestFailedError is returned whenever the API answers with a non-2xx
// status. Detail carries the server-reported reason when the body had one.
type RequestFailedError struct {
	StatusCode int
	Detail     string
}

func (e RequestFailedError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}

	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Detail)
}

// IsUnauthorized reports whether err is a RequestFailedError with status 401.
func IsUnauthorized(err error) bool {
	var requestErr RequestFailedError
	return errors.As(err, &requestErr) &&
		requestErr.StatusCode == http.StatusUnauthorized
}
