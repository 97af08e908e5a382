package service

import (
	"errors"
	"fmt"
)

// ErrMissingCredentials is returned at construction when the app key,
// app secret or base URL is empty. Fatal — never recovered at runtime.
var ErrMissingCredentials = errors.New("cloud service requires app key, app secret and base URL")

// UpstreamError is a non-2xx reply from the cloud. The response body is
// kept verbatim so callers can surface the vendor diagnostics.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("pudu api error %d: %s", e.Status, e.Body)
}

// NetworkError wraps a transport failure (DNS, connect, write, read,
// timeout). The core performs no retries; resilience is the caller's
// policy.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "pudu api request failed: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
