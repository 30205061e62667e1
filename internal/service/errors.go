package service

import "fmt"

// UpstreamError reports a non-2xx response from an external lookup service.
// It aborts the operation that needed the lookup; there is no retry.
type UpstreamError struct {
	Service    string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s service returned status %d", e.Service, e.StatusCode)
}
