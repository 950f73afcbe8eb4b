package client

import (
	"fmt"
)

// RequestError reports a sidecar response with a status other than 200.
type RequestError struct {
	Operation  string
	StatusCode int
	// Message is the status text from the response status line.
	Message string
	// Body holds the start of the error response body, if any.
	Body string
}

func (e *RequestError) Error() string {
	ret := fmt.Sprintf("%s: received status %d instead of 200", e.Operation, e.StatusCode)
	if e.Message != "" {
		ret += ": " + e.Message
	}
	if e.Body != "" {
		ret += ": " + e.Body
	}
	return ret
}

// TransportError reports an exchange that did not complete.
type TransportError struct {
	Operation string
	URL       string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: request to %s failed: %v", e.Operation, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
