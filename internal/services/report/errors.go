package report

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork reports a transport failure, including an expired deadline.
	ErrNetwork = errors.New("network error")

	// ErrMalformedPayload reports a body that is not JSON or lacks the data envelope.
	ErrMalformedPayload = errors.New("malformed payload")
)

// maxBodyExcerpt bounds how much of an error body is kept on a StatusError.
const maxBodyExcerpt = 256

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s failed (status %d)", e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s failed (status %d): %s", e.Path, e.StatusCode, e.Body)
}

func newStatusError(path string, code int, body []byte) *StatusError {
	excerpt := string(body)
	if len(excerpt) > maxBodyExcerpt {
		excerpt = excerpt[:maxBodyExcerpt] + "..."
	}
	return &StatusError{Path: path, StatusCode: code, Body: excerpt}
}
