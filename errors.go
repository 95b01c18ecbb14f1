package client

import (
	"errors"
	"fmt"
)

var (
	ErrUploadNotSupported = errors.New("uploading raw files is not supported, upload by url instead")
	ErrEmptyToken         = errors.New("api token cannot be empty")
	ErrEmptyStatus        = errors.New("status response contained no documents")
	ErrNilWriter          = errors.New("writer cannot be nil")
)

// HTTPError is returned for every response whose status code is not 200.
type HTTPError struct {
	Operation  Operation
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s failed with HTTP %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("%s failed with HTTP %d: %s", e.Operation, e.StatusCode, e.Body)
}

// IsHTTPStatus reports whether err carries an HTTPError with the given code.
func IsHTTPStatus(err error, code int) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == code
}

// errStatus builds the HTTPError for a non-200 response.
func errStatus(operation Operation, statusCode int, body []byte) error {
	return &HTTPError{
		Operation:  operation,
		StatusCode: statusCode,
		Body:       string(body),
	}
}

// errRequest wraps a transport or decoding failure with the operation name.
func errRequest(operation Operation, err error) error {
	return fmt.Errorf("%s failed: %w", operation, err)
}
