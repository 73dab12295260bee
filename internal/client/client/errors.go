package client

import (
	"errors"
	"fmt"
)

var (
	ErrConversionFailed = errors.New("conversion failed")
	ErrBadResponse      = errors.New("malformed service response")
	ErrUnavailable      = errors.New("service unavailable")
	ErrTimeout          = errors.New("service timeout")
	ErrDownloadFailed   = errors.New("download failed")
)

// StatusError is returned by Upload when the service answers with a non-2xx
// status. It matches ErrConversionFailed.
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("conversion failed: %s", e.Status)
	}
	return fmt.Sprintf("conversion failed: %s; body: %s", e.Status, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrConversionFailed
}
