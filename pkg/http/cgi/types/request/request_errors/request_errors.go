package request_errors

import "errors"

var (
	ErrBadContentLength = errors.New("bad content length")
	ErrShortBody        = errors.New("short request body")
)
