package clientcli

import "errors"

// Errors for request validation.
var (
	ErrUnknownOutput = errors.New("unknown output format")
	ErrNilClient     = errors.New("lump client is required")
)
