package lumpctl

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLumpID is returned when a lump id is not 1-32 hex digits worth of value
	ErrInvalidLumpID = errors.New("invalid lump id")
	// ErrLumpIDRequired is returned when a command needs a lump id and none was given
	ErrLumpIDRequired = errors.New("lump id is required")
	// ErrInvalidDeviceID is returned for an empty device id
	ErrInvalidDeviceID = errors.New("invalid device id")
	// ErrInvalidAddress is returned when the rpc address is not host:port
	ErrInvalidAddress = errors.New("invalid rpc address")
	// ErrUnknownCommand is returned for a command outside list, get, head, delete
	ErrUnknownCommand = errors.New("unknown command")
	// ErrTransport marks failures of an RPC round-trip
	ErrTransport = errors.New("transport error")
	// ErrEngineStopped is returned for work scheduled after the engine worker died
	ErrEngineStopped = errors.New("engine stopped")
)

// ArgumentError reports user input rejected before any network activity.
type ArgumentError struct {
	Field string
	Value string
	Err   error
}

func (e *ArgumentError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid argument %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid argument %s=%q: %v", e.Field, e.Value, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// TransportError reports a failed RPC. It matches ErrTransport with errors.Is.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrTransport, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// IsArgumentError reports whether err is, or wraps, an *ArgumentError.
func IsArgumentError(err error) bool {
	var ae *ArgumentError
	return errors.As(err, &ae)
}
