package lumpctl

import (
	"net"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseDeviceID accepts any non-empty string. Further validation is left to
// the server.
func ParseDeviceID(s string) (DeviceID, error) {
	if s == "" {
		return "", &ArgumentError{Field: "device", Err: ErrInvalidDeviceID}
	}
	if !utf8.ValidString(s) {
		return "", &ArgumentError{Field: "device", Value: s, Err: ErrInvalidDeviceID}
	}
	return DeviceID(s), nil
}

// ParseLumpID parses the textual form of a lump id: a non-empty run of hex
// digits, either case, whose value fits in 128 bits. Leading zeros are allowed
// so the canonical 32-digit form always round-trips. A single leading '+' is
// accepted; any other sign is not.
func ParseLumpID(s string) (LumpID, error) {
	if s == "" {
		return LumpID{}, &ArgumentError{Field: "lumpid", Err: ErrInvalidLumpID}
	}

	digits := strings.TrimPrefix(s, "+")
	if digits == "" {
		return LumpID{}, &ArgumentError{Field: "lumpid", Value: s, Err: ErrInvalidLumpID}
	}

	var hi, lo uint64
	for i := 0; i < len(digits); i++ {
		d, ok := hexDigit(digits[i])
		if !ok {
			return LumpID{}, &ArgumentError{Field: "lumpid", Value: s, Err: ErrInvalidLumpID}
		}
		// Shifting out a non-zero top nibble means the value exceeds 128 bits.
		if hi>>60 != 0 {
			return LumpID{}, &ArgumentError{Field: "lumpid", Value: s, Err: ErrInvalidLumpID}
		}
		hi = hi<<4 | lo>>60
		lo = lo<<4 | uint64(d)
	}

	return LumpID{hi: hi, lo: lo}, nil
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// ValidateAddress checks that addr is host:port with a numeric port in range.
func ValidateAddress(addr string) error {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return &ArgumentError{Field: "rpc-addr", Value: addr, Err: ErrInvalidAddress}
	}
	if host == "" {
		return &ArgumentError{Field: "rpc-addr", Value: addr, Err: ErrInvalidAddress}
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return &ArgumentError{Field: "rpc-addr", Value: addr, Err: ErrInvalidAddress}
	}
	return nil
}
