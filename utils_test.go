package lumpctl_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sagarc03/lumpctl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLumpID(t *testing.T) {
	tt := []struct {
		Name  string
		Input string
		Want  string
		Err   bool
	}{
		{Name: "single digit", Input: "1", Want: "00000000000000000000000000000001"},
		{Name: "canonical", Input: "00000000000000000000000000000001", Want: "00000000000000000000000000000001"},
		{Name: "uppercase", Input: "ABCDEF", Want: "00000000000000000000000000abcdef"},
		{Name: "mixed case", Input: "aBcD", Want: "0000000000000000000000000000abcd"},
		{Name: "spans halves", Input: "10000000000000000", Want: "00000000000000010000000000000000"},
		{Name: "max value", Input: "ffffffffffffffffffffffffffffffff", Want: "ffffffffffffffffffffffffffffffff"},
		{Name: "extra leading zeros", Input: "000000000000000000000000000000000001", Want: "00000000000000000000000000000001"},
		{Name: "plus sign", Input: "+2a", Want: "0000000000000000000000000000002a"},
		{Name: "plus sign full width", Input: "+ffffffffffffffffffffffffffffffff", Want: "ffffffffffffffffffffffffffffffff"},

		{Name: "empty", Input: "", Err: true},
		{Name: "non hex", Input: "xyz", Err: true},
		{Name: "hex prefix", Input: "0x1", Err: true},
		{Name: "sign", Input: "-1", Err: true},
		{Name: "plus only", Input: "+", Err: true},
		{Name: "double plus", Input: "++1", Err: true},
		{Name: "plus minus", Input: "+-1", Err: true},
		{Name: "trailing plus", Input: "1+", Err: true},
		{Name: "whitespace", Input: " 1", Err: true},
		{Name: "overflow", Input: "100000000000000000000000000000000", Err: true},
	}

	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := lumpctl.ParseLumpID(tc.Input)
			if tc.Err {
				require.Error(t, err)
				assert.ErrorIs(t, err, lumpctl.ErrInvalidLumpID)
				assert.True(t, lumpctl.IsArgumentError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Want, got.String())
		})
	}
}

func TestParseDeviceID(t *testing.T) {
	d, err := lumpctl.ParseDeviceID("dev1")
	require.NoError(t, err)
	assert.Equal(t, lumpctl.DeviceID("dev1"), d)

	_, err = lumpctl.ParseDeviceID("")
	assert.ErrorIs(t, err, lumpctl.ErrInvalidDeviceID)

	_, err = lumpctl.ParseDeviceID(string([]byte{0xff}))
	assert.ErrorIs(t, err, lumpctl.ErrInvalidDeviceID)
}

func TestValidateAddress(t *testing.T) {
	valid := []string{"127.0.0.1:14278", "localhost:1", "[::1]:65535"}
	for _, addr := range valid {
		assert.NoError(t, lumpctl.ValidateAddress(addr), addr)
	}

	invalid := []string{"", "127.0.0.1", ":14278", "host:0", "host:65536", "host:port"}
	for _, addr := range invalid {
		err := lumpctl.ValidateAddress(addr)
		assert.ErrorIs(t, err, lumpctl.ErrInvalidAddress, addr)
	}
}

func TestTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("dispatch: %w", &lumpctl.TransportError{Op: "get lump", Err: cause})

	assert.ErrorIs(t, err, lumpctl.ErrTransport)
	assert.ErrorIs(t, err, cause)
	assert.False(t, lumpctl.IsArgumentError(err))
	assert.Contains(t, err.Error(), "get lump")
}
