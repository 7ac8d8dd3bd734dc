package lumpctl

import (
	"fmt"
	"strings"
)

// DeviceID names a storage device on the lump store server.
type DeviceID string

func (d DeviceID) String() string {
	return string(d)
}

// LumpID is a 128-bit lump identifier.
type LumpID struct {
	hi uint64
	lo uint64
}

// NewLumpID builds a LumpID from its high and low 64-bit halves.
func NewLumpID(hi, lo uint64) LumpID {
	return LumpID{hi: hi, lo: lo}
}

// String returns the canonical form: 32 lowercase hex digits, zero padded.
func (id LumpID) String() string {
	return fmt.Sprintf("%016x%016x", id.hi, id.lo)
}

// MarshalText implements encoding.TextMarshaler.
func (id LumpID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *LumpID) UnmarshalText(text []byte) error {
	parsed, err := ParseLumpID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// LumpHeader is the metadata a server reports for a lump, without its payload.
type LumpHeader struct {
	ApproximateDataSize uint32 `json:"approximate_data_size" yaml:"approximate_data_size"`
}

// LumpData is the payload stored under a lump.
type LumpData []byte

// Command is one of the four operations the client can issue.
type Command int

const (
	CommandList Command = iota + 1
	CommandGet
	CommandHead
	CommandDelete
)

var commandNames = map[Command]string{
	CommandList:   "list",
	CommandGet:    "get",
	CommandHead:   "head",
	CommandDelete: "delete",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

func (c Command) IsValid() bool {
	_, ok := commandNames[c]
	return ok
}

// RequiresLumpID reports whether the command addresses a single lump.
func (c Command) RequiresLumpID() bool {
	switch c {
	case CommandGet, CommandHead, CommandDelete:
		return true
	default:
		return false
	}
}

// ParseCommand resolves a command name case-insensitively.
func ParseCommand(s string) (Command, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for c, n := range commandNames {
		if n == name {
			return c, nil
		}
	}
	return 0, &ArgumentError{Field: "command", Value: s, Err: ErrUnknownCommand}
}
