package lumprpc

import (
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sagarc03/lumpctl"
)

var (
	// ErrUnknownDevice is reported by the server for a device it does not manage.
	ErrUnknownDevice = errors.New("lumprpc: unknown device")
	// ErrMalformedMessage is returned when a message does not have the expected shape.
	ErrMalformedMessage = errors.New("lumprpc: malformed message")
	// ErrLumpNotFound is returned by a Backend when the addressed lump is absent.
	ErrLumpNotFound = errors.New("lumprpc: lump not found")
)

const (
	opListLumps  = "list lumps"
	opGetLump    = "get lump"
	opHeadLump   = "head lump"
	opDeleteLump = "delete lump"
)

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// mapRPC turns a failed call into a *lumpctl.TransportError, keeping known
// server errors reachable through errors.Is.
func mapRPC(op string, err error) error {
	if err == nil {
		return nil
	}
	cause := err
	if st, ok := status.FromError(err); ok {
		switch msg := st.Message(); {
		case strings.HasPrefix(msg, ErrUnknownDevice.Error()):
			cause = errors.Join(ErrUnknownDevice, err)
		case strings.HasPrefix(msg, ErrMalformedMessage.Error()):
			cause = errors.Join(ErrMalformedMessage, err)
		}
	}
	return &lumpctl.TransportError{Op: op, Err: cause}
}

// mapErr converts a Backend error into a gRPC status.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrLumpNotFound):
		return status.Error(codes.NotFound, ErrLumpNotFound.Error())
	case errors.Is(err, ErrUnknownDevice):
		return status.Error(codes.FailedPrecondition, ErrUnknownDevice.Error())
	case errors.Is(err, ErrMalformedMessage), lumpctl.IsArgumentError(err):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
