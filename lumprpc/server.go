package lumprpc

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/sagarc03/lumpctl"
)

// Backend is the storage engine a Server exposes. Absent lumps are reported
// with ErrLumpNotFound from GetLump and HeadLump.
type Backend interface {
	ListLumps(ctx context.Context, device lumpctl.DeviceID) ([]lumpctl.LumpID, error)
	GetLump(ctx context.Context, device lumpctl.DeviceID, id lumpctl.LumpID) (lumpctl.LumpData, error)
	HeadLump(ctx context.Context, device lumpctl.DeviceID, id lumpctl.LumpID) (lumpctl.LumpHeader, error)
	DeleteLump(ctx context.Context, device lumpctl.DeviceID, id lumpctl.LumpID) (bool, error)
}

// Server exposes a Backend over the lump store gRPC service.
type Server struct {
	UnimplementedLumpStoreServer
	Backend Backend
	Logger  *slog.Logger
}

func (s *Server) ListLumps(ctx context.Context, in *structpb.Struct) (*structpb.ListValue, error) {
	if s == nil || s.Backend == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing backend")
	}
	device, err := decodeDevice(in)
	if err != nil {
		return nil, mapErr(err)
	}
	ids, err := s.Backend.ListLumps(ctx, device)
	s.log(ctx, opListLumps, device, err)
	if err != nil {
		return nil, mapErr(err)
	}
	return encodeLumpList(ids), nil
}

func (s *Server) GetLump(ctx context.Context, in *structpb.Struct) (*wrapperspb.BytesValue, error) {
	if s == nil || s.Backend == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing backend")
	}
	device, id, err := decodeLump(in)
	if err != nil {
		return nil, mapErr(err)
	}
	data, err := s.Backend.GetLump(ctx, device, id)
	s.log(ctx, opGetLump, device, err, "lump_id", id.String())
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bytes(data), nil
}

func (s *Server) HeadLump(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	if s == nil || s.Backend == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing backend")
	}
	device, id, err := decodeLump(in)
	if err != nil {
		return nil, mapErr(err)
	}
	header, err := s.Backend.HeadLump(ctx, device, id)
	s.log(ctx, opHeadLump, device, err, "lump_id", id.String())
	if err != nil {
		return nil, mapErr(err)
	}
	return encodeHeader(header), nil
}

func (s *Server) DeleteLump(ctx context.Context, in *structpb.Struct) (*wrapperspb.BoolValue, error) {
	if s == nil || s.Backend == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing backend")
	}
	device, id, err := decodeLump(in)
	if err != nil {
		return nil, mapErr(err)
	}
	removed, err := s.Backend.DeleteLump(ctx, device, id)
	s.log(ctx, opDeleteLump, device, err, "lump_id", id.String(), "removed", removed)
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bool(removed), nil
}

func (s *Server) log(ctx context.Context, op string, device lumpctl.DeviceID, err error, args ...any) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	attrs := append([]any{
		"op", op,
		"device", string(device),
		"request_id", RequestIDFromContext(ctx),
	}, args...)
	if err != nil {
		attrs = append(attrs, "err", err)
	}
	logger.DebugContext(ctx, "lump store request", attrs...)
}
