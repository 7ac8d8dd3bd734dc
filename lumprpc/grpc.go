package lumprpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name of the lump store.
const ServiceName = "lumpstore.v1.LumpStore"

const (
	methodListLumps  = "/" + ServiceName + "/ListLumps"
	methodGetLump    = "/" + ServiceName + "/GetLump"
	methodHeadLump   = "/" + ServiceName + "/HeadLump"
	methodDeleteLump = "/" + ServiceName + "/DeleteLump"
)

// LumpStoreServer is the server API for the lump store gRPC service.
//
// Messages are protobuf well-known types so the package needs no protoc
// toolchain. Requests are Structs carrying "device_id" and, for single-lump
// calls, "lump_id" in canonical form.
type LumpStoreServer interface {
	ListLumps(context.Context, *structpb.Struct) (*structpb.ListValue, error)
	GetLump(context.Context, *structpb.Struct) (*wrapperspb.BytesValue, error)
	HeadLump(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteLump(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error)
}

// UnimplementedLumpStoreServer can be embedded to have forward compatible implementations.
type UnimplementedLumpStoreServer struct{}

func (UnimplementedLumpStoreServer) ListLumps(context.Context, *structpb.Struct) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method ListLumps not implemented")
}
func (UnimplementedLumpStoreServer) GetLump(context.Context, *structpb.Struct) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method GetLump not implemented")
}
func (UnimplementedLumpStoreServer) HeadLump(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method HeadLump not implemented")
}
func (UnimplementedLumpStoreServer) DeleteLump(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteLump not implemented")
}

// RegisterLumpStoreServer registers the lump store service on a gRPC server.
func RegisterLumpStoreServer(s grpc.ServiceRegistrar, srv LumpStoreServer) {
	s.RegisterService(&LumpStore_ServiceDesc, srv)
}

// LumpStoreClient is the client API for the lump store gRPC service.
type LumpStoreClient interface {
	ListLumps(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.ListValue, error)
	GetLump(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	HeadLump(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	DeleteLump(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
}

type lumpStoreClient struct{ cc grpc.ClientConnInterface }

func NewLumpStoreClient(cc grpc.ClientConnInterface) LumpStoreClient {
	return &lumpStoreClient{cc: cc}
}

func (c *lumpStoreClient) ListLumps(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, methodListLumps, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *lumpStoreClient) GetLump(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, methodGetLump, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *lumpStoreClient) HeadLump(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, methodHeadLump, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *lumpStoreClient) DeleteLump(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, methodDeleteLump, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func _LumpStore_ListLumps_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LumpStoreServer).ListLumps(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodListLumps}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LumpStoreServer).ListLumps(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _LumpStore_GetLump_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LumpStoreServer).GetLump(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodGetLump}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LumpStoreServer).GetLump(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _LumpStore_HeadLump_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LumpStoreServer).HeadLump(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodHeadLump}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LumpStoreServer).HeadLump(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _LumpStore_DeleteLump_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LumpStoreServer).DeleteLump(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodDeleteLump}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LumpStoreServer).DeleteLump(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// LumpStore_ServiceDesc is the grpc.ServiceDesc for the lump store service.
var LumpStore_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LumpStoreServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListLumps", Handler: _LumpStore_ListLumps_Handler},
		{MethodName: "GetLump", Handler: _LumpStore_GetLump_Handler},
		{MethodName: "HeadLump", Handler: _LumpStore_HeadLump_Handler},
		{MethodName: "DeleteLump", Handler: _LumpStore_DeleteLump_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "lumpstore.proto",
}
