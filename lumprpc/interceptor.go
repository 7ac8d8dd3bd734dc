package lumprpc

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDHeader carries a per-call id so server logs can be matched to a
// client invocation.
const RequestIDHeader = "x-request-id"

func requestIDInterceptor(logger *slog.Logger) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		requestID := uuid.NewString()
		ctx = metadata.AppendToOutgoingContext(ctx, RequestIDHeader, requestID)

		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)

		logger.Debug("rpc",
			"method", method,
			"target", cc.Target(),
			"request_id", requestID,
			"code", status.Code(err).String(),
			"duration", time.Since(start),
		)
		return err
	}
}

// RequestIDFromContext returns the request id sent by the client, if any.
func RequestIDFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if v := md.Get(RequestIDHeader); len(v) > 0 {
		return v[0]
	}
	return ""
}
