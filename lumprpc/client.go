package lumprpc

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/sagarc03/lumpctl"
	"github.com/sagarc03/lumpctl/engine"
)

// Client issues lump store requests. Every call is scheduled on the engine
// and returns a Pending that resolves when the server answers.
type Client struct {
	cc     *grpc.ClientConn
	stub   LumpStoreClient
	handle *engine.Handle
	target string
}

// DialOptions configures Dial.
type DialOptions struct {
	// MaxMsgBytes sets both send/recv max sizes when non-zero.
	MaxMsgBytes int

	// Logger receives per-RPC debug logs. Defaults to slog.Default().
	Logger *slog.Logger

	// GRPCOptions are appended to the dial options, e.g. a custom dialer.
	GRPCOptions []grpc.DialOption
}

// Dial creates a client for the lump store at target. The connection is
// established lazily by the first request, on the engine worker.
func Dial(target string, h *engine.Handle, opts DialOptions) (*Client, error) {
	if h == nil {
		return nil, fmt.Errorf("lumprpc: engine handle is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(requestIDInterceptor(logger)),
	}
	if opts.MaxMsgBytes > 0 {
		dialOpts = append(dialOpts,
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(opts.MaxMsgBytes),
				grpc.MaxCallSendMsgSize(opts.MaxMsgBytes),
			),
		)
	}
	dialOpts = append(dialOpts, opts.GRPCOptions...)

	cc, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, &lumpctl.ArgumentError{Field: "rpc-addr", Value: target, Err: fmt.Errorf("%w: %v", lumpctl.ErrInvalidAddress, err)}
	}
	return &Client{cc: cc, stub: NewLumpStoreClient(cc), handle: h, target: target}, nil
}

// Target returns the server address the client was dialed with.
func (c *Client) Target() string {
	return c.target
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

// ListLumps lists the lumps stored on device, in server order.
func (c *Client) ListLumps(device lumpctl.DeviceID) *engine.Pending[[]lumpctl.LumpID] {
	return engine.Spawn(c.handle, func(ctx context.Context) ([]lumpctl.LumpID, error) {
		reply, err := c.stub.ListLumps(ctx, deviceRequest(device))
		if err != nil {
			return nil, mapRPC(opListLumps, err)
		}
		ids, err := decodeLumpList(reply)
		if err != nil {
			return nil, &lumpctl.TransportError{Op: opListLumps, Err: err}
		}
		return ids, nil
	})
}

// GetLump fetches the value of a lump. A nil result means the lump does not exist.
func (c *Client) GetLump(device lumpctl.DeviceID, id lumpctl.LumpID) *engine.Pending[*lumpctl.LumpData] {
	return engine.Spawn(c.handle, func(ctx context.Context) (*lumpctl.LumpData, error) {
		reply, err := c.stub.GetLump(ctx, lumpRequest(device, id))
		if err != nil {
			if isNotFound(err) {
				return nil, nil
			}
			return nil, mapRPC(opGetLump, err)
		}
		data := lumpctl.LumpData(reply.GetValue())
		return &data, nil
	})
}

// HeadLump fetches the metadata of a lump. A nil result means the lump does not exist.
func (c *Client) HeadLump(device lumpctl.DeviceID, id lumpctl.LumpID) *engine.Pending[*lumpctl.LumpHeader] {
	return engine.Spawn(c.handle, func(ctx context.Context) (*lumpctl.LumpHeader, error) {
		reply, err := c.stub.HeadLump(ctx, lumpRequest(device, id))
		if err != nil {
			if isNotFound(err) {
				return nil, nil
			}
			return nil, mapRPC(opHeadLump, err)
		}
		header, err := decodeHeader(reply)
		if err != nil {
			return nil, &lumpctl.TransportError{Op: opHeadLump, Err: err}
		}
		return &header, nil
	})
}

// DeleteLump removes a lump. It resolves to true iff the lump existed.
func (c *Client) DeleteLump(device lumpctl.DeviceID, id lumpctl.LumpID) *engine.Pending[bool] {
	return engine.Spawn(c.handle, func(ctx context.Context) (bool, error) {
		reply, err := c.stub.DeleteLump(ctx, lumpRequest(device, id))
		if err != nil {
			return false, mapRPC(opDeleteLump, err)
		}
		return reply.GetValue(), nil
	})
}
