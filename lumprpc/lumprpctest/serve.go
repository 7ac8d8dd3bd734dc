package lumprpctest

import (
	"context"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	"github.com/sagarc03/lumpctl/lumprpc"
)

const bufSize = 1024 * 1024

// ServeBufconn serves b over an in-process listener and returns the dial
// target plus the options needed to reach it. The server stops when the test
// ends.
func ServeBufconn(t testing.TB, b lumprpc.Backend) (string, []grpc.DialOption) {
	t.Helper()

	lis := bufconn.Listen(bufSize)
	srv := grpc.NewServer()
	lumprpc.RegisterLumpStoreServer(srv, &lumprpc.Server{Backend: b})

	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	dialer := func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }
	return "passthrough:///bufnet", []grpc.DialOption{grpc.WithContextDialer(dialer)}
}

// ServeTCP serves b on a loopback TCP port and returns its host:port.
func ServeTCP(t testing.TB, b lumprpc.Backend) string {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := grpc.NewServer()
	lumprpc.RegisterLumpStoreServer(srv, &lumprpc.Server{Backend: b})

	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	return lis.Addr().String()
}

// UnusedAddr returns a loopback address with nothing listening on it.
func UnusedAddr(t testing.TB) string {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := lis.Addr().String()
	_ = lis.Close()
	return addr
}
