package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/lumpctl"
	"github.com/sagarc03/lumpctl/lumprpc/lumprpctest"
)

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	code = execute(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestExecute_GetAbsentLump(t *testing.T) {
	mem := lumprpctest.New(lumprpctest.WithDevices("dev1"))
	addr := lumprpctest.ServeTCP(t, mem)

	code, stdout, stderr := run(t, "--rpc-addr", addr, "--device=dev1", "get", "--lumpid=01")

	assert.Equal(t, 0, code, stderr)
	assert.Equal(t, "00000000000000000000000000000001 does not exist\n", stdout)
}

func TestExecute_CaseInsensitiveCommand(t *testing.T) {
	mem := lumprpctest.New(lumprpctest.WithDevices("dev1"))
	mem.Put("dev1", lumpctl.NewLumpID(0, 0xa), []byte("ten"))
	addr := lumprpctest.ServeTCP(t, mem)

	code, stdout, stderr := run(t, "--rpc-addr", addr, "--device", "dev1", "--lumpid", "A", "Get")

	assert.Equal(t, 0, code, stderr)
	assert.Equal(t, "ten\n", stdout)
}

func TestExecute_List(t *testing.T) {
	mem := lumprpctest.New(lumprpctest.WithDevices("dev1"))
	mem.Put("dev1", lumpctl.NewLumpID(0, 2), []byte("b"))
	mem.Put("dev1", lumpctl.NewLumpID(0, 1), []byte("a"))
	addr := lumprpctest.ServeTCP(t, mem)

	t.Run("text", func(t *testing.T) {
		code, stdout, stderr := run(t, "--rpc-addr", addr, "--device", "dev1", "list")

		assert.Equal(t, 0, code, stderr)
		assert.Equal(t, "2 lump(s)\n00000000000000000000000000000002\n00000000000000000000000000000001\n", stdout)
	})

	t.Run("json", func(t *testing.T) {
		code, stdout, stderr := run(t, "--rpc-addr", addr, "--device", "dev1", "-o", "json", "list")
		require.Equal(t, 0, code, stderr)

		var got struct {
			Count int      `json:"count"`
			Lumps []string `json:"lumps"`
		}
		require.NoError(t, json.Unmarshal([]byte(stdout), &got))
		assert.Equal(t, 2, got.Count)
	})
}

func TestExecute_DeleteTwice(t *testing.T) {
	mem := lumprpctest.New(lumprpctest.WithDevices("dev1"))
	mem.Put("dev1", lumpctl.NewLumpID(0, 5), []byte("v"))
	addr := lumprpctest.ServeTCP(t, mem)

	code, stdout, _ := run(t, "--rpc-addr", addr, "--device", "dev1", "--lumpid", "5", "delete")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Removed 00000000000000000000000000000005\n", stdout)

	code, stdout, _ = run(t, "--rpc-addr", addr, "--device", "dev1", "--lumpid", "5", "delete")
	assert.Equal(t, 0, code)
	assert.Equal(t, "There is no 00000000000000000000000000000005\n", stdout)
}

func TestExecute_Head(t *testing.T) {
	mem := lumprpctest.New(lumprpctest.WithDevices("dev1"))
	mem.Put("dev1", lumpctl.NewLumpID(0, 1), []byte("hello"))
	addr := lumprpctest.ServeTCP(t, mem)

	code, stdout, stderr := run(t, "--rpc-addr", addr, "--device", "dev1", "--lumpid", "1", "head")

	assert.Equal(t, 0, code, stderr)
	assert.Equal(t, "00000000000000000000000000000001 approximate_data_size=5 (5 B)\n", stdout)
}

func TestExecute_GetOutFile(t *testing.T) {
	mem := lumprpctest.New(lumprpctest.WithDevices("dev1"))
	mem.Put("dev1", lumpctl.NewLumpID(0, 1), []byte("payload"))
	addr := lumprpctest.ServeTCP(t, mem)
	path := filepath.Join(t.TempDir(), "out.bin")

	code, stdout, stderr := run(t, "--rpc-addr", addr, "--device", "dev1", "--lumpid", "1", "get", "--out-file", path)

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "Saved 00000000000000000000000000000001 -> "+path+" (7 B)\n", stdout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)
}

func TestExecute_ArgumentErrors(t *testing.T) {
	mem := lumprpctest.New(lumprpctest.WithDevices("dev1"))
	addr := lumprpctest.ServeTCP(t, mem)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "get without lumpid",
			args:    []string{"--rpc-addr", addr, "--device", "dev1", "get"},
			wantErr: "lump id is required",
		},
		{
			name:    "head without lumpid",
			args:    []string{"--rpc-addr", addr, "--device", "dev1", "head"},
			wantErr: "lump id is required",
		},
		{
			name:    "delete without lumpid",
			args:    []string{"--rpc-addr", addr, "--device", "dev1", "delete"},
			wantErr: "lump id is required",
		},
		{
			name:    "malformed lumpid",
			args:    []string{"--rpc-addr", addr, "--device", "dev1", "--lumpid", "0xff", "get"},
			wantErr: "invalid lump id",
		},
		{
			name:    "missing device",
			args:    []string{"--rpc-addr", addr, "list"},
			wantErr: "device",
		},
		{
			name:    "bad address",
			args:    []string{"--rpc-addr", "nope", "--device", "dev1", "list"},
			wantErr: "invalid rpc address",
		},
		{
			name:    "bad output",
			args:    []string{"--rpc-addr", addr, "--device", "dev1", "-o", "xml", "list"},
			wantErr: "output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := run(t, tt.args...)

			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.wantErr)
		})
	}

	assert.Zero(t, mem.TotalCalls())
}

func TestExecute_UnreachableServer(t *testing.T) {
	addr := lumprpctest.UnusedAddr(t)

	for _, cmd := range []string{"list", "get", "head", "delete"} {
		t.Run(cmd, func(t *testing.T) {
			code, stdout, stderr := run(t, "--rpc-addr", addr, "--device", "dev1", "--lumpid", "1", cmd)

			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "transport error")
		})
	}
}

func TestExecute_ConfigFile(t *testing.T) {
	mem := lumprpctest.New(lumprpctest.WithDevices("dev9"))
	addr := lumprpctest.ServeTCP(t, mem)

	cfgPath := filepath.Join(t.TempDir(), "lumpctl.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("rpc_addr: "+addr+"\ndevice: dev9\n"), 0o600))

	code, stdout, stderr := run(t, "--config", cfgPath, "list")

	assert.Equal(t, 0, code, stderr)
	assert.Equal(t, "0 lump(s)\n", stdout)
}

func TestExecute_ConfigFileNumericIDs(t *testing.T) {
	mem := lumprpctest.New(lumprpctest.WithDevices("007"))
	mem.Put("007", lumpctl.NewLumpID(0, 0x10), []byte("sixteen"))
	addr := lumprpctest.ServeTCP(t, mem)
	dir := t.TempDir()

	t.Run("unquoted values are rejected", func(t *testing.T) {
		cfgPath := filepath.Join(dir, "unquoted.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("rpc_addr: "+addr+"\ndevice: 007\nlumpid: 010\n"), 0o600))

		code, stdout, stderr := run(t, "--config", cfgPath, "get")

		assert.Equal(t, 1, code)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "quote")
		assert.Zero(t, mem.TotalCalls())
	})

	t.Run("quoted values address the right lump", func(t *testing.T) {
		cfgPath := filepath.Join(dir, "quoted.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("rpc_addr: "+addr+"\ndevice: \"007\"\nlumpid: \"010\"\n"), 0o600))

		code, stdout, stderr := run(t, "--config", cfgPath, "get")

		assert.Equal(t, 0, code, stderr)
		assert.Equal(t, "sixteen\n", stdout)
	})
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 2, exitCode(lumpctl.ErrEngineStopped))
	assert.Equal(t, 2, exitCode(fmt.Errorf("get lump: %w", lumpctl.ErrEngineStopped)))
	assert.Equal(t, 1, exitCode(&lumpctl.TransportError{Op: "get lump", Err: lumpctl.ErrTransport}))
	assert.Equal(t, 1, exitCode(&lumpctl.ArgumentError{Field: "lumpid", Err: lumpctl.ErrLumpIDRequired}))
}

func TestExecute_Version(t *testing.T) {
	code, stdout, _ := run(t, "--version")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, version)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("debug").String())
	assert.Equal(t, "INFO", parseLevel(" Info ").String())
	assert.Equal(t, "WARN", parseLevel("").String())
	assert.Equal(t, "ERROR", parseLevel("error").String())
}
