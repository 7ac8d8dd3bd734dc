package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/lumpctl"
	"github.com/sagarc03/lumpctl/config"
)

// isolate keeps a developer's ~/.lumpctl/config.yaml out of the tests.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("rpc-addr", "", "")
	fs.String("device", "", "")
	fs.String("lumpid", "", "")
	fs.String("output", "", "")
	fs.String("log-level", "", "")
	fs.String("log-format", "", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load(nil, newFlags(t, "--device", "dev1"))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultRPCAddr, cfg.RPCAddr)
	assert.Equal(t, "dev1", cfg.Device)
	assert.Empty(t, cfg.LumpID)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_DeviceRequired(t *testing.T) {
	isolate(t)

	_, err := config.Load(nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, lumpctl.ErrInvalidDeviceID)

	var ae *lumpctl.ArgumentError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "device", ae.Field)
}

func TestLoad_ConfigFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.yaml", `
rpc_addr: 10.0.0.5:9000
device: disk0
output: json
log:
  level: debug
  format: json
`)

	cfg, err := config.Load([]string{path}, nil)
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.5:9000", cfg.RPCAddr)
	assert.Equal(t, "disk0", cfg.Device)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_ConfigFileMerge(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	base := writeConfig(t, dir, "base.yaml", "rpc_addr: 10.0.0.5:9000\ndevice: disk0\n")
	override := writeConfig(t, dir, "override.yaml", "device: disk1\n")

	cfg, err := config.Load([]string{base, override}, nil)
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.5:9000", cfg.RPCAddr)
	assert.Equal(t, "disk1", cfg.Device)
}

func TestLoad_ConfigFileNumericIDs(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		field   string
		wantErr error
	}{
		{name: "unquoted device and lumpid", content: "device: 007\nlumpid: 010\n", field: "device", wantErr: lumpctl.ErrInvalidDeviceID},
		{name: "unquoted lumpid", content: "device: \"007\"\nlumpid: 010\n", field: "lumpid", wantErr: lumpctl.ErrInvalidLumpID},
		{name: "boolean device", content: "device: true\n", field: "device", wantErr: lumpctl.ErrInvalidDeviceID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, dir, "ids.yaml", tt.content)

			cfg, err := config.Load([]string{path}, nil)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)

			var ae *lumpctl.ArgumentError
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, tt.field, ae.Field)
			assert.Contains(t, ae.Error(), "quote")
		})
	}

	t.Run("quoted values keep their text", func(t *testing.T) {
		path := writeConfig(t, dir, "quoted.yaml", "device: \"007\"\nlumpid: \"010\"\n")

		cfg, err := config.Load([]string{path}, nil)
		require.NoError(t, err)
		assert.Equal(t, "007", cfg.Device)
		assert.Equal(t, "010", cfg.LumpID)
	})

	t.Run("flags override unquoted values", func(t *testing.T) {
		path := writeConfig(t, dir, "flagged.yaml", "device: 007\nlumpid: 010\n")

		cfg, err := config.Load([]string{path}, newFlags(t, "--device", "007", "--lumpid", "010"))
		require.NoError(t, err)
		assert.Equal(t, "007", cfg.Device)
		assert.Equal(t, "010", cfg.LumpID)
	})
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := config.Load([]string{filepath.Join(t.TempDir(), "nope.yaml")}, newFlags(t, "--device", "d"))
	assert.Error(t, err)
}

func TestLoad_HomeConfig(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".lumpctl"), 0o700))
	writeConfig(t, filepath.Join(home, ".lumpctl"), "config.yaml", "device: from-home\n")

	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "from-home", cfg.Device)
}

func TestLoad_Precedence(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.yaml", "device: from-file\nrpc_addr: 10.0.0.1:1\n")

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("LUMPCTL_DEVICE", "from-env")
		t.Setenv("LUMPCTL_LOG_LEVEL", "error")

		cfg, err := config.Load([]string{path}, nil)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Device)
		assert.Equal(t, "10.0.0.1:1", cfg.RPCAddr)
		assert.Equal(t, "error", cfg.Log.Level)
	})

	t.Run("flags override env", func(t *testing.T) {
		t.Setenv("LUMPCTL_DEVICE", "from-env")

		cfg, err := config.Load([]string{path}, newFlags(t, "--device", "from-flag", "--rpc-addr", "localhost:2"))
		require.NoError(t, err)
		assert.Equal(t, "from-flag", cfg.Device)
		assert.Equal(t, "localhost:2", cfg.RPCAddr)
	})

	t.Run("unset flags do not override", func(t *testing.T) {
		cfg, err := config.Load([]string{path}, newFlags(t))
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.Device)
	})
}

func TestLoad_Validation(t *testing.T) {
	isolate(t)

	tests := []struct {
		name  string
		args  []string
		field string
	}{
		{name: "address without port", args: []string{"--rpc-addr", "127.0.0.1"}, field: "rpc-addr"},
		{name: "address with port zero", args: []string{"--rpc-addr", "127.0.0.1:0"}, field: "rpc-addr"},
		{name: "bad output", args: []string{"--output", "xml"}, field: "output"},
		{name: "bad log level", args: []string{"--log-level", "loud"}, field: "log-level"},
		{name: "bad log format", args: []string{"--log-format", "xml"}, field: "log-format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--device", "dev1"}, tt.args...)
			_, err := config.Load(nil, newFlags(t, args...))
			require.Error(t, err)

			var ae *lumpctl.ArgumentError
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, tt.field, ae.Field)
		})
	}

	t.Run("address errors wrap ErrInvalidAddress", func(t *testing.T) {
		_, err := config.Load(nil, newFlags(t, "--device", "dev1", "--rpc-addr", "nope"))
		assert.ErrorIs(t, err, lumpctl.ErrInvalidAddress)
	})
}

func TestContext(t *testing.T) {
	_, err := config.FromContext(context.Background())
	assert.Error(t, err)

	cfg := &config.Config{Device: "dev1"}
	got, err := config.FromContext(config.WithContext(context.Background(), cfg))
	require.NoError(t, err)
	assert.Same(t, cfg, got)
}
