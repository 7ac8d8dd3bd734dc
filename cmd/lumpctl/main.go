package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sagarc03/lumpctl/config"
)

var version = "dev"

func init() {
	// Commands match in any case, so "Get" and "get" are the same.
	cobra.EnableCaseInsensitive = true
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:     "lumpctl",
		Version: version,
		Short:   "Client for a remote lump store",
		Long: `lumpctl issues a single request against a lump store device and prints
the result.

  list    enumerate the lump ids on a device
  get     fetch the value stored under a lump id
  head    fetch the header of a lump
  delete  remove a lump

Examples:
  lumpctl --device dev1 list
  lumpctl --device dev1 --lumpid 01 get
  lumpctl --rpc-addr 10.0.0.5:14278 --device dev1 --lumpid ff delete`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var files []string
			if f, _ := cmd.Flags().GetString("config"); f != "" {
				files = append(files, f)
			}

			cfg, err := config.Load(files, cmd.Flags())
			if err != nil {
				return err
			}

			setupLogging(cfg.Log, stderr)
			cmd.SetContext(config.WithContext(cmd.Context(), cfg))
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "config file (default: ~/.lumpctl/config.yaml)")
	pf.String("rpc-addr", config.DefaultRPCAddr, "lump store address host:port (env: LUMPCTL_RPC_ADDR)")
	pf.String("device", "", "device id (env: LUMPCTL_DEVICE)")
	pf.String("lumpid", "", "lump id in hex, required by get, head and delete (env: LUMPCTL_LUMPID)")
	pf.StringP("output", "o", "text", "output format: text, json, yaml (env: LUMPCTL_OUTPUT)")
	pf.String("log-level", "warn", "log level: debug, info, warn, error (env: LUMPCTL_LOG_LEVEL)")
	pf.String("log-format", "text", "log format: text, json (env: LUMPCTL_LOG_FORMAT)")

	root.AddCommand(newListCmd(), newGetCmd(), newHeadCmd(), newDeleteCmd())

	return root
}

// exitError is returned when the failure was already reported and the
// process only needs a non-zero exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// execute runs the CLI and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return 0
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
