package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sagarc03/lumpctl"
	"github.com/sagarc03/lumpctl/clientcli"
	"github.com/sagarc03/lumpctl/config"
	"github.com/sagarc03/lumpctl/engine"
	"github.com/sagarc03/lumpctl/lumprpc"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the lump ids stored on a device",
		Long: `List prints the number of lumps on the device followed by one lump id
per line, in the order the server returns them.

Examples:
  lumpctl --device dev1 list
  lumpctl --device dev1 -o json list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommand(cmd, lumpctl.CommandList)
		},
	}
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Fetch the value of a lump",
		Long: `Get prints the value stored under --lumpid, or "<id> does not exist".
With --out-file the value is written to that file instead.

Examples:
  lumpctl --device dev1 --lumpid 01 get
  lumpctl --device dev1 --lumpid 01 get --out-file ./value.bin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommand(cmd, lumpctl.CommandGet)
		},
	}
	cmd.Flags().String("out-file", "", "write the value to this file instead of stdout")
	return cmd
}

func newHeadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "head",
		Short: "Fetch the header of a lump",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommand(cmd, lumpctl.CommandHead)
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Remove a lump",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommand(cmd, lumpctl.CommandDelete)
		},
	}
}

// runCommand validates the request, starts the engine, issues one RPC and
// prints its result. Failures are reported through the configured formatter.
func runCommand(cmd *cobra.Command, command lumpctl.Command) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	formatter, err := clientcli.NewFormatter(cfg.Output)
	if err != nil {
		return err
	}

	fail := func(err error) error {
		_ = formatter.FormatError(cmd.ErrOrStderr(), err)
		return &exitError{code: exitCode(err), err: err}
	}

	req, err := clientcli.NewRequest(command, cfg.Device, cfg.LumpID)
	if err != nil {
		return fail(err)
	}
	if f := cmd.Flags().Lookup("out-file"); f != nil {
		req.OutFile = f.Value.String()
	}

	logger := slog.Default()
	// One request per invocation, so the queue never holds more than one task.
	handle, _ := engine.Start(engine.WithLogger(logger), engine.WithQueueSize(1))

	client, err := lumprpc.Dial(cfg.RPCAddr, handle, lumprpc.DialOptions{Logger: logger})
	if err != nil {
		return fail(err)
	}
	logger.Debug("client ready", "command", command, "target", client.Target())
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			logger.Warn("failed to close client", "err", closeErr)
		}
	}()

	dispatcher, err := clientcli.NewDispatcher(client, clientcli.WithLogger(logger))
	if err != nil {
		return fail(err)
	}

	if err := dispatcher.Execute(cmd.Context(), cmd.OutOrStdout(), formatter, req); err != nil {
		return fail(err)
	}
	return nil
}

// exitCode is 2 when the engine worker died, matching the engine's fatal
// hook, and 1 for every other failure.
func exitCode(err error) int {
	if errors.Is(err, lumpctl.ErrEngineStopped) {
		return 2
	}
	return 1
}
