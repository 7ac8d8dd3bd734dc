// Package config provides configuration loading and validation for lumpctl.
//
// The package handles YAML configuration files, environment variables, and CLI flags
// with automatic merging and validation using go-playground/validator.
//
// # Configuration Precedence
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Configuration file(s) - multiple files merged left-to-right,
//     or $HOME/.lumpctl/config.yaml when none is given
//  3. Environment variables (LUMPCTL_ prefix)
//  4. CLI flags
//
// # Usage
//
//	cfg, err := config.Load(nil, cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Store in context for subcommands
//	ctx = config.WithContext(ctx, cfg)
//
// # Environment Variables
//
//   - rpc_addr → LUMPCTL_RPC_ADDR
//   - device → LUMPCTL_DEVICE
//   - log.level → LUMPCTL_LOG_LEVEL
//
// # Validation
//
// Validation failures are returned as *lumpctl.ArgumentError so the CLI can
// reject them before any network activity:
//   - rpc_addr must be host:port with a port in 1-65535
//   - device must be set
//   - output must be text, json or yaml
//   - log level must be debug, info, warn, or error
package config
