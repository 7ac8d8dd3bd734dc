package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sagarc03/lumpctl"
)

// DefaultRPCAddr is the lump store address used when none is configured.
const DefaultRPCAddr = "127.0.0.1:14278"

// EnvPrefix is prepended to environment variable names (LUMPCTL_DEVICE, ...).
const EnvPrefix = "LUMPCTL"

// ErrInvalidConfig is wrapped by validation failures that have no more specific cause.
var ErrInvalidConfig = errors.New("invalid configuration")

// configKey is the context key for storing the loaded configuration.
type configKey struct{}

// WithContext returns a new context with the config stored.
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns an error if config is not found.
func FromContext(ctx context.Context) (*Config, error) {
	cfg, ok := ctx.Value(configKey{}).(*Config)
	if !ok || cfg == nil {
		return nil, errors.New("config not found in context")
	}
	return cfg, nil
}

// Config is the resolved configuration of one lumpctl invocation.
type Config struct {
	RPCAddr string    `mapstructure:"rpc_addr" validate:"required"`
	Device  string    `mapstructure:"device" validate:"required"`
	LumpID  string    `mapstructure:"lumpid"`
	Output  string    `mapstructure:"output" validate:"required,oneof=text json yaml"`
	Log     LogConfig `mapstructure:"log"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// flagToViperKey maps CLI flag names to viper configuration keys.
var flagToViperKey = map[string]string{
	"rpc-addr":   "rpc_addr",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// fieldToFlag maps validated struct fields back to the flag a user would fix.
var fieldToFlag = map[string]string{
	"RPCAddr": "rpc-addr",
	"Device":  "device",
	"Output":  "output",
	"Level":   "log-level",
	"Format":  "log-format",
}

// bindFlags binds CLI flags to viper keys with custom name mapping.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		viperKey := f.Name
		if mapped, ok := flagToViperKey[viperKey]; ok {
			viperKey = mapped
		}

		// Only bind if the flag was explicitly set
		if f.Changed {
			_ = v.BindPFlag(viperKey, f)
		}
	})
}

// setDefaults configures default values on the viper instance. Every key
// needs a default, even an empty one, so AutomaticEnv can fill it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("rpc_addr", DefaultRPCAddr)
	v.SetDefault("device", "")
	v.SetDefault("lumpid", "")
	v.SetDefault("output", "text")

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
}

// Load reads configuration and returns a validated Config struct.
// Order of precedence (highest to lowest): flags > env > config files > defaults
//
// Parameters:
//   - configFiles: list of config file paths (later files override earlier ones).
//     When empty, $HOME/.lumpctl/config.yaml is read if it exists.
//   - flags: cobra flag set for flag binding (can be nil)
func Load(configFiles []string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Read config files
	if len(configFiles) > 0 {
		v.SetConfigFile(configFiles[0])
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFiles[0], err)
		}

		for _, cf := range configFiles[1:] {
			v.SetConfigFile(cf)
			if err := v.MergeInConfig(); err != nil {
				return nil, fmt.Errorf("merge config file %s: %w", cf, err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.lumpctl")

		if err := v.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				slog.Warn("error reading config file", "err", err)
			}
		}
	}

	// 3. Bind environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Bind flags (if provided)
	if flags != nil {
		bindFlags(v, flags)
	}

	// 5. Identifiers must reach the parsers as the text the user wrote
	if err := requireText(v, "device", "lumpid"); err != nil {
		return nil, err
	}

	// 6. Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// 7. Validate using go-playground/validator
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// requireText rejects keys a config file decoded as something other than a
// string. YAML reads an unquoted 007 as the integer 7 and 010 as octal 8.
func requireText(v *viper.Viper, keys ...string) error {
	for _, key := range keys {
		raw := v.Get(key)
		if raw == nil {
			continue
		}
		if _, ok := raw.(string); ok {
			continue
		}

		cause := lumpctl.ErrInvalidDeviceID
		if key == "lumpid" {
			cause = lumpctl.ErrInvalidLumpID
		}
		return &lumpctl.ArgumentError{
			Field: key,
			Value: fmt.Sprint(raw),
			Err:   fmt.Errorf("%w: config value is a %T, quote it as a string", cause, raw),
		}
	}
	return nil
}

// Validate checks the config and reports the first problem as a
// *lumpctl.ArgumentError naming the offending flag.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) || len(verrs) == 0 {
			return fmt.Errorf("validate config: %w", err)
		}
		return fieldError(verrs[0])
	}

	// Checked by hand: hostname_port rejects bracketed IPv6 hosts.
	return lumpctl.ValidateAddress(c.RPCAddr)
}

func fieldError(fe validator.FieldError) error {
	flag, ok := fieldToFlag[fe.StructField()]
	if !ok {
		flag = strings.ToLower(fe.StructField())
	}

	cause := ErrInvalidConfig
	switch fe.StructField() {
	case "RPCAddr":
		cause = lumpctl.ErrInvalidAddress
	case "Device":
		cause = lumpctl.ErrInvalidDeviceID
	}

	return &lumpctl.ArgumentError{
		Field: flag,
		Value: fmt.Sprint(fe.Value()),
		Err:   fmt.Errorf("%w: failed %q check", cause, fe.Tag()),
	}
}
