package config

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "KEYRELAY_"

// ErrInvalid wraps validation failures.
var ErrInvalid = errors.New("invalid configuration")

// Config is the embedder configuration.
type Config struct {
	Logging   LoggingConfig   `toml:"logging"`
	Delegates DelegatesConfig `toml:"delegates"`
	Console   ConsoleConfig   `toml:"console"`
}

// LoggingConfig controls the embedder logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`

	// File receives log output; empty means stderr.
	File string `toml:"file"`
}

// DelegatesConfig selects which handler delegates are registered.
type DelegatesConfig struct {
	Channel ChannelConfig `toml:"channel"`
	Script  ScriptConfig  `toml:"script"`
}

// ChannelConfig configures the framework key-event channel delegate.
type ChannelConfig struct {
	// Enabled registers the delegate when a messenger is available.
	Enabled bool `toml:"enabled"`

	// Channel overrides the channel name; empty uses the default.
	Channel string `toml:"channel"`
}

// ScriptConfig configures the Lua key filter delegate.
type ScriptConfig struct {
	// Path points at the script file; empty disables the delegate.
	Path string `toml:"path"`

	// QueueSize bounds events waiting for the script executor.
	QueueSize int `toml:"queue_size"`
}

// ConsoleConfig configures the interactive simulator.
type ConsoleConfig struct {
	// Loopback reinjects unhandled events through the console instead of
	// the OS, so the redispatch round trip is observable on any platform.
	Loopback bool `toml:"loopback"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Delegates: DelegatesConfig{
			Channel: ChannelConfig{Enabled: true},
			Script:  ScriptConfig{QueueSize: 128},
		},
		Console: ConsoleConfig{
			Loopback: true,
		},
	}
}

// Load builds the configuration from defaults, the TOML file at path (if
// path is non-empty), and environment overrides, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q (want debug, info, warn, or error)", ErrInvalid, c.Logging.Level)
	}
	if c.Delegates.Script.QueueSize <= 0 {
		return fmt.Errorf("%w: delegates.script.queue_size %d (want > 0)", ErrInvalid, c.Delegates.Script.QueueSize)
	}
	return nil
}
