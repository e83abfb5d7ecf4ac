package config

import (
	"os"
	"strconv"
)

// Environment overrides, applied after file loading.
//
//	KEYRELAY_LOG_LEVEL      logging.level
//	KEYRELAY_LOG_FILE       logging.file
//	KEYRELAY_CHANNEL        delegates.channel.channel
//	KEYRELAY_SCRIPT         delegates.script.path
//	KEYRELAY_SCRIPT_QUEUE   delegates.script.queue_size
//	KEYRELAY_LOOPBACK       console.loopback
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_LEVEL"); ok {
		cfg.Logging.Level = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_FILE"); ok {
		cfg.Logging.File = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "CHANNEL"); ok {
		cfg.Delegates.Channel.Channel = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "SCRIPT"); ok {
		cfg.Delegates.Script.Path = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "SCRIPT_QUEUE"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Delegates.Script.QueueSize = n
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOOPBACK"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Console.Loopback = b
		}
	}
}
