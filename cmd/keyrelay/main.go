// Package main is the entry point for the keyrelay simulator.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/keyrelay/internal/app"
	"github.com/dshills/keyrelay/internal/config"
	"github.com/dshills/keyrelay/internal/console"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type flags struct {
	configPath string
	script     string
	logLevel   string
	version    bool
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.configPath, "config", "", "path to configuration file")
	flag.StringVar(&f.script, "script", "", "Lua key filter script (overrides config)")
	flag.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flag.BoolVar(&f.version, "version", false, "print version and exit")
	flag.Parse()
	return f
}

func run() int {
	f := parseFlags()

	if f.version {
		fmt.Printf("keyrelay %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if f.script != "" {
		cfg.Delegates.Script.Path = f.script
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	// The simulator has no framework messenger, so the channel delegate
	// never registers here; the script delegate does the handling.
	cfg.Delegates.Channel.Enabled = false

	cons, err := console.NewWithScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create console: %v\n", err)
		return 1
	}

	opts := app.Options{}
	if cfg.Console.Loopback {
		opts.Injector = cons.Injector()
	}

	application, err := app.NewWithConfig(cfg, opts)
	if err != nil {
		cons.Close()
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	cons.SetHandler(application.Handler())
	if err := cons.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
