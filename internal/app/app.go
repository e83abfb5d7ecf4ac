package app

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/dshills/keyrelay/internal/arbiter"
	"github.com/dshills/keyrelay/internal/config"
	"github.com/dshills/keyrelay/internal/delegate/channel"
	"github.com/dshills/keyrelay/internal/delegate/script"
	"github.com/dshills/keyrelay/internal/inject"
)

// App owns the arbiter and everything wired around it.
type App struct {
	cfg     config.Config
	log     *Logger
	handler *arbiter.Handler
	metrics *arbiter.Metrics

	scriptDelegate *script.Delegate
	logFile        *os.File

	closed atomic.Bool
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file; empty uses
	// defaults plus environment overrides.
	ConfigPath string

	// Injector feeds unhandled events back to the OS. Nil selects the
	// platform SendInput implementation.
	Injector inject.Injector

	// Messenger carries framework channel messages. Nil skips the
	// channel delegate even when configured on.
	Messenger channel.Messenger

	// LogOutput overrides the log destination; takes precedence over
	// the configured log file.
	LogOutput io.Writer
}

// New loads configuration and builds the arbiter with its delegates.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg, opts)
}

// NewWithConfig builds the application from an already resolved
// configuration.
func NewWithConfig(cfg config.Config, opts Options) (*App, error) {
	a := &App{cfg: cfg, metrics: arbiter.NewMetrics()}

	logOut := opts.LogOutput
	if logOut == nil && cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		a.logFile = f
		logOut = f
	}
	a.log = NewLogger(ParseLogLevel(cfg.Logging.Level), logOut)

	injector := opts.Injector
	if injector == nil {
		injector = inject.SendInput
	}
	a.handler = arbiter.New(injector, arbiter.WithMetrics(a.metrics))

	if cfg.Delegates.Channel.Enabled && opts.Messenger != nil {
		var chOpts []channel.Option
		if name := cfg.Delegates.Channel.Channel; name != "" {
			chOpts = append(chOpts, channel.WithChannel(name))
		}
		a.handler.AddDelegate(channel.New(opts.Messenger, chOpts...))
		a.log.Debug("registered channel delegate")
	}

	if path := cfg.Delegates.Script.Path; path != "" {
		d, err := script.Load(path, script.WithQueueSize(cfg.Delegates.Script.QueueSize))
		if err != nil {
			a.Shutdown()
			return nil, err
		}
		a.scriptDelegate = d
		a.handler.AddDelegate(d)
		a.log.Debug("registered script delegate: %s", path)
	}

	a.log.Info("initialized (log level %s)", ParseLogLevel(cfg.Logging.Level))
	return a, nil
}

// Config returns the resolved configuration.
func (a *App) Config() config.Config {
	return a.cfg
}

// Logger returns the application logger.
func (a *App) Logger() *Logger {
	return a.log
}

// Handler returns the keyboard arbiter.
func (a *App) Handler() *arbiter.Handler {
	return a.handler
}

// Metrics returns the arbiter's metrics collector.
func (a *App) Metrics() *arbiter.Metrics {
	return a.metrics
}

// Shutdown releases delegates and the log file. Safe to call more than once.
func (a *App) Shutdown() {
	if !a.closed.CompareAndSwap(false, true) {
		return
	}
	if a.scriptDelegate != nil {
		a.scriptDelegate.Close()
	}
	if a.log != nil {
		snap := a.metrics.Snapshot()
		a.log.Info("shutdown: dispatched=%d handled=%d redispatched=%d passthroughs=%d",
			snap.Dispatched, snap.Handled, snap.Redispatched, snap.Passthroughs)
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}
