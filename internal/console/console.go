package console

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyrelay/internal/arbiter"
	"github.com/dshills/keyrelay/internal/inject"
	"github.com/dshills/keyrelay/internal/key"
)

// reentryEvent carries a synthesized input back into the delivery loop.
type reentryEvent struct {
	tcell.EventTime
	input inject.Input
}

// Console drives the arbiter from terminal input.
type Console struct {
	screen  tcell.Screen
	handler *arbiter.Handler
	lines   []string
}

// New creates a console over an initialized screen. The handler is attached
// later with SetHandler so the caller can build the arbiter around the
// console's loopback injector first.
func New(screen tcell.Screen) *Console {
	return &Console{screen: screen}
}

// NewWithScreen creates and initializes a default terminal screen.
func NewWithScreen() (*Console, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	return New(screen), nil
}

// SetHandler attaches the arbiter the console delivers events to.
func (c *Console) SetHandler(h *arbiter.Handler) {
	c.handler = h
}

// Close finalizes the screen without running the loop. Run finalizes the
// screen itself; Close is for setup failures before Run starts.
func (c *Console) Close() {
	c.screen.Fini()
}

// Injector returns a loopback injector that posts synthesized events back
// into the console's event queue. Safe to call from delegate completion
// goroutines; PostEvent is goroutine-safe.
func (c *Console) Injector() inject.Injector {
	return func(inputs []inject.Input) int {
		accepted := 0
		for _, in := range inputs {
			ev := &reentryEvent{input: in}
			ev.SetEventNow()
			if err := c.screen.PostEvent(ev); err != nil {
				break
			}
			accepted++
		}
		return accepted
	}
}

// Run pumps terminal events through the arbiter until Ctrl+C or the screen
// is torn down. It owns the screen and finalizes it on return.
func (c *Console) Run() error {
	defer c.screen.Fini()

	c.report("ready: type keys; Ctrl+C quits")
	c.draw()

	for {
		switch ev := c.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			c.Deliver(translateKey(ev))
		case *reentryEvent:
			c.Deliver(ev.input.ToEvent())
		case *tcell.EventResize:
			c.screen.Sync()
			c.draw()
		case nil:
			// Screen torn down.
			return nil
		}
	}
}

// Deliver feeds one event through the arbiter and records the outcome.
func (c *Console) Deliver(e key.Event) bool {
	before := c.handler.RedispatchedCount()
	consumed := c.handler.KeyboardHook(e)

	switch {
	case !consumed && c.handler.RedispatchedCount() < before:
		c.report("passthrough %s", e)
	case !consumed:
		c.report("declined    %s", e)
	default:
		c.report("dispatched  %s", e)
	}
	c.draw()
	return consumed
}

// report appends a line to the rolling display.
func (c *Console) report(format string, args ...any) {
	c.lines = append(c.lines, fmt.Sprintf(format, args...))
	if max := 256; len(c.lines) > max {
		c.lines = c.lines[len(c.lines)-max:]
	}
}

// draw renders the newest lines bottom-up.
func (c *Console) draw() {
	c.screen.Clear()
	w, h := c.screen.Size()
	if w == 0 || h == 0 {
		c.screen.Show()
		return
	}

	start := len(c.lines) - h
	if start < 0 {
		start = 0
	}
	for row, line := range c.lines[start:] {
		for col, r := range line {
			if col >= w {
				break
			}
			c.screen.SetContent(col, row, r, nil, tcell.StyleDefault)
		}
	}
	c.screen.Show()
}
