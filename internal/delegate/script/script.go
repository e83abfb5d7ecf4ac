package script

import (
	"fmt"
	"os"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keyrelay/internal/arbiter"
	"github.com/dshills/keyrelay/internal/key"
)

// hookName is the global function a script must define.
const hookName = "on_key"

// DefaultQueueSize bounds calls waiting for the executor goroutine.
const DefaultQueueSize = 128

// call is one key event awaiting script evaluation.
type call struct {
	event   key.Event
	respond arbiter.Sink
}

// Delegate evaluates key events against a Lua script on a dedicated
// executor goroutine.
type Delegate struct {
	L     *lua.LState
	hook  lua.LValue
	queue chan call

	// mu orders queue sends against Close: once closed is set no new call
	// can enter the queue, so the executor's final drain declines
	// everything that was ever accepted.
	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// Option configures a Delegate.
type Option func(*options)

type options struct {
	queueSize int
}

// WithQueueSize bounds the number of events waiting for the executor.
func WithQueueSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.queueSize = n
		}
	}
}

// New compiles the script source and starts the executor goroutine. The
// script must define a global on_key function.
func New(source string, opts ...Option) (*Delegate, error) {
	o := options{queueSize: DefaultQueueSize}
	for _, opt := range opts {
		opt(&o)
	}

	L := lua.NewState()
	if err := L.DoString(source); err != nil {
		L.Close()
		return nil, fmt.Errorf("loading script: %w", err)
	}
	hook := L.GetGlobal(hookName)
	if hook.Type() != lua.LTFunction {
		L.Close()
		return nil, ErrNoHook
	}

	d := &Delegate{
		L:     L,
		hook:  hook,
		queue: make(chan call, o.queueSize),
		done:  make(chan struct{}),
	}
	go d.run()
	return d, nil
}

// Load reads a script from disk and builds a delegate from it.
func Load(path string, opts ...Option) (*Delegate, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script %s: %w", path, err)
	}
	d, err := New(string(source), opts...)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return d, nil
}

// KeyboardHook queues the event for the executor. The verdict always
// arrives asynchronously; a full queue or a closed delegate declines the
// event immediately so the arbiter can redispatch it.
func (d *Delegate) KeyboardHook(event key.Event, respond arbiter.Sink) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		respond(false)
		return
	}
	select {
	case d.queue <- call{event: event, respond: respond}:
		d.mu.Unlock()
	default:
		d.mu.Unlock()
		respond(false)
	}
}

// Close stops the executor and releases the Lua state. Events already
// queued are declined. Safe to call more than once.
func (d *Delegate) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrClosed
	}
	d.closed = true
	d.mu.Unlock()
	close(d.done)
	return nil
}

// run owns the LState. All Lua operations happen here.
func (d *Delegate) run() {
	defer d.L.Close()
	for {
		select {
		case <-d.done:
			d.drain()
			return
		case c := <-d.queue:
			c.respond(d.eval(c.event))
		}
	}
}

// drain declines anything still queued at close time.
func (d *Delegate) drain() {
	for {
		select {
		case c := <-d.queue:
			c.respond(false)
		default:
			return
		}
	}
}

// eval calls on_key with the event table. Script errors decline the event.
func (d *Delegate) eval(event key.Event) bool {
	L := d.L
	L.Push(d.hook)
	L.Push(eventTable(L, event))
	if err := L.PCall(1, 1, nil); err != nil {
		return false
	}
	ret := L.Get(-1)
	L.Pop(1)
	return lua.LVAsBool(ret)
}

// eventTable builds the Lua view of a key event.
func eventTable(L *lua.LState, e key.Event) *lua.LTable {
	t := L.NewTable()
	L.SetField(t, "key", lua.LNumber(e.Key))
	L.SetField(t, "scancode", lua.LNumber(e.ScanCode))
	L.SetField(t, "action", lua.LString(e.Action.String()))
	L.SetField(t, "char", lua.LNumber(e.Char))
	L.SetField(t, "extended", lua.LBool(e.Extended))
	L.SetField(t, "was_down", lua.LBool(e.WasDown))
	return t
}
