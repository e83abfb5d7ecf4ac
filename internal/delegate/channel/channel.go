package channel

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/keyrelay/internal/arbiter"
	"github.com/dshills/keyrelay/internal/key"
)

// DefaultChannel is the channel name the framework listens on for raw key
// events.
const DefaultChannel = "keyrelay/keyevent"

// keymapName identifies the platform key model in outgoing messages.
const keymapName = "windows"

// Messenger sends a message on a named channel and delivers the peer's
// reply, if any, to the reply callback. The callback may run on any
// goroutine.
type Messenger interface {
	Send(channel string, message []byte, reply func(response []byte))
}

// Delegate forwards key events to the framework over a Messenger.
type Delegate struct {
	channel   string
	messenger Messenger
}

// Option configures a Delegate.
type Option func(*Delegate)

// WithChannel overrides the channel name.
func WithChannel(name string) Option {
	return func(d *Delegate) {
		d.channel = name
	}
}

// New creates a framework key-event delegate over the messenger.
func New(m Messenger, opts ...Option) *Delegate {
	d := &Delegate{
		channel:   DefaultChannel,
		messenger: m,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// KeyboardHook encodes the event and sends it to the framework. The reply's
// top-level "handled" field becomes the verdict; a missing or malformed
// reply counts as unhandled so the event still reaches non-framework
// consumers.
func (d *Delegate) KeyboardHook(event key.Event, respond arbiter.Sink) {
	d.messenger.Send(d.channel, encodeEvent(event), func(response []byte) {
		respond(gjson.GetBytes(response, "handled").Bool())
	})
}

// encodeEvent builds the JSON message for one key event.
func encodeEvent(e key.Event) []byte {
	msg := []byte(`{}`)
	msg, _ = sjson.SetBytes(msg, "keymap", keymapName)
	msg, _ = sjson.SetBytes(msg, "type", e.Action.String())
	msg, _ = sjson.SetBytes(msg, "keyCode", e.Key)
	msg, _ = sjson.SetBytes(msg, "scanCode", e.ScanCode)
	msg, _ = sjson.SetBytes(msg, "characterCodePoint", int64(e.Char))
	msg, _ = sjson.SetBytes(msg, "extended", e.Extended)
	msg, _ = sjson.SetBytes(msg, "wasDown", e.WasDown)
	return msg
}
