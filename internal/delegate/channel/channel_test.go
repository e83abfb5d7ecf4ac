package channel

import (
	"testing"

	"github.com/tidwall/gjson"

	"github.com/dshills/keyrelay/internal/key"
)

// fakeMessenger captures sends and lets tests reply on demand.
type fakeMessenger struct {
	channel string
	message []byte
	reply   func(response []byte)
}

func (m *fakeMessenger) Send(channel string, message []byte, reply func(response []byte)) {
	m.channel = channel
	m.message = message
	m.reply = reply
}

func TestDelegate_EncodesEvent(t *testing.T) {
	m := &fakeMessenger{}
	d := New(m)

	event := key.Event{Key: 64, ScanCode: 20, Action: key.ActionDown, Char: 'a', Extended: true, WasDown: true}
	d.KeyboardHook(event, func(handled bool) {})

	if m.channel != DefaultChannel {
		t.Errorf("channel = %q, want %q", m.channel, DefaultChannel)
	}

	stringFields := map[string]string{
		"keymap": "windows",
		"type":   "keydown",
	}
	intFields := map[string]int64{
		"keyCode":            64,
		"scanCode":           20,
		"characterCodePoint": int64('a'),
	}
	boolFields := map[string]bool{
		"extended": true,
		"wasDown":  true,
	}
	for path, want := range stringFields {
		if got := gjson.GetBytes(m.message, path).String(); got != want {
			t.Errorf("%s = %q, want %q", path, got, want)
		}
	}
	for path, want := range intFields {
		if got := gjson.GetBytes(m.message, path).Int(); got != want {
			t.Errorf("%s = %d, want %d", path, got, want)
		}
	}
	for path, want := range boolFields {
		if got := gjson.GetBytes(m.message, path).Bool(); got != want {
			t.Errorf("%s = %v, want %v", path, got, want)
		}
	}
}

func TestDelegate_KeyUpType(t *testing.T) {
	m := &fakeMessenger{}
	d := New(m)

	d.KeyboardHook(key.Event{Key: 65, ScanCode: 22, Action: key.ActionUp}, func(handled bool) {})
	if got := gjson.GetBytes(m.message, "type").String(); got != "keyup" {
		t.Errorf("type = %q, want %q", got, "keyup")
	}
}

func TestDelegate_ReplyVerdicts(t *testing.T) {
	tests := []struct {
		name     string
		response []byte
		want     bool
	}{
		{"handled true", []byte(`{"handled":true}`), true},
		{"handled false", []byte(`{"handled":false}`), false},
		{"missing field", []byte(`{}`), false},
		{"empty reply", nil, false},
		{"malformed reply", []byte(`not json`), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &fakeMessenger{}
			d := New(m)

			var got bool
			replied := false
			d.KeyboardHook(key.Event{Key: 64, ScanCode: 20, Action: key.ActionDown}, func(handled bool) {
				got = handled
				replied = true
			})
			if replied {
				t.Fatal("sink invoked before the framework replied")
			}

			m.reply(tt.response)
			if !replied {
				t.Fatal("sink not invoked after the framework replied")
			}
			if got != tt.want {
				t.Errorf("verdict = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithChannel(t *testing.T) {
	m := &fakeMessenger{}
	d := New(m, WithChannel("custom/keys"))
	d.KeyboardHook(key.Event{}, func(handled bool) {})
	if m.channel != "custom/keys" {
		t.Errorf("channel = %q, want %q", m.channel, "custom/keys")
	}
}
