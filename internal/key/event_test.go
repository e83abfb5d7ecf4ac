package key

import "testing"

func TestAction_String(t *testing.T) {
	tests := []struct {
		name     string
		action   Action
		expected string
	}{
		{"down", ActionDown, "keydown"},
		{"up", ActionUp, "keyup"},
		{"other", Action(0x0104), "action(0x0104)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.action.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEvent_Fingerprint(t *testing.T) {
	base := Event{Key: 64, ScanCode: 20, Action: ActionDown, Char: 'a', Extended: false, WasDown: false}

	tests := []struct {
		name  string
		other Event
		equal bool
	}{
		{"identical", Event{Key: 64, ScanCode: 20, Action: ActionDown, Char: 'a'}, true},
		{"different key", Event{Key: 65, ScanCode: 20, Action: ActionDown, Char: 'a'}, false},
		{"different scancode", Event{Key: 64, ScanCode: 21, Action: ActionDown, Char: 'a'}, false},
		{"different action", Event{Key: 64, ScanCode: 20, Action: ActionUp, Char: 'a'}, false},
		{"different char", Event{Key: 64, ScanCode: 20, Action: ActionDown, Char: 'b'}, false},
		{"different extended", Event{Key: 64, ScanCode: 20, Action: ActionDown, Char: 'a', Extended: true}, false},
		{"different wasDown", Event{Key: 64, ScanCode: 20, Action: ActionDown, Char: 'a', WasDown: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Fingerprint() == tt.other.Fingerprint(); got != tt.equal {
				t.Errorf("fingerprint equality = %v, want %v", got, tt.equal)
			}
		})
	}
}

func TestEvent_IsDown(t *testing.T) {
	if !(Event{Action: ActionDown}).IsDown() {
		t.Error("ActionDown should be down")
	}
	if (Event{Action: ActionUp}).IsDown() {
		t.Error("ActionUp should not be down")
	}
}

func TestEvent_String(t *testing.T) {
	e := Event{Key: 64, ScanCode: 20, Action: ActionDown, Char: 'a', WasDown: true}
	want := `keydown key=64 scan=20 char='a' extended=false wasDown=true`
	if got := e.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	noChar := Event{Key: 16, ScanCode: 42, Action: ActionUp}
	want = `keyup key=16 scan=42 char=none extended=false wasDown=false`
	if got := noChar.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
