package ezx

import (
	"errors"
	"testing"
)

func TestDecodeKeyMessage(t *testing.T) {
	raw := RawMessage{Kind: KindKeyDown, VKCode: 27, ScanCode: 1, Extended: true}
	msg, err := DecodeMessage(raw)
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}
	km, ok := msg.(KeyMessage)
	if !ok {
		t.Fatalf("message = %T, want KeyMessage", msg)
	}
	if km.VKCode != 27 || km.ScanCode != 1 || !km.Extended {
		t.Errorf("payload: %+v", km)
	}
	if !km.Down() {
		t.Error("Down() = false for key-down kind")
	}
	if km.Class() != FilterKey {
		t.Errorf("Class() = %v, want FilterKey", km.Class())
	}
}

func TestKeyMessageNeverReadableAsMouse(t *testing.T) {
	// A keyboard record decodes to exactly one variant; the mouse payload
	// fields are unreachable through it.
	msg, err := DecodeMessage(RawMessage{Kind: KindKeyUp, VKCode: VKEscape})
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}
	if _, ok := msg.(MouseMessage); ok {
		t.Fatal("keyboard record decoded as MouseMessage")
	}
	km := msg.(KeyMessage)
	if km.Down() {
		t.Error("Down() = true for key-up kind")
	}
}

func TestDecodeMouseMessage(t *testing.T) {
	tests := []struct {
		name string
		kind uint16
	}{
		{"move", KindMouseMove},
		{"left down", KindLButtonDn},
		{"left double", KindLButtonDbl},
		{"middle up", KindMButtonUp},
		{"right down", KindRButtonDn},
		{"wheel", KindMouseWheel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := RawMessage{Kind: tt.kind, X: -4, Y: 300, Wheel: 120, Ctrl: true, Left: true}
			msg, err := DecodeMessage(raw)
			if err != nil {
				t.Fatalf("DecodeMessage: %v", err)
			}
			mm, ok := msg.(MouseMessage)
			if !ok {
				t.Fatalf("message = %T, want MouseMessage", msg)
			}
			if mm.X != -4 || mm.Y != 300 || mm.Wheel != 120 || !mm.Ctrl || !mm.Left {
				t.Errorf("payload: %+v", mm)
			}
			if mm.Class() != FilterMouse {
				t.Errorf("Class() = %v, want FilterMouse", mm.Class())
			}
		})
	}
}

func TestDecodeCharMessage(t *testing.T) {
	tests := []struct {
		name string
		in   byte
		want rune
	}{
		{"ascii", 'A', 'A'},
		{"euro sign", 0x80, '€'},
		{"e acute", 0xE9, 'é'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := DecodeMessage(RawMessage{Kind: KindChar, Char: tt.in})
			if err != nil {
				t.Fatalf("DecodeMessage: %v", err)
			}
			cm := msg.(CharMessage)
			if cm.Char != tt.want {
				t.Errorf("Char = %q, want %q", cm.Char, tt.want)
			}
		})
	}
}

func TestDecodeWindowMessage(t *testing.T) {
	for _, kind := range []uint16{KindActivate, KindMove, KindSize} {
		msg, err := DecodeMessage(RawMessage{Kind: kind, WParam: 7, LParam: 9})
		if err != nil {
			t.Fatalf("DecodeMessage(%#x): %v", kind, err)
		}
		wm, ok := msg.(WindowMessage)
		if !ok {
			t.Fatalf("message = %T, want WindowMessage", msg)
		}
		if wm.WParam != 7 || wm.LParam != 9 {
			t.Errorf("payload: %+v", wm)
		}
	}
}

func TestDecodeUnknownKind(t *testing.T) {
	msg, err := DecodeMessage(RawMessage{Kind: 0xBEEF})
	if err == nil {
		t.Fatalf("DecodeMessage succeeded with %T, want DecodeError", msg)
	}
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("error = %T, want *DecodeError", err)
	}
	if decErr.Kind != 0xBEEF {
		t.Errorf("DecodeError.Kind = %#x, want 0xbeef", decErr.Kind)
	}
	if msg != nil {
		t.Errorf("message = %v, want nil on decode failure", msg)
	}
}

func TestClassOf(t *testing.T) {
	tests := []struct {
		kind uint16
		want MessageFilter
	}{
		{KindMouseMove, FilterMouse},
		{KindMouseWheel, FilterMouse},
		{KindKeyDown, FilterKey},
		{KindKeyUp, FilterKey},
		{KindChar, FilterChar},
		{KindActivate, FilterWindow},
		{KindSize, FilterWindow},
		{0xFFFF, 0},
	}
	for _, tt := range tests {
		if got := classOf(tt.kind); got != tt.want {
			t.Errorf("classOf(%#x) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}
