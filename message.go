package ezx

import "golang.org/x/text/encoding/charmap"

// MessageFilter is a bitmask selecting which message classes a retrieval
// or flush operation applies to. Combine with bitwise OR.
type MessageFilter uint8

const (
	FilterMouse  MessageFilter = 1
	FilterKey    MessageFilter = 2
	FilterChar   MessageFilter = 4
	FilterWindow MessageFilter = 8
	FilterAll                  = FilterMouse | FilterKey | FilterChar | FilterWindow
)

// Message kind codes, bit-exact with the engine ABI.
const (
	KindActivate   uint16 = 0x0006
	KindMove       uint16 = 0x0003
	KindSize       uint16 = 0x0005
	KindKeyDown    uint16 = 0x0100
	KindKeyUp      uint16 = 0x0101
	KindChar       uint16 = 0x0102
	KindMouseMove  uint16 = 0x0200
	KindLButtonDn  uint16 = 0x0201
	KindLButtonUp  uint16 = 0x0202
	KindLButtonDbl uint16 = 0x0203
	KindRButtonDn  uint16 = 0x0204
	KindRButtonUp  uint16 = 0x0205
	KindRButtonDbl uint16 = 0x0206
	KindMButtonDn  uint16 = 0x0207
	KindMButtonUp  uint16 = 0x0208
	KindMButtonDbl uint16 = 0x0209
	KindMouseWheel uint16 = 0x020A
)

// RawMessage is the flat event record delivered by the engine. Unlike the
// engine's internal representation, the payload fields are laid out side
// by side: only the fields belonging to the kind are populated, and the
// decoder never reads the others.
type RawMessage struct {
	Kind uint16

	// Mouse payload.
	X, Y  int16
	Wheel int16
	Ctrl  bool
	Shift bool
	Left  bool
	Mid   bool
	Right bool

	// Keyboard payload.
	VKCode   byte
	ScanCode byte
	Extended bool
	PrevDown bool

	// Character payload: a single code-page byte.
	Char byte

	// Window payload.
	WParam uint64
	LParam uint64
}

// Message is one decoded event. Exactly one concrete variant backs each
// value: MouseMessage, KeyMessage, CharMessage, or WindowMessage.
type Message interface {
	// Class returns the filter bit the message belongs to.
	Class() MessageFilter

	isMessage()
}

// MouseMessage reports pointer movement, button transitions, and wheel
// rotation. Coordinates are signed pixels relative to the drawing origin.
type MouseMessage struct {
	Kind  uint16 // one of the mouse kind codes
	X, Y  int
	Wheel int
	Ctrl  bool
	Shift bool
	Left  bool
	Mid   bool
	Right bool
}

func (MouseMessage) Class() MessageFilter { return FilterMouse }
func (MouseMessage) isMessage()           {}

// KeyMessage reports a key transition.
type KeyMessage struct {
	Kind     uint16 // KindKeyDown or KindKeyUp
	VKCode   byte
	ScanCode byte
	Extended bool
	PrevDown bool
}

func (KeyMessage) Class() MessageFilter { return FilterKey }
func (KeyMessage) isMessage()           {}

// Down reports whether the message is a key press.
func (m KeyMessage) Down() bool { return m.Kind == KindKeyDown }

// CharMessage carries one decoded input character.
type CharMessage struct {
	Char rune
}

func (CharMessage) Class() MessageFilter { return FilterChar }
func (CharMessage) isMessage()           {}

// WindowMessage carries a raw window event. The two parameter words are
// opaque to this layer.
type WindowMessage struct {
	Kind   uint16 // KindActivate, KindMove, or KindSize
	WParam uint64
	LParam uint64
}

func (WindowMessage) Class() MessageFilter { return FilterWindow }
func (WindowMessage) isMessage()           {}

// charDecoder maps the engine's single-byte characters to runes.
var charDecoder = charmap.Windows1252

// DecodeMessage converts a raw event record into exactly one Message
// variant. The kind code is inspected first and only the matching payload
// fields are read; an unrecognized code fails with DecodeError and no
// variant is constructed.
func DecodeMessage(raw RawMessage) (Message, error) {
	switch raw.Kind {
	case KindMouseMove, KindMouseWheel,
		KindLButtonDn, KindLButtonUp, KindLButtonDbl,
		KindMButtonDn, KindMButtonUp, KindMButtonDbl,
		KindRButtonDn, KindRButtonUp, KindRButtonDbl:
		return MouseMessage{
			Kind:  raw.Kind,
			X:     int(raw.X),
			Y:     int(raw.Y),
			Wheel: int(raw.Wheel),
			Ctrl:  raw.Ctrl,
			Shift: raw.Shift,
			Left:  raw.Left,
			Mid:   raw.Mid,
			Right: raw.Right,
		}, nil
	case KindKeyDown, KindKeyUp:
		return KeyMessage{
			Kind:     raw.Kind,
			VKCode:   raw.VKCode,
			ScanCode: raw.ScanCode,
			Extended: raw.Extended,
			PrevDown: raw.PrevDown,
		}, nil
	case KindChar:
		return CharMessage{Char: charDecoder.DecodeByte(raw.Char)}, nil
	case KindActivate, KindMove, KindSize:
		return WindowMessage{
			Kind:   raw.Kind,
			WParam: raw.WParam,
			LParam: raw.LParam,
		}, nil
	default:
		return nil, &DecodeError{Kind: raw.Kind}
	}
}

// classOf returns the filter bit a raw record belongs to, or 0 for an
// unrecognized kind.
func classOf(kind uint16) MessageFilter {
	switch {
	case kind >= KindMouseMove && kind <= KindMouseWheel:
		return FilterMouse
	case kind == KindKeyDown || kind == KindKeyUp:
		return FilterKey
	case kind == KindChar:
		return FilterChar
	case kind == KindActivate || kind == KindMove || kind == KindSize:
		return FilterWindow
	default:
		return 0
	}
}
