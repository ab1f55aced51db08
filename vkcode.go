package ezx

// Virtual-key codes reported by KeyMessage. Digit and letter keys use
// their ASCII values ('0'-'9', 'A'-'Z').
const (
	VKBack     byte = 0x08
	VKTab      byte = 0x09
	VKReturn   byte = 0x0D
	VKShift    byte = 0x10
	VKControl  byte = 0x11
	VKMenu     byte = 0x12
	VKPause    byte = 0x13
	VKCapital  byte = 0x14
	VKEscape   byte = 0x1B
	VKSpace    byte = 0x20
	VKPageUp   byte = 0x21
	VKPageDown byte = 0x22
	VKEnd      byte = 0x23
	VKHome     byte = 0x24
	VKLeft     byte = 0x25
	VKUp       byte = 0x26
	VKRight    byte = 0x27
	VKDown     byte = 0x28
	VKInsert   byte = 0x2D
	VKDelete   byte = 0x2E

	VKNumpad0 byte = 0x60
	VKNumpad1 byte = 0x61
	VKNumpad2 byte = 0x62
	VKNumpad3 byte = 0x63
	VKNumpad4 byte = 0x64
	VKNumpad5 byte = 0x65
	VKNumpad6 byte = 0x66
	VKNumpad7 byte = 0x67
	VKNumpad8 byte = 0x68
	VKNumpad9 byte = 0x69

	VKF1  byte = 0x70
	VKF2  byte = 0x71
	VKF3  byte = 0x72
	VKF4  byte = 0x73
	VKF5  byte = 0x74
	VKF6  byte = 0x75
	VKF7  byte = 0x76
	VKF8  byte = 0x77
	VKF9  byte = 0x78
	VKF10 byte = 0x79
	VKF11 byte = 0x7A
	VKF12 byte = 0x7B
)
