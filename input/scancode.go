package input

import "github.com/ushitora-anqou/ddkit/constant"

// Scancode identifies a physical key independent of the keyboard layout.
// Values follow the USB HID usage table, which is also what SDL uses.
type Scancode uint16

const (
	SCANCODE_UNKNOWN   Scancode = 0
	SCANCODE_A         Scancode = 4
	SCANCODE_Z         Scancode = 29
	SCANCODE_1         Scancode = 30
	SCANCODE_9         Scancode = 38
	SCANCODE_0         Scancode = 39
	SCANCODE_RETURN    Scancode = 40
	SCANCODE_ESCAPE    Scancode = 41
	SCANCODE_BACKSPACE Scancode = 42
	SCANCODE_TAB       Scancode = 43
	SCANCODE_SPACE     Scancode = 44
	SCANCODE_F1        Scancode = 58
	SCANCODE_F12       Scancode = 69
	SCANCODE_RIGHT     Scancode = 79
	SCANCODE_LEFT      Scancode = 80
	SCANCODE_DOWN      Scancode = 81
	SCANCODE_UP        Scancode = 82
)

func (sc Scancode) Valid() bool {
	return sc != SCANCODE_UNKNOWN && int(sc) < constant.NUM_SCANCODES
}
