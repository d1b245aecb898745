package input

// Key is a virtual key identifier as used by application code.
type Key int

const (
	KeyUnknown Key = iota
	KeySpace
	KeyReturn
	KeyEscape
	KeyBackspace
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	keyCount
)

var namedScancodes = map[Key]Scancode{
	KeySpace:     SCANCODE_SPACE,
	KeyReturn:    SCANCODE_RETURN,
	KeyEscape:    SCANCODE_ESCAPE,
	KeyBackspace: SCANCODE_BACKSPACE,
	KeyTab:       SCANCODE_TAB,
	KeyUp:        SCANCODE_UP,
	KeyDown:      SCANCODE_DOWN,
	KeyLeft:      SCANCODE_LEFT,
	KeyRight:     SCANCODE_RIGHT,
}

// Scancode returns the scan code of k on a US layout.
func (k Key) Scancode() Scancode {
	switch {
	case KeyA <= k && k <= KeyZ:
		return SCANCODE_A + Scancode(k-KeyA)
	case k == Key0:
		return SCANCODE_0
	case Key1 <= k && k <= Key9:
		return SCANCODE_1 + Scancode(k-Key1)
	case KeyF1 <= k && k <= KeyF12:
		return SCANCODE_F1 + Scancode(k-KeyF1)
	}
	if sc, ok := namedScancodes[k]; ok {
		return sc
	}
	return SCANCODE_UNKNOWN
}

// IsLetter and IsDigit let backends with their own key tables map ranges
// without listing every key.
func (k Key) IsLetter() bool {
	return KeyA <= k && k <= KeyZ
}

func (k Key) IsDigit() bool {
	return Key0 <= k && k <= Key9
}

// AllKeys lists every known key, KeyUnknown excluded.
func AllKeys() []Key {
	keys := make([]Key, 0, keyCount-1)
	for k := KeySpace; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}
