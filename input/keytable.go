package input

import "github.com/ushitora-anqou/ddkit/constant"

// KeyTable remembers which keys went down since they were last queried.
// Reading an entry clears it, so a query answers "pressed since the last
// check" rather than "held right now". Application code depends on this.
type KeyTable struct {
	keys [constant.NUM_SCANCODES]bool
}

func (t *KeyTable) Press(sc Scancode) {
	if !sc.Valid() {
		return
	}
	t.keys[sc] = true
}

func (t *KeyTable) Consume(sc Scancode) bool {
	if !sc.Valid() {
		return false
	}
	r := t.keys[sc]
	t.keys[sc] = false
	return r
}

func (t *KeyTable) Reset() {
	t.keys = [constant.NUM_SCANCODES]bool{}
}
