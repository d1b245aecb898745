package input

import (
	"testing"

	"github.com/ushitora-anqou/ddkit/constant"
)

func TestKeyTableNeverPressed(t *testing.T) {
	var table KeyTable
	for i := 0; i < 3; i++ {
		for _, k := range AllKeys() {
			if table.Consume(k.Scancode()) {
				t.Fatalf("Consume(%v): got true for a key never pressed", k)
			}
		}
	}
}

func TestKeyTableConsume(t *testing.T) {
	var table KeyTable
	table.Press(SCANCODE_SPACE)

	if !table.Consume(SCANCODE_SPACE) {
		t.Fatalf("first Consume after Press: got false, expected true")
	}
	if table.Consume(SCANCODE_SPACE) {
		t.Fatalf("second Consume after Press: got true, expected false")
	}
}

func TestKeyTablePressIsolated(t *testing.T) {
	var table KeyTable
	table.Press(SCANCODE_RETURN)
	table.Press(SCANCODE_RETURN)

	if table.Consume(SCANCODE_SPACE) {
		t.Fatalf("Consume(SPACE): got true after pressing RETURN")
	}
	if !table.Consume(SCANCODE_RETURN) {
		t.Fatalf("Consume(RETURN): got false")
	}
	if table.Consume(SCANCODE_RETURN) {
		t.Fatalf("Consume(RETURN): two presses should still be consumed by one read")
	}
}

func TestKeyTableOutOfRange(t *testing.T) {
	var table KeyTable
	sc := Scancode(constant.NUM_SCANCODES + 10)
	table.Press(sc)
	if table.Consume(sc) {
		t.Fatalf("Consume(%d): got true for an out-of-range scan code", sc)
	}
	table.Press(SCANCODE_UNKNOWN)
	if table.Consume(SCANCODE_UNKNOWN) {
		t.Fatalf("Consume(UNKNOWN): got true")
	}
}

func TestKeyTableReset(t *testing.T) {
	var table KeyTable
	table.Press(SCANCODE_A)
	table.Reset()
	if table.Consume(SCANCODE_A) {
		t.Fatalf("Consume after Reset: got true")
	}
}

func TestKeyScancode(t *testing.T) {
	table := []struct {
		key      Key
		expected Scancode
	}{
		{KeySpace, SCANCODE_SPACE},
		{KeyReturn, SCANCODE_RETURN},
		{KeyEscape, SCANCODE_ESCAPE},
		{KeyA, SCANCODE_A},
		{KeyZ, SCANCODE_Z},
		{Key0, SCANCODE_0},
		{Key1, SCANCODE_1},
		{Key9, SCANCODE_9},
		{KeyF1, SCANCODE_F1},
		{KeyF12, SCANCODE_F12},
		{KeyUp, SCANCODE_UP},
		{KeyUnknown, SCANCODE_UNKNOWN},
	}

	for _, entry := range table {
		if got := entry.key.Scancode(); got != entry.expected {
			t.Fatalf("Key(%d).Scancode(): got %d, expected %d", entry.key, got, entry.expected)
		}
	}
}

func TestAllKeysHaveScancodes(t *testing.T) {
	seen := map[Scancode]Key{}
	for _, k := range AllKeys() {
		sc := k.Scancode()
		if !sc.Valid() {
			t.Fatalf("Key(%d) has no scan code", k)
		}
		if other, ok := seen[sc]; ok {
			t.Fatalf("Key(%d) and Key(%d) share scan code %d", k, other, sc)
		}
		seen[sc] = k
	}
}
