package input

import "testing"

func TestPointerClickEdges(t *testing.T) {
	type frame struct {
		buttons                            Buttons
		leftClick, middleClick, rightClick bool
	}
	table := []frame{
		{0, false, false, false},
		{BUTTON_LEFT, true, false, false},
		{BUTTON_LEFT, false, false, false},
		{BUTTON_LEFT | BUTTON_RIGHT, false, false, true},
		{BUTTON_RIGHT, false, false, false},
		{0, false, false, false},
		{BUTTON_MIDDLE, false, true, false},
		{BUTTON_LEFT | BUTTON_MIDDLE | BUTTON_RIGHT, true, false, true},
		{0, false, false, false},
		{BUTTON_LEFT, true, false, false},
	}

	var p Pointer
	for i, entry := range table {
		p.Update(0, 0, entry.buttons)
		if p.LeftClick != entry.leftClick || p.MiddleClick != entry.middleClick || p.RightClick != entry.rightClick {
			t.Fatalf("frame %d: (got: %v, %v, %v) (expected: %v, %v, %v)",
				i, p.LeftClick, p.MiddleClick, p.RightClick,
				entry.leftClick, entry.middleClick, entry.rightClick)
		}
		if p.Left != (entry.buttons&BUTTON_LEFT != 0) ||
			p.Middle != (entry.buttons&BUTTON_MIDDLE != 0) ||
			p.Right != (entry.buttons&BUTTON_RIGHT != 0) {
			t.Fatalf("frame %d: levels do not match mask %03b", i, entry.buttons)
		}
	}
}

func TestPointerPosition(t *testing.T) {
	var p Pointer
	p.Update(10, 20, 0)
	p.Update(15, 25, 0)
	if p.X != 15 || p.Y != 25 || p.PrevX != 10 || p.PrevY != 20 {
		t.Fatalf("got (%d,%d) prev (%d,%d)", p.X, p.Y, p.PrevX, p.PrevY)
	}
	if !p.Moved() {
		t.Fatalf("Moved: got false")
	}
	p.Update(15, 25, 0)
	if p.Moved() {
		t.Fatalf("Moved: got true without motion")
	}
}
