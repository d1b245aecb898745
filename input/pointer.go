package input

// Buttons is a mouse button bitmask laid out like SDL_BUTTON(n).
type Buttons uint32

const (
	BUTTON_LEFT   Buttons = 1 << 0
	BUTTON_MIDDLE Buttons = 1 << 1
	BUTTON_RIGHT  Buttons = 1 << 2
)

// Pointer is the mouse state of the current frame and the one before it.
// The *Click fields are true only on the frame a button goes down.
type Pointer struct {
	X, Y, PrevX, PrevY                 int32
	Left, Middle, Right                bool
	LeftClick, MiddleClick, RightClick bool
}

func (p *Pointer) Update(x, y int32, buttons Buttons) {
	p.PrevX, p.PrevY = p.X, p.Y
	p.X, p.Y = x, y

	prevLeft, prevMiddle, prevRight := p.Left, p.Middle, p.Right
	p.Left = buttons&BUTTON_LEFT != 0
	p.Middle = buttons&BUTTON_MIDDLE != 0
	p.Right = buttons&BUTTON_RIGHT != 0

	p.LeftClick = p.Left && !prevLeft
	p.MiddleClick = p.Middle && !prevMiddle
	p.RightClick = p.Right && !prevRight
}

func (p *Pointer) Moved() bool {
	return p.X != p.PrevX || p.Y != p.PrevY
}
