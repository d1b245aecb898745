package input

// Event is something drained from a backend's event queue.
type Event interface {
	isEvent()
}

type QuitEvent struct{}

type KeyDownEvent struct {
	Scancode Scancode
	Repeat   bool
}

func (QuitEvent) isEvent()    {}
func (KeyDownEvent) isEvent() {}
