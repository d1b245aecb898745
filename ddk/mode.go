package ddk

import (
	"fmt"

	"github.com/ushitora-anqou/ddkit/constant"
)

// Mode describes the window a backend has to create.
type Mode struct {
	Width, Height int
	Depth         int
	RefreshRate   int
	Fullscreen    bool
	Title         string
}

func DefaultMode() Mode {
	return Mode{
		Width:       constant.WINDOW_WIDTH,
		Height:      constant.WINDOW_HEIGHT,
		Depth:       constant.DEPTH_32,
		RefreshRate: constant.REFRESH_RATE,
		Title:       constant.WINDOW_TITLE,
	}
}

func (m Mode) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("%dx%d: %w", m.Width, m.Height, ErrInvalidSize)
	}
	if BytesPerPixel(m.Depth) == 0 {
		return fmt.Errorf("%d bpp: %w", m.Depth, ErrUnsupportedDepth)
	}
	if m.RefreshRate < 0 {
		return fmt.Errorf("negative refresh rate %d", m.RefreshRate)
	}
	return nil
}

// BytesPerPixel returns 0 for depths no backend can present.
func BytesPerPixel(depth int) int {
	switch depth {
	case constant.DEPTH_32:
		return 4
	case constant.DEPTH_16:
		return 2
	}
	return 0
}
