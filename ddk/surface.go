package ddk

import (
	"encoding/binary"

	"github.com/ushitora-anqou/ddkit/constant"
)

// Surface is the locked CPU pixel buffer. Pitch counts pixels, not bytes.
// 32-bit surfaces hold ARGB8888 and 16-bit ones RGB565, both little endian.
type Surface struct {
	Pixels        []byte
	Pitch         int
	Width, Height int
	Depth         int
}

func (s *Surface) BytesPerPixel() int {
	return BytesPerPixel(s.Depth)
}

// RGB packs a color into the surface's pixel format.
func (s *Surface) RGB(r, g, b uint8) uint32 {
	if s.Depth == constant.DEPTH_16 {
		return uint32(r>>3)<<11 | uint32(g>>2)<<5 | uint32(b>>3)
	}
	return 0xff000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Color converts a 0xRRGGBB value with RGB.
func (s *Surface) Color(rgb uint32) uint32 {
	return s.RGB(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb))
}

func (s *Surface) SetPixel(x, y int, color uint32) {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return
	}
	bpp := s.BytesPerPixel()
	off := (y*s.Pitch + x) * bpp
	if off+bpp > len(s.Pixels) {
		return
	}
	if bpp == 4 {
		binary.LittleEndian.PutUint32(s.Pixels[off:], color)
	} else {
		binary.LittleEndian.PutUint16(s.Pixels[off:], uint16(color))
	}
}

func (s *Surface) Pixel(x, y int) uint32 {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return 0
	}
	bpp := s.BytesPerPixel()
	off := (y*s.Pitch + x) * bpp
	if off+bpp > len(s.Pixels) {
		return 0
	}
	if bpp == 4 {
		return binary.LittleEndian.Uint32(s.Pixels[off:])
	}
	return uint32(binary.LittleEndian.Uint16(s.Pixels[off:]))
}

func (s *Surface) FillRect(x, y, w, h int, color uint32) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, s.Width), min(y+h, s.Height)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			s.SetPixel(col, row, color)
		}
	}
}

func (s *Surface) Fill(color uint32) {
	s.FillRect(0, 0, s.Width, s.Height, color)
}
