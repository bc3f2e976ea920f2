package platform

import "image/color"

// colorRef packs c into a Win32 COLORREF (0x00BBGGRR)
func colorRef(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return uint32(r>>8) | uint32(g>>8)<<8 | uint32(b>>8)<<16
}

// x11Position encodes a window origin for ConfigureWindow; X11 carries the
// signed 16-bit coordinates in 32-bit values
func x11Position(x, y int) []uint32 {
	return []uint32{uint32(int32(x)), uint32(int32(y))}
}
