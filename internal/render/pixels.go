package render

import "image/color"

// RampColor maps a sample to grey: 0 is white, 1 is black. Values outside
// [0, 1] are clamped.
func RampColor(v float64) color.RGBA {
	l := grayLevel(v)
	return color.RGBA{R: l, G: l, B: l, A: 255}
}

func grayLevel(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8((1-v)*255 + 0.5)
}

// fillRampRGBA converts samples into RGBA pixels in buf using RampColor with
// the given alpha.
func fillRampRGBA(buf []byte, values []float64, alpha uint8) {
	for i, v := range values {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		l := grayLevel(v)
		// premultiplied, as ebiten expects
		p := uint8((uint16(l)*uint16(alpha) + 127) / 255)
		buf[base+0] = p
		buf[base+1] = p
		buf[base+2] = p
		buf[base+3] = alpha
	}
}
