package render

import (
	"image/color"
	"testing"
)

func TestRampColorEnds(t *testing.T) {
	if got := RampColor(0); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("0 should be white, got %v", got)
	}
	if got := RampColor(1); got != (color.RGBA{A: 255}) {
		t.Fatalf("1 should be black, got %v", got)
	}
	if got := RampColor(0.5); got.R != 128 {
		t.Fatalf("0.5 should be mid grey, got %v", got)
	}
	if RampColor(-3) != RampColor(0) || RampColor(7) != RampColor(1) {
		t.Fatal("out-of-range samples must clamp")
	}
}

func TestFillRampRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillRampRGBA(buf, []float64{0, 1}, 255)
	want := []byte{255, 255, 255, 255, 0, 0, 0, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, expected %d", i, buf[i], want[i])
		}
	}

	fillRampRGBA(buf, []float64{0, 0, 0}, 0)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("transparent fill left byte %d = %d", i, b)
		}
	}
}
