package render

import (
	"bytes"
	"image/color"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{0, 1, 0, 1}
	buf := make([]byte, 4*len(cells))

	fillBinaryRGBA(buf, cells, color.White, color.Black)

	on := []byte{255, 255, 255, 255}
	off := []byte{0, 0, 0, 255}
	for i, c := range cells {
		want := off
		if c != 0 {
			want = on
		}
		if got := buf[i*4 : i*4+4]; !bytes.Equal(got, want) {
			t.Fatalf("pixel %d = %v, want %v", i, got, want)
		}
	}
}

func TestFillPaletteRGBAClampsAndClears(t *testing.T) {
	cells := []uint8{0, 1, 9}
	buf := make([]byte, 4*len(cells))
	palette := []color.RGBA{
		{A: 255},
		{R: 255, A: 255},
	}

	fillPaletteRGBA(buf, cells, palette)

	if !bytes.Equal(buf[0:4], []byte{0, 0, 0, 255}) {
		t.Fatalf("pixel 0 = %v", buf[0:4])
	}
	if !bytes.Equal(buf[4:8], []byte{255, 0, 0, 255}) {
		t.Fatalf("pixel 1 = %v", buf[4:8])
	}
	// Out-of-range values clamp to the last palette entry.
	if !bytes.Equal(buf[8:12], []byte{255, 0, 0, 255}) {
		t.Fatalf("pixel 2 = %v", buf[8:12])
	}

	fillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not cleared: %d", i, b)
		}
	}
}
