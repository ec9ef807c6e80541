package render

import (
	"image/color"
	"slices"
	"testing"

	"game-of-life/internal/theme"
)

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 3*4)
	fillBinaryRGBA(buf, []uint8{1, 0, 1}, color.White, color.Black)
	want := []byte{255, 255, 255, 255, 0, 0, 0, 255, 255, 255, 255, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}

func TestFillPalette(t *testing.T) {
	p := theme.PaletteFor(theme.Light)
	buf := make([]byte, 2*4)
	fillPalette(buf, []uint8{0, 1}, p)
	want := []byte{p.Dead.R, p.Dead.G, p.Dead.B, p.Dead.A, p.Alive.R, p.Alive.G, p.Alive.B, p.Alive.A}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}

func TestGridLineOffsets(t *testing.T) {
	got := gridLineOffsets(3, 10)
	if !slices.Equal(got, []float64{0, 10, 20, 30}) {
		t.Fatalf("offsets = %v", got)
	}
	if gridLineOffsets(3, MinGridLineCell-0.5) != nil {
		t.Fatal("tiny cells should not get grid lines")
	}
	if gridLineOffsets(0, 10) != nil {
		t.Fatal("empty axis should not get grid lines")
	}
}
