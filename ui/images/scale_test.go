package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestFitWithin_PreservesAspect(t *testing.T) {
	cases := []struct {
		w, h, maxW, maxH int
		wantW, wantH     int
	}{
		{1920, 1080, 320, 240, 320, 180},
		{200, 100, 100, 100, 100, 50},
		{100, 200, 100, 100, 50, 100},
		{1000, 1, 10, 10, 10, 1},
		{50, 50, 0, 25, 1, 1},
	}
	for _, c := range cases {
		gotW, gotH := fitWithin(c.w, c.h, c.maxW, c.maxH)
		if gotW != c.wantW || gotH != c.wantH {
			t.Errorf("fitWithin(%d,%d,%d,%d) = %dx%d, want %dx%d",
				c.w, c.h, c.maxW, c.maxH, gotW, gotH, c.wantW, c.wantH)
		}
	}
}

func TestScaleToFit_ReturnsSourceWhenItFits(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 50, 40))
	if got := ScaleToFit(src, 100, 100); got != src {
		t.Fatalf("expected the source image back, got %v", got.Bounds())
	}
}

func TestScaleToFit_NearestNeighbourKeepsColors(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	// offset origin, like a subimage of a larger canvas
	src := image.NewRGBA(image.Rect(16, 16, 80, 80))
	for y := 16; y < 80; y++ {
		for x := 16; x < 80; x++ {
			if x < 48 {
				src.SetRGBA(x, y, red)
			} else {
				src.SetRGBA(x, y, blue)
			}
		}
	}

	out := ScaleToFit(src, 32, 32)
	dst, ok := out.(*image.RGBA)
	if !ok {
		t.Fatalf("expected RGBA output")
	}
	if dst.Bounds().Dx() != 32 || dst.Bounds().Dy() != 32 {
		t.Fatalf("scaled size %v", dst.Bounds())
	}
	// nearest neighbour never blends, so the halves stay pure
	if got := dst.RGBAAt(5, 5); got != red {
		t.Fatalf("left half %v", got)
	}
	if got := dst.RGBAAt(28, 5); got != blue {
		t.Fatalf("right half %v", got)
	}
}

func TestScaleToFit_GenericSource(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 40, 40))
	for i := range src.Pix {
		src.Pix[i] = 0xFF
	}
	out := ScaleToFit(src, 20, 20)
	dst, ok := out.(*image.RGBA)
	if !ok {
		t.Fatalf("expected RGBA output")
	}
	if got := dst.RGBAAt(10, 10); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("gray source not converted: %v", got)
	}
}

func TestEncodePNG_RoundTrip(t *testing.T) {
	if EncodePNG(nil) != nil {
		t.Fatalf("nil image should encode to nil")
	}
	src := image.NewRGBA(image.Rect(0, 0, 8, 6))
	src.SetRGBA(3, 2, color.RGBA{R: 200, G: 10, B: 10, A: 255})
	data := EncodePNG(src)
	if len(data) == 0 {
		t.Fatalf("empty png")
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds().Dx() != 8 || decoded.Bounds().Dy() != 6 {
		t.Fatalf("bounds %v", decoded.Bounds())
	}
	r, g, b, _ := decoded.At(3, 2).RGBA()
	if r>>8 != 200 || g>>8 != 10 || b>>8 != 10 {
		t.Fatalf("pixel lost in encode: %d %d %d", r>>8, g>>8, b>>8)
	}
}
