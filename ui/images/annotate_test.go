package images

import (
	"testing"

	"github.com/soocke/game-overlay-go/domain/overlay"
)

func TestRenderMarkers_EmptyCanvasIsKeyColor(t *testing.T) {
	img := RenderMarkers(64, 48, nil)
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
		t.Fatalf("canvas size %v", img.Bounds())
	}
	for _, p := range [][2]int{{0, 0}, {63, 0}, {0, 47}, {63, 47}, {32, 24}} {
		if got := img.RGBAAt(p[0], p[1]); got != KeyColor {
			t.Fatalf("pixel %v not key color: %v", p, got)
		}
	}
}

func TestRenderMarkers_BoxStrokeAndHollowInterior(t *testing.T) {
	m := overlay.Marker{X: 10, Y: 30, Width: 20, Height: 20, Confidence: 0.9, Strategy: overlay.StrategyTemplate}
	img := RenderMarkers(64, 64, []overlay.Marker{m})

	if got := img.RGBAAt(10, 30); got == KeyColor {
		t.Fatalf("border corner not stroked")
	}
	// interior stays transparent so the game shows through
	if got := img.RGBAAt(20, 40); got != KeyColor {
		t.Fatalf("interior painted: %v", got)
	}
}

func TestRenderMarkers_ConfidenceBandChangesStroke(t *testing.T) {
	low := overlay.Marker{X: 8, Y: 20, Width: 16, Height: 16, Confidence: 0.5, Strategy: overlay.StrategyOCR}
	high := overlay.Marker{X: 40, Y: 20, Width: 16, Height: 16, Confidence: 0.95, Strategy: overlay.StrategyOCR}
	img := RenderMarkers(96, 64, []overlay.Marker{low, high})

	if img.RGBAAt(8, 20) == img.RGBAAt(40, 20) {
		t.Fatalf("emphasis band did not change the stroke color")
	}
}

func TestRenderMarkers_SelectedGetsOuterOutline(t *testing.T) {
	m := overlay.Marker{X: 20, Y: 20, Width: 10, Height: 10, Confidence: 0.5, Selected: true, Strategy: overlay.StrategyYOLO}
	img := RenderMarkers(64, 64, []overlay.Marker{m})

	// outline sits outside the box proper
	if got := img.RGBAAt(17, 25); got != selectionWhite {
		t.Fatalf("selection outline missing: %v", got)
	}
}

func TestRenderMarkers_ClipsOutOfBounds(t *testing.T) {
	markers := []overlay.Marker{
		{X: -50, Y: -50, Width: 40, Height: 40, Confidence: 0.9, Strategy: overlay.StrategyTemplate},
		{X: 100, Y: 100, Width: 500, Height: 500, Confidence: 0.9, Strategy: overlay.StrategyYOLO},
	}
	// must not panic
	img := RenderMarkers(32, 32, markers)
	if img == nil {
		t.Fatalf("nil canvas")
	}
}

func TestRenderMarkers_DegenerateSize(t *testing.T) {
	img := RenderMarkers(0, -5, nil)
	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 1 {
		t.Fatalf("degenerate canvas not clamped: %v", img.Bounds())
	}
}
