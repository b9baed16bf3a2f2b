package images

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/soocke/game-overlay-go/domain/overlay"
)

// KeyColorHex is the chroma key the overlay window declares transparent.
// Everything painted in this exact color becomes a hole in the surface,
// so only the marker strokes are visible over the game.
const KeyColorHex = "#008080"

// KeyColor is KeyColorHex as pixel data.
var KeyColor = color.RGBA{R: 0x00, G: 0x80, B: 0x80, A: 0xFF}

// highConfidence is the band above which markers are drawn emphasized.
const highConfidence = 0.8

type markerStyle struct {
	base   color.RGBA
	strong color.RGBA
}

var defaultStyle = markerStyle{
	base:   color.RGBA{0xC0, 0xC0, 0xC0, 0xFF},
	strong: color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
}

var strategyStyles = map[overlay.Strategy]markerStyle{
	overlay.StrategyTemplate: {base: color.RGBA{0x20, 0xC0, 0x20, 0xFF}, strong: color.RGBA{0x40, 0xFF, 0x40, 0xFF}},
	overlay.StrategyOCR:      {base: color.RGBA{0x20, 0x80, 0xE0, 0xFF}, strong: color.RGBA{0x40, 0xA8, 0xFF, 0xFF}},
	overlay.StrategyYOLO:     {base: color.RGBA{0xE0, 0x60, 0x20, 0xFF}, strong: color.RGBA{0xFF, 0x80, 0x30, 0xFF}},
}

var selectionWhite = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}

// RenderMarkers rasterizes the marker set onto a key-colored canvas of
// the given size. Marker geometry is overlay-relative; anything outside
// the canvas is clipped. Box interiors stay key-colored so the game
// underneath shows through.
func RenderMarkers(w, h int, markers []overlay.Marker) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillRect(img, img.Bounds(), KeyColor)
	for _, m := range markers {
		drawMarker(img, m)
	}
	return img
}

func drawMarker(img *image.RGBA, m overlay.Marker) {
	style, ok := strategyStyles[m.Strategy]
	if !ok {
		style = defaultStyle
	}
	col := style.base
	thickness := 2
	if m.Confidence >= highConfidence {
		col = style.strong
		thickness = 3
	}
	box := image.Rect(m.X, m.Y, m.X+m.Width, m.Y+m.Height)
	if m.Selected {
		outlineRect(img, box.Inset(-thickness-1), 1, selectionWhite)
	}
	outlineRect(img, box, thickness, col)
	drawLabel(img, m, col)
}

// outlineRect strokes the border just inside r.
func outlineRect(img *image.RGBA, r image.Rectangle, thickness int, col color.RGBA) {
	if thickness < 1 {
		thickness = 1
	}
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thickness), col)
	fillRect(img, image.Rect(r.Min.X, r.Max.Y-thickness, r.Max.X, r.Max.Y), col)
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+thickness, r.Max.Y), col)
	fillRect(img, image.Rect(r.Max.X-thickness, r.Min.Y, r.Max.X, r.Max.Y), col)
}

func fillRect(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, col)
		}
	}
}

// drawLabel writes "<label> <confidence>" above the box, or inside its
// top edge when the box touches the canvas top.
func drawLabel(img *image.RGBA, m overlay.Marker, col color.RGBA) {
	text := fmt.Sprintf("%.2f", m.Confidence)
	if m.Label != "" {
		text = fmt.Sprintf("%s %.2f", m.Label, m.Confidence)
	}
	face := basicfont.Face7x13
	x := m.X
	y := m.Y - 4
	if y < face.Height {
		y = m.Y + face.Height + 2
	}
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{0x10, 0x10, 0x10, 0xFF}),
		Face: face,
		Dot:  fixed.P(x+1, y+1),
	}
	d.DrawString(text)
	d.Src = image.NewUniform(col)
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}
