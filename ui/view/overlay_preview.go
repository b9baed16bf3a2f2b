package view

import (
	"image"

	"github.com/soocke/game-overlay-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// OverlayPreview shows a downscaled copy of the marker canvas in the
// control window, so the operator sees what the overlay paints without
// looking at the game.
type OverlayPreview interface {
	Update(img image.Image)
	Reset()
}

type overlayPreview struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo image instance
}

const (
	// Max preview dimensions; scaling is proportional.
	maxPreviewW = 400
	maxPreviewH = 225
)

// NewOverlayPreview creates the preview label and grids it on the given row.
func NewOverlayPreview(row int) OverlayPreview {
	placeholder := image.NewRGBA(image.Rect(0, 0, 200, 120))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	label := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(label, Row(row), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	return &overlayPreview{label: label, prevPhoto: photo}
}

func (v *overlayPreview) Update(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	scaled := images.ScaleToFit(img, maxPreviewW, maxPreviewH)
	pngBytes := images.EncodePNG(scaled)
	// Replace previous photo to avoid retaining obsolete pixel buffers.
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	photo := NewPhoto(Data(pngBytes))
	v.prevPhoto = photo
	v.label.Configure(Image(photo))
}

func (v *overlayPreview) Reset() {
	if v == nil || v.label == nil {
		return
	}
	placeholder := image.NewRGBA(image.Rect(0, 0, 200, 120))
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(images.EncodePNG(placeholder)))
	v.label.Configure(Image(v.prevPhoto))
}
