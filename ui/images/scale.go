package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

// pngEncoder favours encode speed. Encoded frames go straight into a Tk
// photo and are dropped after the swap, never written anywhere.
var pngEncoder = png.Encoder{CompressionLevel: png.BestSpeed}

// EncodePNG encodes img to PNG bytes. Errors are swallowed and yield an
// empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = pngEncoder.Encode(&buf, img)
	return buf.Bytes()
}

// fitWithin returns the largest dimensions at the aspect ratio of w x h
// that fit inside maxW x maxH. Results are clamped to at least 1x1.
func fitWithin(w, h, maxW, maxH int) (int, int) {
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	ratio := float64(maxW) / float64(w)
	if r := float64(maxH) / float64(h); r < ratio {
		ratio = r
	}
	fw := int(float64(w)*ratio + 0.5)
	fh := int(float64(h)*ratio + 0.5)
	if fw < 1 {
		fw = 1
	}
	if fh < 1 {
		fh = 1
	}
	return fw, fh
}

// ScaleToFit shrinks src with a nearest-neighbour pass so it fits within
// maxW x maxH at its own aspect ratio. Sources that already fit are
// returned unchanged. Marker canvases are *image.RGBA and take the direct
// pixel path.
func ScaleToFit(src image.Image, maxW, maxH int) image.Image {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return src
	}
	newW, newH := fitWithin(w, h, maxW, maxH)

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	rgba, _ := src.(*image.RGBA)
	for y := 0; y < newH; y++ {
		sy := b.Min.Y + y*h/newH
		for x := 0; x < newW; x++ {
			sx := b.Min.X + x*w/newW
			if rgba != nil {
				dst.SetRGBA(x, y, rgba.RGBAAt(sx, sy))
				continue
			}
			r, g, bl, a := src.At(sx, sy).RGBA()
			dst.SetRGBA(x, y, color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8), uint8(a >> 8)})
		}
	}
	return dst
}
