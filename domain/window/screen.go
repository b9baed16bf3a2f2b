package window

import (
	"image"

	"github.com/vova616/screenshot"
)

// fallbackBounds stands in when the desktop size cannot be queried.
var fallbackBounds = image.Rect(0, 0, 1920, 1080)

// ScreenBounds returns the primary desktop rectangle. Positions the
// control bar and bounds the simulated window walk.
func ScreenBounds() image.Rectangle {
	r, err := screenshot.ScreenRect()
	if err != nil || r.Empty() {
		return fallbackBounds
	}
	return r
}
