package desktop

import (
	"image"

	"github.com/kbinani/screenshot"
)

// Display reports the bounds of the primary monitor in pixels.
type Display interface {
	PrimaryBounds() (image.Rectangle, bool)
}

// ScreenDisplay queries the platform display server.
type ScreenDisplay struct{}

func (ScreenDisplay) PrimaryBounds() (image.Rectangle, bool) {
	return primaryBounds(screenshot.NumActiveDisplays(), screenshot.GetDisplayBounds)
}

// primaryBounds picks the display anchored at the desktop origin, where the
// platform places the primary monitor. Enumeration order is not guaranteed,
// so index 0 is only used when no display sits at the origin.
func primaryBounds(n int, bounds func(int) image.Rectangle) (image.Rectangle, bool) {
	if n <= 0 {
		return image.Rectangle{}, false
	}

	var first image.Rectangle
	for i := 0; i < n; i++ {
		b := bounds(i)
		if i == 0 {
			first = b
		}
		if b.Min == (image.Point{}) && !b.Empty() {
			return b, true
		}
	}

	if first.Empty() {
		return image.Rectangle{}, false
	}
	return first, true
}
