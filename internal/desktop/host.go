// Package desktop binds window placement to fyne windows and the platform
// display server.
package desktop

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"fyne.io/fyne/v2"

	"rlink/internal/placement"
)

// MainLabel identifies the application's main window.
const MainLabel = "main"

var ErrInvalidSize = errors.New("invalid window size")

// Host keeps windows by label and answers display queries.
type Host struct {
	display Display

	mu      sync.RWMutex
	windows map[string]fyne.Window
}

func NewHost(display Display) *Host {
	if display == nil {
		display = ScreenDisplay{}
	}
	return &Host{
		display: display,
		windows: make(map[string]fyne.Window),
	}
}

// Register associates w with label, replacing any previous window.
func (h *Host) Register(label string, w fyne.Window) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.windows[label] = w
}

func (h *Host) Window(label string) (fyne.Window, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	w, ok := h.windows[label]
	return w, ok && w != nil
}

func (h *Host) MainWindow() (placement.Window, bool) {
	w, ok := h.Window(MainLabel)
	if !ok {
		return nil, false
	}
	return &Window{win: w}, true
}

func (h *Host) PrimaryMonitor() (placement.MonitorGeometry, error) {
	bounds, ok := h.display.PrimaryBounds()
	if !ok {
		return placement.MonitorGeometry{}, placement.ErrNoPrimaryMonitor
	}
	return placement.MonitorGeometry{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

// Window adapts a fyne.Window. Fyne sizes are device independent, so a
// placement.WindowSize maps onto fyne.Size directly.
type Window struct {
	win fyne.Window
}

func (w *Window) SetLogicalSize(size placement.WindowSize) error {
	if !validDimension(size.Width) || !validDimension(size.Height) {
		return fmt.Errorf("%w: %vx%v", ErrInvalidSize, size.Width, size.Height)
	}
	w.win.Resize(fyne.NewSize(size.Width, size.Height))
	return nil
}

func (w *Window) Center() error {
	w.win.CenterOnScreen()
	return nil
}

func validDimension(v float32) bool {
	f := float64(v)
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}
