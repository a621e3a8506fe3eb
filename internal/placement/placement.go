// Package placement sizes and centers the main window once at startup.
package placement

import (
	"errors"
	"math"

	"rlink/internal/logger"
)

// Fraction of the primary monitor the main window occupies on launch.
const Fraction = 0.7

// ErrNoPrimaryMonitor is returned by a Host when the platform reports no
// primary display.
var ErrNoPrimaryMonitor = errors.New("no primary monitor")

// MonitorGeometry is the primary display size in pixels at query time.
type MonitorGeometry struct {
	Width  int
	Height int
}

// WindowSize is a window size in logical pixels.
type WindowSize struct {
	Width  float32
	Height float32
}

// Window is the subset of a native window the configurator mutates.
type Window interface {
	SetLogicalSize(size WindowSize) error
	Center() error
}

// Host abstracts the GUI framework: window lookup and display enumeration.
type Host interface {
	MainWindow() (Window, bool)
	PrimaryMonitor() (MonitorGeometry, error)
}

// State records whether Configure has run.
type State int

const (
	NotConfigured State = iota
	Configured
)

func (s State) String() string {
	switch s {
	case NotConfigured:
		return "not_configured"
	case Configured:
		return "configured"
	default:
		return "unknown"
	}
}

// TargetSize returns the logical window size for the given monitor,
// rounding half away from zero.
func TargetSize(m MonitorGeometry) WindowSize {
	return WindowSize{
		Width:  float32(math.Round(float64(m.Width) * Fraction)),
		Height: float32(math.Round(float64(m.Height) * Fraction)),
	}
}

// Configurator applies the startup size and position to the main window.
type Configurator struct {
	host   Host
	logger logger.Logger
	state  State
}

// NewConfigurator returns a Configurator for host. A nil log discards output.
func NewConfigurator(host Host, log logger.Logger) *Configurator {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Configurator{
		host:   host,
		logger: log,
		state:  NotConfigured,
	}
}

// State reports whether Configure has been called.
func (c *Configurator) State() State {
	return c.state
}

// Configure resizes the main window to Fraction of the primary monitor and
// centers it. Every failure leaves the window at its current size; nothing
// is returned to the caller.
func (c *Configurator) Configure() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warning("Placement", "window placement panicked", map[string]interface{}{
				"panic": r,
			})
		}
		c.state = Configured
	}()

	win, ok := c.host.MainWindow()
	if !ok || win == nil {
		c.logger.Debug("Placement", "main window not found, skipping", nil)
		return
	}

	monitor, err := c.host.PrimaryMonitor()
	if err != nil {
		c.logger.Debug("Placement", "primary monitor unavailable, skipping", map[string]interface{}{
			"reason": err.Error(),
		})
		return
	}
	if monitor.Width <= 0 || monitor.Height <= 0 {
		c.logger.Debug("Placement", "primary monitor reported empty geometry, skipping", map[string]interface{}{
			"width":  monitor.Width,
			"height": monitor.Height,
		})
		return
	}

	size := TargetSize(monitor)
	sizeErr := win.SetLogicalSize(size)
	if sizeErr != nil {
		c.logger.Debug("Placement", "set size rejected", map[string]interface{}{
			"reason": sizeErr.Error(),
		})
	}
	centerErr := win.Center()
	if centerErr != nil {
		c.logger.Debug("Placement", "center rejected", map[string]interface{}{
			"reason": centerErr.Error(),
		})
	}
	if sizeErr != nil || centerErr != nil {
		c.logger.Debug("Placement", "placement incomplete", map[string]interface{}{
			"size_applied": sizeErr == nil,
			"centered":     centerErr == nil,
		})
		return
	}

	c.logger.Info("Placement", "main window placed", map[string]interface{}{
		"monitor_width":  monitor.Width,
		"monitor_height": monitor.Height,
		"window_width":   size.Width,
		"window_height":  size.Height,
	})
}

// Hook adapts Configure to a setup callback. It always reports success.
func (c *Configurator) Hook() func() error {
	return func() error {
		c.Configure()
		return nil
	}
}
