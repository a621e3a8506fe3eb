package placement

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rlink/internal/logger"
)

type fakeWindow struct {
	size      WindowSize
	centered  bool
	sizeErr   error
	centerErr error
	calls     []string
}

func (w *fakeWindow) SetLogicalSize(size WindowSize) error {
	w.calls = append(w.calls, "size")
	if w.sizeErr != nil {
		return w.sizeErr
	}
	w.size = size
	return nil
}

func (w *fakeWindow) Center() error {
	w.calls = append(w.calls, "center")
	if w.centerErr != nil {
		return w.centerErr
	}
	w.centered = true
	return nil
}

type fakeHost struct {
	window       *fakeWindow
	monitor      MonitorGeometry
	monitorErr   error
	monitorCalls int
}

func (h *fakeHost) MainWindow() (Window, bool) {
	if h.window == nil {
		return nil, false
	}
	return h.window, true
}

func (h *fakeHost) PrimaryMonitor() (MonitorGeometry, error) {
	h.monitorCalls++
	return h.monitor, h.monitorErr
}

func TestTargetSize(t *testing.T) {
	tests := []struct {
		monitor MonitorGeometry
		want    WindowSize
	}{
		{MonitorGeometry{1920, 1080}, WindowSize{1344, 756}},
		{MonitorGeometry{2560, 1440}, WindowSize{1792, 1008}},
		{MonitorGeometry{1366, 768}, WindowSize{956, 538}},
		{MonitorGeometry{3840, 2160}, WindowSize{2688, 1512}},
		{MonitorGeometry{1, 1}, WindowSize{1, 1}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TargetSize(tt.monitor), "monitor %dx%d", tt.monitor.Width, tt.monitor.Height)
	}
}

func TestTargetSizeProperty(t *testing.T) {
	for w := 1; w <= 4000; w += 37 {
		for h := 1; h <= 3000; h += 53 {
			got := TargetSize(MonitorGeometry{w, h})
			require.Equal(t, float32(math.Round(0.7*float64(w))), got.Width)
			require.Equal(t, float32(math.Round(0.7*float64(h))), got.Height)
		}
	}
}

func TestConfigure(t *testing.T) {
	win := &fakeWindow{}
	host := &fakeHost{window: win, monitor: MonitorGeometry{1920, 1080}}
	c := NewConfigurator(host, nil)

	assert.Equal(t, NotConfigured, c.State())
	c.Configure()

	assert.Equal(t, Configured, c.State())
	assert.Equal(t, WindowSize{1344, 756}, win.size)
	assert.True(t, win.centered)
	assert.Equal(t, []string{"size", "center"}, win.calls)
}

func TestConfigureNoMainWindow(t *testing.T) {
	host := &fakeHost{monitor: MonitorGeometry{1920, 1080}}
	c := NewConfigurator(host, nil)

	c.Configure()

	assert.Zero(t, host.monitorCalls)
	assert.Equal(t, Configured, c.State())
}

func TestConfigureNoMonitor(t *testing.T) {
	for _, err := range []error{ErrNoPrimaryMonitor, errors.New("display server gone")} {
		win := &fakeWindow{size: WindowSize{800, 600}}
		host := &fakeHost{window: win, monitorErr: err}
		c := NewConfigurator(host, nil)

		assert.NotPanics(t, c.Configure)
		assert.Equal(t, 1, host.monitorCalls)
		assert.Empty(t, win.calls)
		assert.Equal(t, WindowSize{800, 600}, win.size)
	}
}

func TestConfigureEmptyGeometry(t *testing.T) {
	win := &fakeWindow{}
	host := &fakeHost{window: win, monitor: MonitorGeometry{0, 1080}}
	NewConfigurator(host, nil).Configure()
	assert.Empty(t, win.calls)
}

func TestConfigureSwallowsWindowErrors(t *testing.T) {
	win := &fakeWindow{sizeErr: errors.New("rejected"), centerErr: errors.New("rejected")}
	host := &fakeHost{window: win, monitor: MonitorGeometry{2560, 1440}}
	c := NewConfigurator(host, nil)

	assert.NotPanics(t, c.Configure)
	assert.Equal(t, []string{"size", "center"}, win.calls)
	assert.Equal(t, Configured, c.State())
}

func TestConfigureLogsPlacedOnlyOnSuccess(t *testing.T) {
	tests := []struct {
		name      string
		sizeErr   error
		centerErr error
		placed    bool
	}{
		{name: "both succeed", placed: true},
		{name: "size rejected", sizeErr: errors.New("rejected")},
		{name: "center rejected", centerErr: errors.New("rejected")},
		{name: "both rejected", sizeErr: errors.New("rejected"), centerErr: errors.New("rejected")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			win := &fakeWindow{sizeErr: tt.sizeErr, centerErr: tt.centerErr}
			host := &fakeHost{window: win, monitor: MonitorGeometry{1920, 1080}}

			NewConfigurator(host, logger.NewZerolog(&buf, zerolog.InfoLevel)).Configure()

			if tt.placed {
				assert.Contains(t, buf.String(), "main window placed")
			} else {
				assert.NotContains(t, buf.String(), "main window placed")
			}
		})
	}
}

type panicHost struct{}

func (panicHost) MainWindow() (Window, bool)               { panic("driver not ready") }
func (panicHost) PrimaryMonitor() (MonitorGeometry, error) { return MonitorGeometry{}, nil }

func TestConfigureRecoversPanic(t *testing.T) {
	c := NewConfigurator(panicHost{}, nil)
	assert.NotPanics(t, c.Configure)
	assert.Equal(t, Configured, c.State())
}

func TestConfigureIdempotent(t *testing.T) {
	win := &fakeWindow{}
	host := &fakeHost{window: win, monitor: MonitorGeometry{2560, 1440}}
	c := NewConfigurator(host, nil)

	c.Configure()
	first := win.size
	c.Configure()

	assert.Equal(t, first, win.size)
	assert.Equal(t, WindowSize{1792, 1008}, win.size)
	assert.Equal(t, 2, host.monitorCalls)
}

func TestConfigureRecomputes(t *testing.T) {
	win := &fakeWindow{}
	host := &fakeHost{window: win, monitor: MonitorGeometry{1920, 1080}}
	c := NewConfigurator(host, nil)

	c.Configure()
	host.monitor = MonitorGeometry{2560, 1440}
	c.Configure()

	assert.Equal(t, WindowSize{1792, 1008}, win.size)
}

func TestHook(t *testing.T) {
	host := &fakeHost{monitorErr: ErrNoPrimaryMonitor, window: &fakeWindow{}}
	hook := NewConfigurator(host, nil).Hook()
	assert.NoError(t, hook())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "not_configured", NotConfigured.String())
	assert.Equal(t, "configured", Configured.String())
	assert.Equal(t, "unknown", State(7).String())
}
