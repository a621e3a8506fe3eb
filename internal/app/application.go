package app

import (
	"errors"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"rlink/internal/config"
	"rlink/internal/desktop"
	"rlink/internal/logger"
	"rlink/internal/placement"
)

const (
	AppName       = "R-Link"
	AppVersion    = "1.0.0"
	DefaultWidth  = 800
	DefaultHeight = 600
)

var ErrAlreadyRunning = errors.New("application already running")

// SetupHook runs once before the main window is shown. A non-nil error
// aborts startup.
type SetupHook func() error

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	host       *desktop.Host
	logger     logger.Logger
	configurer *placement.Configurator
	lifecycle  *Lifecycle

	mu      sync.Mutex
	hooks   []SetupHook
	running bool
}

type Option func(*options)

type options struct {
	fyneApp fyne.App
	display desktop.Display
	logger  logger.Logger
}

// WithFyneApp uses a instead of creating a new fyne application.
func WithFyneApp(a fyne.App) Option {
	return func(o *options) { o.fyneApp = a }
}

// WithDisplay replaces the platform display query.
func WithDisplay(d desktop.Display) Option {
	return func(o *options) { o.display = d }
}

func WithLogger(l logger.Logger) Option {
	return func(o *options) { o.logger = l }
}

func New(cfg config.Config, opts ...Option) *Application {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = cfg.NewLogger()
	}
	if o.fyneApp == nil {
		o.fyneApp = fyneapp.NewWithID(cfg.AppID)
	}

	window := o.fyneApp.NewWindow(AppName)
	window.SetContent(container.NewCenter(widget.NewLabel(AppName)))
	window.Resize(fyne.NewSize(DefaultWidth, DefaultHeight))
	window.SetMaster()

	host := desktop.NewHost(o.display)
	host.Register(desktop.MainLabel, window)

	configurer := placement.NewConfigurator(host, o.logger)

	a := &Application{
		fyneApp:    o.fyneApp,
		window:     window,
		host:       host,
		logger:     o.logger,
		configurer: configurer,
		lifecycle:  NewLifecycle(o.fyneApp, o.logger),
	}
	a.OnSetup(configurer.Hook())

	a.logger.Info("Application", "initialized", map[string]interface{}{
		"app_id":  cfg.AppID,
		"version": AppVersion,
	})
	return a
}

// OnSetup appends a hook to run before the main window is shown.
func (a *Application) OnSetup(hook SetupHook) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, hook)
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) Host() *desktop.Host {
	return a.host
}

func (a *Application) Placement() *placement.Configurator {
	return a.configurer
}

func (a *Application) Lifecycle() *Lifecycle {
	return a.lifecycle
}

// Run executes the setup hooks, shows the main window and blocks in the
// fyne event loop until the application quits. It may be called once.
func (a *Application) Run() error {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return ErrAlreadyRunning
	}
	a.running = true
	hooks := append([]SetupHook(nil), a.hooks...)
	a.mu.Unlock()

	for i, hook := range hooks {
		if err := hook(); err != nil {
			return fmt.Errorf("setup hook %d: %w", i, err)
		}
	}
	a.logger.Debug("Application", "setup complete", map[string]interface{}{
		"hooks":     len(hooks),
		"placement": a.configurer.State().String(),
	})

	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.window.Show()
	a.logger.Info("Application", "main window displayed", nil)
	a.fyneApp.Run()

	return nil
}

// Shutdown quits the event loop. It is safe to call more than once.
func (a *Application) Shutdown() {
	a.lifecycle.Shutdown()
}
