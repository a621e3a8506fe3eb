package app

import (
	"sync"

	"fyne.io/fyne/v2"

	"rlink/internal/logger"
)

type Lifecycle struct {
	fyneApp fyne.App
	logger  logger.Logger
	once    sync.Once
	done    chan struct{}
}

func NewLifecycle(a fyne.App, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		fyneApp: a,
		logger:  log,
		done:    make(chan struct{}),
	}
}

// Shutdown quits the fyne application once.
func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)
		l.fyneApp.Quit()
		close(l.done)
		l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
	})
}

func (l *Lifecycle) Done() <-chan struct{} {
	return l.done
}
