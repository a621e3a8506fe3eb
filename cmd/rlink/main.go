// Command rlink is the R-Link desktop shell.
package main

import (
	"context"
	"os"
	"runtime"

	"rlink/internal/app"
	"rlink/internal/config"
	"rlink/internal/shutdown"
)

func main() {
	cfg := config.Load()
	log := cfg.NewLogger()

	log.Info("Main", "starting", map[string]interface{}{
		"version":    app.AppVersion,
		"app_id":     cfg.AppID,
		"go_version": runtime.Version(),
		"os":         runtime.GOOS,
		"log_level":  cfg.LogLevel.String(),
	})

	application := app.New(cfg, app.WithLogger(log))

	shutdownMgr := shutdown.NewManager(log)
	shutdownMgr.Register(application)
	shutdownMgr.Listen()

	if err := application.Run(); err != nil {
		log.Error("Main", err, nil)
		os.Exit(1)
	}

	log.Info("Main", "terminated", map[string]interface{}{
		"reason": exitReason(shutdownMgr, application.Lifecycle()),
	})
}

type doneSignaler interface {
	Done() <-chan struct{}
}

type contextProvider interface {
	Context() context.Context
}

// exitReason reports why the event loop returned.
func exitReason(mgr contextProvider, lifecycle doneSignaler) string {
	if mgr.Context().Err() != nil {
		return "signal"
	}
	select {
	case <-lifecycle.Done():
		return "window closed"
	default:
		return "event loop exited"
	}
}
