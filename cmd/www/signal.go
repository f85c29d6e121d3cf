package main

import (
	"context"
	"os/signal"
)

// notifyContext returns a context canceled by any of stopSignals.
// The sanity batch checks it between files; a single page is never cut short.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, stopSignals...)
}
