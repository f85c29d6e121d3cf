//go:build !windows

package main

import (
	"os"
	"syscall"
)

// stopSignals cancel the run context.
var stopSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
