//go:build windows

package main

import "os"

// stopSignals cancel the run context. SIGTERM does not exist on Windows.
var stopSignals = []os.Signal{os.Interrupt}
