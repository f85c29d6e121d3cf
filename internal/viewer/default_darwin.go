//go:build darwin

package viewer

// Default returns the macOS launcher.
func Default() Opener {
	return &CommandOpener{Name: "open", Wait: true}
}
