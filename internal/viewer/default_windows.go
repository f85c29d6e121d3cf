//go:build windows

package viewer

// Default returns the shell file association handler, started without
// waiting as the shell does for double-clicked files.
func Default() Opener {
	return &CommandOpener{Name: "rundll32", Args: []string{"url.dll,FileProtocolHandler"}}
}
