//go:build linux

package viewer

// Default returns the desktop launcher. xdg-open hands the file over and
// exits, so its status is meaningful.
func Default() Opener {
	return &CommandOpener{Name: "xdg-open", Wait: true}
}
