//go:build !linux && !darwin && !windows

package viewer

import "runtime"

// Default returns Unsupported: there is no known launcher on this platform.
func Default() Opener {
	return Unsupported{Platform: runtime.GOOS}
}
