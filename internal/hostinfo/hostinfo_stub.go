//go:build !linux

package hostinfo

import (
	"runtime"

	"github.com/nhdewitt/whichpi/internal/board"
)

// Detect on non-Linux systems carries only the compile-time architecture,
// so classification falls through to the generic fallback.
func Detect() board.Identity {
	return board.Identity{Arch: runtime.GOARCH}
}
