//go:build linux

package hostinfo

import (
	"os"
	"runtime"

	"golang.org/x/sys/unix"

	"github.com/nhdewitt/whichpi/internal/board"
)

const (
	cpuinfoPath         = "/proc/cpuinfo"
	deviceTreeModelPath = "/proc/device-tree/model"
)

// Detect captures the hardware identity of the running system. Fields whose
// source is unreadable are left empty; the classifier degrades gracefully.
func Detect() board.Identity {
	id := board.Identity{Arch: machineArch()}

	if f, err := os.Open(cpuinfoPath); err == nil {
		id.Hardware, id.Revision = parseCPUInfoFrom(f)
		f.Close()
	}

	if b, err := os.ReadFile(deviceTreeModelPath); err == nil {
		id.Model = cleanModel(b)
	}

	return id
}

func machineArch() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return runtime.GOARCH
	}
	return charsToString(uts.Machine[:])
}
