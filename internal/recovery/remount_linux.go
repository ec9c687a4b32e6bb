//go:build linux

package recovery

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func remountRootRW() error {
	if err := unix.Mount("", "/", "", unix.MS_REMOUNT, ""); err != nil {
		return fmt.Errorf("remount / read-write: %w", err)
	}
	return nil
}
