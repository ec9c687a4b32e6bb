//go:build !linux

package recovery

import "errors"

func remountRootRW() error {
	return errors.New("root remount is only supported on linux")
}
