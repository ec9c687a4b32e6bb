//go:build !linux

package hostinfo

import (
	"context"
	"errors"
)

// ReadThrottleState is a no-op off Linux.
func ReadThrottleState(ctx context.Context) (*ThrottleState, error) {
	return nil, nil
}

// ReadSoCTemperature is unavailable off Linux.
func ReadSoCTemperature() (float64, error) {
	return 0, errors.New("thermal sysfs is only available on linux")
}
