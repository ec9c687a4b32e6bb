//go:build linux

package hostinfo

import (
	"context"
	"os"
	"os/exec"
)

// ReadThrottleState shells out to `vcgencmd get_throttled`. Returns nil on
// systems without the tool (anything that is not a Raspberry Pi).
func ReadThrottleState(ctx context.Context) (*ThrottleState, error) {
	out, err := exec.CommandContext(ctx, "vcgencmd", "get_throttled").Output()
	if err != nil {
		return nil, nil
	}
	return parseThrottled(string(out))
}

// ReadSoCTemperature reads the first thermal zone from sysfs. Returns
// degrees Celsius.
func ReadSoCTemperature() (float64, error) {
	data, err := os.ReadFile("/sys/class/thermal/thermal_zone0/temp")
	if err != nil {
		return 0, err
	}
	return parseMilliCelsius(string(data))
}
