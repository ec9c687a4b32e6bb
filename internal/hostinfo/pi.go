package hostinfo

import (
	"fmt"
	"strconv"
	"strings"
)

// ThrottleState decodes the firmware throttle bitmask reported by
// `vcgencmd get_throttled` on Raspberry Pi boards.
type ThrottleState struct {
	// Current status
	Undervoltage  bool
	ArmFreqCapped bool
	Throttled     bool
	SoftTempLimit bool

	// Has occurred since boot
	UndervoltageOccurred  bool
	FreqCapOccurred       bool
	ThrottledOccurred     bool
	SoftTempLimitOccurred bool
}

// parseThrottled parses output like "throttled=0x50005".
func parseThrottled(s string) (*ThrottleState, error) {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "="); idx != -1 {
		s = s[idx+1:]
	}

	val, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid throttle value %q: %w", s, err)
	}

	return &ThrottleState{
		Undervoltage:  val&(1<<0) != 0,
		ArmFreqCapped: val&(1<<1) != 0,
		Throttled:     val&(1<<2) != 0,
		SoftTempLimit: val&(1<<3) != 0,

		UndervoltageOccurred:  val&(1<<16) != 0,
		FreqCapOccurred:       val&(1<<17) != 0,
		ThrottledOccurred:     val&(1<<18) != 0,
		SoftTempLimitOccurred: val&(1<<19) != 0,
	}, nil
}

// parseMilliCelsius converts a sysfs thermal reading (millidegrees) to
// degrees Celsius.
func parseMilliCelsius(s string) (float64, error) {
	val, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	return float64(val) / 1000.0, nil
}
