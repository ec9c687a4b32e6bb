package hostinfo

import "testing"

func TestParseThrottled(t *testing.T) {
	ts, err := parseThrottled("throttled=0x50005\n")
	if err != nil {
		t.Fatalf("parseThrottled() error: %v", err)
	}

	if !ts.Undervoltage {
		t.Error("expected Undervoltage set")
	}
	if !ts.Throttled {
		t.Error("expected Throttled set")
	}
	if ts.ArmFreqCapped || ts.SoftTempLimit {
		t.Error("unexpected current-status bits set")
	}
	if !ts.UndervoltageOccurred || !ts.ThrottledOccurred {
		t.Error("expected historical undervoltage and throttle bits set")
	}
	if ts.FreqCapOccurred || ts.SoftTempLimitOccurred {
		t.Error("unexpected historical bits set")
	}
}

func TestParseThrottled_Clean(t *testing.T) {
	ts, err := parseThrottled("throttled=0x0")
	if err != nil {
		t.Fatalf("parseThrottled() error: %v", err)
	}
	if *ts != (ThrottleState{}) {
		t.Errorf("expected all flags clear, got %+v", *ts)
	}
}

func TestParseThrottled_Invalid(t *testing.T) {
	if _, err := parseThrottled("garbage"); err == nil {
		t.Error("expected error for non-numeric input")
	}
}

func TestParseMilliCelsius(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"48312\n", 48.312, false},
		{"0", 0, false},
		{"-5000", -5, false},
		{"hot", 0, true},
	}

	for _, tt := range tests {
		got, err := parseMilliCelsius(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseMilliCelsius(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseMilliCelsius(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseMilliCelsius(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
