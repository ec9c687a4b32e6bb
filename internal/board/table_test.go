package board

import "testing"

func TestRevisionTable_KeysAreHex(t *testing.T) {
	for key := range revisionTable {
		if len(key) < 4 || len(key) > 6 {
			t.Errorf("key %q: length %d outside 4..6", key, len(key))
		}
		for _, c := range key {
			if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
				t.Errorf("key %q: non-hex character %q", key, c)
			}
		}
	}
}

func TestRevisionTable_DescriptorsCarryMemorySize(t *testing.T) {
	for key, desc := range revisionTable {
		if memorySize(desc) == "" {
			t.Errorf("key %q: descriptor %q has no parenthesized memory size", key, desc)
		}
	}
}

func TestMemorySize(t *testing.T) {
	tests := []struct {
		desc string
		want string
	}{
		{"Pi 4 Model B Rev 1.4 (8GB) - Sony, UK", "8GB"},
		{"Pi Model A+ Rev 1.1 (256MB/512MB) - Embest, China", "256MB/512MB"},
		{UnknownARM, ""},
		{"", ""},
		{"mismatched (paren", ""},
	}

	for _, tt := range tests {
		if got := memorySize(tt.desc); got != tt.want {
			t.Errorf("memorySize(%q) = %q, want %q", tt.desc, got, tt.want)
		}
	}
}
