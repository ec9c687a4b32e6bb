// Package hostinfo reads the platform identification data the board
// classifier consumes: CPU architecture, the cpuinfo Hardware field, the
// device-tree model string and the board revision token.
package hostinfo

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// parseCPUInfoFrom extracts the first Hardware label value and the third
// whitespace-delimited token of the Revision line from cpuinfo-style data.
// Missing fields come back empty.
func parseCPUInfoFrom(r io.Reader) (hardware, revision string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		if hardware == "" && strings.HasPrefix(line, "Hardware") {
			if _, v, ok := strings.Cut(line, ":"); ok {
				hardware = strings.TrimSpace(v)
			}
			continue
		}

		if revision == "" && strings.HasPrefix(line, "Revision") {
			if fields := strings.Fields(line); len(fields) >= 3 {
				revision = fields[2]
			}
		}
	}

	return hardware, revision
}

// cleanModel strips the embedded NUL bytes firmware leaves in the
// device-tree model string.
func cleanModel(b []byte) string {
	return strings.TrimSpace(string(bytes.ReplaceAll(b, []byte{0}, nil)))
}

// charsToString converts a NUL-terminated C char buffer to a Go string.
// It accepts both signed and unsigned byte representations.
func charsToString[T ~int8 | ~uint8](ca []T) string {
	buf := make([]byte, 0, len(ca))

	for _, c := range ca {
		if c == 0 {
			break
		}
		buf = append(buf, byte(c))
	}

	return string(buf)
}
