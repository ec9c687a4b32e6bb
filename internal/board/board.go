// Package board identifies single-board computer models from platform
// identification strings. Classification is a pure string transformation:
// unknown input yields a sentinel or an empty string, never an error.
package board

import "strings"

// Identity holds the raw hardware-identification inputs, captured once per
// invocation. Unavailable fields are left empty.
type Identity struct {
	Arch     string // machine architecture, e.g. "aarch64" or "x86_64"
	Hardware string // value of the first cpuinfo "Hardware" label
	Model    string // device-tree model string, NUL bytes stripped
	Revision string // raw revision token, e.g. "100a02082"
}

// Mode selects what Classify reports.
type Mode int

const (
	// ModeFullName reports the human-readable model descriptor.
	ModeFullName Mode = iota
	// ModeMemory reports only the installed memory size.
	ModeMemory
)

// UnknownARM is returned for ARM systems whose revision code is not in the
// table.
const UnknownARM = "Unknown ARM based System"

// revisionPrefix is a fixed numeric prefix some firmwares prepend to the
// revision field; it is stripped before table matching.
const revisionPrefix = "100"

// Classify maps an identity to a board descriptor. In ModeMemory only the
// revision table is consulted and the parenthesized capacity is extracted;
// a descriptor without one yields "".
func Classify(id Identity, mode Mode) string {
	if mode == ModeMemory {
		return memorySize(lookupRevision(id.Revision))
	}

	// Clone-board signatures win regardless of the architecture tag.
	switch {
	case strings.HasPrefix(id.Hardware, "ODROID"):
		return "Odroid XU3/XU4 System"
	case strings.Contains(id.Hardware, "sun8i"):
		return "sun8i based Pi Clone"
	case strings.Contains(id.Hardware, "s5p4418"):
		return "Samsung Artik"
	}

	if !isARM(id.Arch) {
		return "Generic " + id.Arch + " class computer"
	}

	// A Pi-branded device-tree model takes precedence over the revision
	// table whenever it is present.
	switch {
	case strings.HasPrefix(id.Model, "Raspberry"):
		return id.Model
	case strings.HasPrefix(id.Model, "Libre"):
		return strings.Replace(id.Model, "Libre Computer", "", 1)
	}

	return lookupRevision(id.Revision)
}

// lookupRevision normalizes a raw revision token and matches it against the
// table by suffix, longest key first.
func lookupRevision(raw string) string {
	code := strings.TrimPrefix(raw, revisionPrefix)
	if key, ok := longestSuffixKey(code, revisionKeys); ok {
		return revisionTable[key]
	}
	return UnknownARM
}

// longestSuffixKey returns the first key in keys that is a suffix of code.
// Callers must pass keys sorted longest first for longest-match semantics.
func longestSuffixKey(code string, keys []string) (string, bool) {
	if code == "" {
		return "", false
	}
	for _, k := range keys {
		if strings.HasSuffix(code, k) {
			return k, true
		}
	}
	return "", false
}

// memorySize extracts the first parenthesized group of a descriptor,
// e.g. "(512MB)" -> "512MB".
func memorySize(desc string) string {
	open := strings.Index(desc, "(")
	if open == -1 {
		return ""
	}
	rest := desc[open+1:]
	end := strings.Index(rest, ")")
	if end == -1 {
		return ""
	}
	return rest[:end]
}

func isARM(arch string) bool {
	return strings.HasPrefix(arch, "arm") ||
		strings.HasPrefix(arch, "ARM") ||
		strings.HasPrefix(arch, "aarch64")
}
