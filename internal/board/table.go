package board

import "sort"

// revisionTable maps a normalized revision-code suffix to the board
// descriptor: model, hardware revision, RAM size, manufacturer. Keys are
// 4 to 6 hex characters; lookup is by suffix with the longest key winning.
var revisionTable = map[string]string{
	// Old-style revision codes (pre-2016 boards).
	"0002": "Pi Model B Rev 1.0 (256MB) - Egoman",
	"0003": "Pi Model B Rev 1.0 (256MB) - Egoman",
	"0004": "Pi Model B Rev 2.0 (256MB) - Sony, UK",
	"0005": "Pi Model B Rev 2.0 (256MB) - Qisda",
	"0006": "Pi Model B Rev 2.0 (256MB) - Egoman",
	"0007": "Pi Model A Rev 2.0 (256MB) - Egoman",
	"0008": "Pi Model A Rev 2.0 (256MB) - Sony, UK",
	"0009": "Pi Model A Rev 2.0 (256MB) - Qisda",
	"000d": "Pi Model B Rev 2.0 (512MB) - Egoman",
	"000e": "Pi Model B Rev 2.0 (512MB) - Sony, UK",
	"000f": "Pi Model B Rev 2.0 (512MB) - Qisda",
	"0010": "Pi Model B+ Rev 1.2 (512MB) - Sony, UK",
	"0011": "Pi Compute Module 1 (512MB) - Sony, UK",
	"0012": "Pi Model A+ Rev 1.1 (256MB) - Sony, UK",
	"0013": "Pi Model B+ Rev 1.2 (512MB) - Embest, China",
	"0014": "Pi Compute Module 1 (512MB) - Embest, China",
	"0015": "Pi Model A+ Rev 1.1 (256MB/512MB) - Embest, China",

	// New-style revision codes.
	"900021": "Pi Model A+ Rev 1.1 (512MB) - Sony, UK",
	"900032": "Pi Model B+ Rev 1.2 (512MB) - Sony, UK",
	"900061": "Pi Compute Module 1 Rev 1.1 (512MB) - Sony, UK",
	"900092": "Pi Zero Rev 1.2 (512MB) - Sony, UK",
	"900093": "Pi Zero Rev 1.3 (512MB) - Sony, UK",
	"920092": "Pi Zero Rev 1.2 (512MB) - Embest, China",
	"920093": "Pi Zero Rev 1.3 (512MB) - Embest, China",
	"9000c1": "Pi Zero W Rev 1.1 (512MB) - Sony, UK",
	"902120": "Pi Zero 2 W Rev 1.0 (512MB) - Sony, UK",
	"9020e0": "Pi 3 Model A+ Rev 1.0 (512MB) - Sony, UK",
	"a01040": "Pi 2 Model B Rev 1.0 (1GB) - Sony, UK",
	"a01041": "Pi 2 Model B Rev 1.1 (1GB) - Sony, UK",
	"a21041": "Pi 2 Model B Rev 1.1 (1GB) - Embest, China",
	"a02042": "Pi 2 Model B Rev 1.2 (1GB) - Sony, UK",
	"a22042": "Pi 2 Model B Rev 1.2 (1GB) - Embest, China",
	"a020a0": "Pi Compute Module 3 Rev 1.0 (1GB) - Sony, UK",
	"a220a0": "Pi Compute Module 3 Rev 1.0 (1GB) - Embest, China",
	"a02082": "Pi 3 Model B Rev 1.2 (1GB) - Sony, UK",
	"a22082": "Pi 3 Model B Rev 1.2 (1GB) - Embest, China",
	"a32082": "Pi 3 Model B Rev 1.2 (1GB) - Sony, Japan",
	"a52082": "Pi 3 Model B Rev 1.2 (1GB) - Stadium, Macau",
	"a22083": "Pi 3 Model B Rev 1.3 (1GB) - Embest, China",
	"a020d3": "Pi 3 Model B+ Rev 1.3 (1GB) - Sony, UK",
	"a02100": "Pi Compute Module 3+ Rev 1.0 (1GB) - Sony, UK",
	"a03111": "Pi 4 Model B Rev 1.1 (1GB) - Sony, UK",
	"b03111": "Pi 4 Model B Rev 1.1 (2GB) - Sony, UK",
	"b03112": "Pi 4 Model B Rev 1.2 (2GB) - Sony, UK",
	"b03114": "Pi 4 Model B Rev 1.4 (2GB) - Sony, UK",
	"b03115": "Pi 4 Model B Rev 1.5 (2GB) - Sony, UK",
	"c03111": "Pi 4 Model B Rev 1.1 (4GB) - Sony, UK",
	"c03112": "Pi 4 Model B Rev 1.2 (4GB) - Sony, UK",
	"c03114": "Pi 4 Model B Rev 1.4 (4GB) - Sony, UK",
	"c03115": "Pi 4 Model B Rev 1.5 (4GB) - Sony, UK",
	"d03114": "Pi 4 Model B Rev 1.4 (8GB) - Sony, UK",
	"d03115": "Pi 4 Model B Rev 1.5 (8GB) - Sony, UK",
	"c03130": "Pi 400 Rev 1.0 (4GB) - Sony, UK",
	"a03140": "Pi Compute Module 4 Rev 1.0 (1GB) - Sony, UK",
	"b03140": "Pi Compute Module 4 Rev 1.0 (2GB) - Sony, UK",
	"c03140": "Pi Compute Module 4 Rev 1.0 (4GB) - Sony, UK",
	"d03140": "Pi Compute Module 4 Rev 1.0 (8GB) - Sony, UK",
	"b04170": "Pi 5 Rev 1.0 (4GB) - Sony, UK",
	"c04170": "Pi 5 Rev 1.0 (8GB) - Sony, UK",
	"d04170": "Pi 5 Rev 1.0 (16GB) - Sony, UK",
	"c04180": "Pi 500 Rev 1.0 (8GB) - Sony, UK",
}

// revisionKeys holds the table keys sorted longest first so that a more
// specific suffix always wins over a shorter one that also matches.
var revisionKeys = sortedKeys(revisionTable)

func sortedKeys(table map[string]string) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}
