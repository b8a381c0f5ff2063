//go:build linux

package process_linux

import (
	"fmt"

	"memgraph/process"
)

// Scan searches every readable mapping for the pattern and returns all match
// addresses. Regions that fail to read are skipped, not fatal.
func (r *Reader) Scan(aob process.AOB) ([]process.Address, error) {
	if !aob.IsValid() {
		return nil, fmt.Errorf("invalid pattern")
	}

	r.log.Infoln("Scanning for pattern of length", len(aob.Pattern))

	var results []process.Address
	for _, m := range r.Mappings() {
		if !m.IsReadable() {
			continue
		}
		data, err := r.ReadPrefix(m.Start, m.Size)
		if err != nil {
			r.log.Debugln("skipping unreadable mapping at", m.Start.Hex())
			continue
		}
		for _, off := range findPatternMatches(data, aob.Pattern, aob.Mask) {
			results = append(results, m.Start.Add(process.Size(off)))
		}
	}

	r.log.Infoln("Scan complete,", len(results), "matches")
	return results, nil
}

func findPatternMatches(data, pattern, mask []byte) []int {
	var matches []int
	if len(pattern) == 0 || len(data) < len(pattern) {
		return nil
	}
outer:
	for i := 0; i <= len(data)-len(pattern); i++ {
		for j := range pattern {
			if mask[j] == 0xFF && data[i+j] != pattern[j] {
				continue outer
			}
		}
		matches = append(matches, i)
	}
	return matches
}
