package process

import (
	"fmt"
	"strconv"
	"strings"
)

// AOB (array of bytes) is a byte pattern to search for in process memory.
// Mask entries of 0xFF require an exact match; 0x00 entries are wildcards.
type AOB struct {
	Pattern []byte
	Mask    []byte
}

// IsValid reports whether the pattern and mask lengths agree.
func (aob AOB) IsValid() bool {
	return len(aob.Pattern) > 0 && len(aob.Pattern) == len(aob.Mask)
}

func (aob AOB) String() string {
	parts := make([]string, len(aob.Pattern))
	for i, b := range aob.Pattern {
		if i < len(aob.Mask) && aob.Mask[i] == 0 {
			parts[i] = "??"
		} else {
			parts[i] = fmt.Sprintf("%02x", b)
		}
	}
	return strings.Join(parts, ",")
}

// ParseAOB parses a comma-separated hex pattern such as "48,8b,??,f0".
// "??" marks a wildcard byte.
func ParseAOB(s string) (AOB, error) {
	fields := strings.Split(s, ",")
	aob := AOB{
		Pattern: make([]byte, 0, len(fields)),
		Mask:    make([]byte, 0, len(fields)),
	}
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "??" {
			aob.Pattern = append(aob.Pattern, 0)
			aob.Mask = append(aob.Mask, 0)
			continue
		}
		v, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			return AOB{}, fmt.Errorf("bad pattern byte %q: %w", f, err)
		}
		aob.Pattern = append(aob.Pattern, byte(v))
		aob.Mask = append(aob.Mask, 0xFF)
	}
	if !aob.IsValid() {
		return AOB{}, fmt.Errorf("empty pattern")
	}
	return aob, nil
}
