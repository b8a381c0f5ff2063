package cli

import (
	"fmt"
	"strconv"
	"strings"

	"memgraph/process"
)

// parseAddress parses a hexadecimal address, with or without the 0x prefix.
func parseAddress(s string) (process.Address, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	v, err := strconv.ParseUint(trimmed, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("bad address %q: %w", s, err)
	}
	return process.Address(v), nil
}
