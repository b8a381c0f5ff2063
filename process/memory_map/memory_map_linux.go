//go:build linux

package memory_map

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"memgraph/process"
)

// Read parses /proc/<pid>/maps and returns the mappings sorted by start
// address.
func Read(pid int) ([]Mapping, error) {
	file, err := os.Open(fmt.Sprintf("/proc/%d/maps", pid))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var mappings []Mapping
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		// "00400000-0040b000"
		addrRange := strings.Split(fields[0], "-")
		if len(addrRange) != 2 {
			continue
		}
		start, err := strconv.ParseUint(addrRange[0], 16, 64)
		if err != nil {
			continue
		}
		end, err := strconv.ParseUint(addrRange[1], 16, 64)
		if err != nil {
			continue
		}

		path := ""
		if len(fields) >= 6 {
			path = fields[5]
		}

		mappings = append(mappings, Mapping{
			Start: process.Address(start),
			Size:  process.Size(end - start),
			Perms: fields[1],
			Path:  path,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	Sort(mappings)
	return mappings, nil
}
