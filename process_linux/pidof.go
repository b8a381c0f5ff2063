//go:build linux

package process_linux

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// FindPID returns the first pid whose comm or exe basename equals name.
// The match is case-sensitive, like pidof. The calling process is skipped.
func FindPID(name string) (int, error) {
	if name == "" {
		return 0, errors.New("empty name")
	}

	entries, err := os.ReadDir("/proc")
	if err != nil {
		return 0, fmt.Errorf("read /proc: %w", err)
	}

	selfPID := os.Getpid()
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(e.Name())
		if err != nil || pid <= 0 || pid == selfPID {
			continue
		}

		comm, _ := os.ReadFile(filepath.Join("/proc", e.Name(), "comm"))
		if string(bytes.TrimRight(comm, "\n")) == name {
			return pid, nil
		}

		exe, err := os.Readlink(filepath.Join("/proc", e.Name(), "exe"))
		if err == nil && filepath.Base(exe) == name {
			return pid, nil
		}
	}

	return 0, fmt.Errorf("no process named %q", name)
}
