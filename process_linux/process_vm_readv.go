//go:build linux

package process_linux

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"memgraph/process"
)

// readProcessMemory copies len(buf) bytes from addr in the target process into
// buf using the process_vm_readv syscall. The kernel performs the copy, so an
// unmapped or unreadable source range surfaces as an errno instead of a fault
// in this process. Reading the caller's own pid is allowed and needs no
// ptrace attachment.
func readProcessMemory(pid int, addr process.Address, buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}

	localIov := unix.Iovec{
		Base: &buf[0],
		Len:  uint64(len(buf)),
	}
	remoteIov := unix.RemoteIovec{
		Base: uintptr(addr),
		Len:  len(buf),
	}

	n, _, errno := unix.Syscall6(
		unix.SYS_PROCESS_VM_READV,
		uintptr(pid),
		uintptr(unsafe.Pointer(&localIov)),
		uintptr(1),
		uintptr(unsafe.Pointer(&remoteIov)),
		uintptr(1),
		uintptr(0),
	)

	if errno != 0 {
		return 0, fmt.Errorf("process_vm_readv at %s: %s (errno %d)", addr.Hex(), errno.Error(), int(errno))
	}
	return int(n), nil
}
