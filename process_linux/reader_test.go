//go:build linux

package process_linux

import (
	"bytes"
	"errors"
	"testing"
	"unsafe"

	"memgraph/process"
)

func selfReader(t *testing.T) *Reader {
	t.Helper()
	r, err := Self()
	if err != nil {
		t.Fatalf("open self: %v", err)
	}
	return r
}

func TestReadStrictSelf(t *testing.T) {
	r := selfReader(t)

	sentinel := []byte("the quick brown fox jumps over the lazy dog, twice over!")
	addr := process.Address(uintptr(unsafe.Pointer(&sentinel[0])))

	data, err := r.ReadStrict(addr, process.Size(len(sentinel)))
	if errors.Is(err, process.ErrAddressNotMapped) {
		t.Skipf("process_vm_readv not usable here: %v", err)
	}
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, sentinel) {
		t.Errorf("read back %q", data)
	}
}

func TestReadStrictUnmapped(t *testing.T) {
	r := selfReader(t)
	if _, err := r.ReadStrict(0x10, 8); !errors.Is(err, process.ErrAddressNotMapped) {
		t.Fatalf("expected ErrAddressNotMapped, got %v", err)
	}
}

func TestReadPrefixSelf(t *testing.T) {
	r := selfReader(t)

	buf := make([]byte, 256)
	for i := range buf {
		buf[i] = byte(i)
	}
	addr := process.Address(uintptr(unsafe.Pointer(&buf[0])))

	data, err := r.ReadPrefix(addr, 128)
	if err != nil {
		t.Skipf("process_vm_readv not usable here: %v", err)
	}
	if len(data) != 128 {
		t.Fatalf("prefix = %d bytes, want 128", len(data))
	}
	if !bytes.Equal(data, buf[:128]) {
		t.Error("prefix content mismatch")
	}
}

func TestIsValidAddress(t *testing.T) {
	r := selfReader(t)

	if r.IsValidAddress(0) || r.IsValidAddress(0x8000) {
		t.Error("null page must be invalid")
	}
	if r.IsValidAddress(0xFFFF_FFFF_FFFF_0000) {
		t.Error("kernel half must be invalid")
	}

	local := make([]byte, 64)
	addr := process.Address(uintptr(unsafe.Pointer(&local[0])))
	if !r.IsValidAddress(addr) {
		t.Errorf("own heap address %s should be mapped", addr.Hex())
	}
}
