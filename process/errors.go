package process

import "errors"

var (
	// ErrAddressNotMapped is returned when a memory address is not found within
	// any mapped, readable region of the target process.
	ErrAddressNotMapped = errors.New("address not mapped")

	// ErrRegionNotUnderstood is returned when an address claims a derived length
	// (symbol distance or heap allocation size) but the claimed range is not
	// actually backed by readable memory.
	ErrRegionNotUnderstood = errors.New("memory not understood")
)
