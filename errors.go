package ezx

import "fmt"

// AllocationError reports an attempt to create or resize an image with
// non-positive dimensions.
type AllocationError struct {
	Width  int
	Height int
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("ezx: cannot allocate %dx%d image (both dimensions must be > 0)", e.Width, e.Height)
}

// RangeError reports a region or coordinate operation that falls outside
// the bounds of its source buffer.
type RangeError struct {
	X, Y          int
	Width, Height int
	BoundsWidth   int
	BoundsHeight  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("ezx: region (%d,%d %dx%d) exceeds %dx%d bounds",
		e.X, e.Y, e.Width, e.Height, e.BoundsWidth, e.BoundsHeight)
}

// DecodeError reports a raw message record whose kind code is not part of
// the engine ABI. No variant is constructed for such records.
type DecodeError struct {
	Kind uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("ezx: unrecognized message kind 0x%04X", e.Kind)
}

// InvalidStateError reports a protocol violation: batch calls outside the
// Recording state, or an operation through a working-surface borrow that a
// later SetWorkingImage invalidated.
type InvalidStateError struct {
	Op     string
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("ezx: %s: %s", e.Op, e.Reason)
}

// EncodingError reports a packed color value with bits outside the 24-bit
// component range. The Color invariant makes this unreachable for values
// produced by this package; it is still checked at the boundary.
type EncodingError struct {
	Value uint32
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("ezx: packed color 0x%08X outside 24-bit range", e.Value)
}
