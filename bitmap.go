package framepool

// FrameState ...
type FrameState uint8

const (
	// StateFree marks a frame available for allocation.
	StateFree FrameState = 0
	// StateUsed marks an allocated frame that is not the first of its
	// sequence.
	StateUsed FrameState = 1
	// StateHeadOfSequence marks the first frame of a contiguous
	// allocation, single-frame allocations included.
	StateHeadOfSequence FrameState = 2

	// The fourth 2-bit encoding is unused, reserved.
)

const stateMask = 0x3

// stateBitmap packs the state of 4 frames into each byte. Indexing is
// relative: slot 0 is the owning pool's first managed frame.
type stateBitmap struct {
	data []byte
}

func (b stateBitmap) get(rel uint64) FrameState {
	bit := rel << 1
	shift := bit & 7
	return FrameState(b.data[bit>>3] >> shift & stateMask)
}

func (b stateBitmap) set(rel uint64, state FrameState) {
	bit := rel << 1
	idx := bit >> 3
	shift := bit & 7
	b.data[idx] = b.data[idx]&^(stateMask<<shift) | byte(state)<<shift
}

func (b stateBitmap) clear() {
	for i := range b.data {
		b.data[i] = 0
	}
}
