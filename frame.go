// Package framepool implements a contiguous physical frame allocator:
// pools of fixed-size memory frames tracked with 2 bits of state per
// frame, first-fit contiguous allocation, and release given only a frame
// number. Every operation is a synchronous in-memory scan or bit
// manipulation; callers on multiple cores must serialize externally.
package framepool

// Frame numbers index a flat physical address space starting at 0; the
// frame size is a compile-time constant shared with the rest of the
// kernel.
const (
	FrameShift = 12
	FrameSize  = 1 << FrameShift
)

// Memory maps a range of physical frames to its backing bytes. It is
// supplied by the platform/boot layer; the pool itself never performs raw
// address arithmetic. The returned span must cover exactly
// nFrames*FrameSize bytes starting at frameNo*FrameSize.
type Memory interface {
	FrameSpan(frameNo uint64, nFrames uint64) []byte
}

// NeededInfoFrames returns how many whole frames are required to hold the
// state bitmap of a pool managing nFrames frames.
func NeededInfoFrames(nFrames uint64) uint64 {
	bytes := (nFrames<<1 + 7) >> 3
	return (bytes + FrameSize - 1) >> FrameShift
}
