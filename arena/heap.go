package arena

// Heap is a slice-backed frame source covering frames [0, nFrames).
type Heap struct {
	frameSize uint64
	data      []byte
}

// NewHeap ...
func NewHeap(frameSize uint64, nFrames uint64) *Heap {
	if frameSize == 0 {
		panic("arena: frame size must > 0")
	}
	return &Heap{
		frameSize: frameSize,
		data:      make([]byte, frameSize*nFrames),
	}
}

// FrameSpan ...
func (h *Heap) FrameSpan(frameNo uint64, nFrames uint64) []byte {
	off := frameNo * h.frameSize
	return h.data[off : off+nFrames*h.frameSize]
}
