package framepool

// FramePool manages the allocation state of one contiguous range of
// physical frames. The bitmap holding that state lives either inside the
// pool's own leading frames (self-hosted) or in a caller-supplied frame.
type FramePool struct {
	states stateBitmap

	baseFrameNo uint64
	nFrames     uint64
	infoFrameNo uint64
	bitmapSize  uint64
}

func validatePoolArgs(reg *Registry, mem Memory, count uint64) {
	if reg == nil {
		panic("framepool: registry must not be nil")
	}
	if mem == nil {
		panic("framepool: memory must not be nil")
	}
	if count == 0 {
		panic("framepool: frame count must > 0")
	}
}

// NewPool constructs a pool over frames [base, base+count) and registers
// it with reg. With infoFrame == 0 the bitmap is carved out of the
// leading frames of the region itself and the managed range shrinks past
// them; otherwise the bitmap lives in the caller-supplied frame and the
// range is unchanged. Every managed frame is Free after construction.
func NewPool(reg *Registry, mem Memory, base uint64, count uint64, infoFrame uint64) *FramePool {
	validatePoolArgs(reg, mem, count)

	p := &FramePool{
		baseFrameNo: base,
		nFrames:     count,
		infoFrameNo: infoFrame,
		bitmapSize:  (count<<1 + 7) >> 3,
	}

	infoFrames := NeededInfoFrames(count)
	if infoFrame == 0 {
		if count <= infoFrames {
			panic("framepool: frame count too small to self-host bitmap")
		}
		p.states = stateBitmap{data: mem.FrameSpan(base, infoFrames)[:p.bitmapSize]}
		p.baseFrameNo = base + infoFrames
		p.nFrames = count - infoFrames
	} else {
		p.states = stateBitmap{data: mem.FrameSpan(infoFrame, infoFrames)[:p.bitmapSize]}
	}

	p.states.clear()

	reg.register(p)
	return p
}

// BaseFrameNo ...
func (p *FramePool) BaseFrameNo() uint64 {
	return p.baseFrameNo
}

// NFrames ...
func (p *FramePool) NFrames() uint64 {
	return p.nFrames
}

func (p *FramePool) contains(frameNo uint64) bool {
	return frameNo >= p.baseFrameNo && frameNo < p.baseFrameNo+p.nFrames
}

// Callers must keep frameNo inside the managed range; an out-of-range
// frame faults on the bitmap slice bounds.
func (p *FramePool) getState(frameNo uint64) FrameState {
	return p.states.get(frameNo - p.baseFrameNo)
}

func (p *FramePool) setState(frameNo uint64, state FrameState) {
	p.states.set(frameNo-p.baseFrameNo, state)
}

// GetFrames allocates the leftmost run of n contiguous free frames,
// marking its first frame HeadOfSequence and the rest Used, and returns
// the first frame number. It returns 0 when no run of length n exists or
// when n is 0; frame 0 is therefore never handed out as an allocation
// head, and real deployments place pools above it.
func (p *FramePool) GetFrames(n uint64) uint64 {
	if n == 0 {
		return 0
	}

	end := p.baseFrameNo + p.nFrames
	run, start := uint64(0), uint64(0)
	for f := p.baseFrameNo; f < end; f++ {
		if p.getState(f) != StateFree {
			run = 0
			continue
		}
		if run == 0 {
			start = f
		}
		run++
		if run == n {
			p.setState(start, StateHeadOfSequence)
			for i := uint64(1); i < n; i++ {
				p.setState(start+i, StateUsed)
			}
			return start
		}
	}
	return 0
}

// MarkInaccessible reserves [base, base+count) without searching. Every
// frame, the first included, is marked Used, so the range cannot later be
// released through Registry.ReleaseFrames: reservations are permanent.
// The caller guarantees the range lies inside this pool and does not
// overlap a live allocation; neither is validated.
func (p *FramePool) MarkInaccessible(base uint64, count uint64) {
	for f := base; f < base+count; f++ {
		p.setState(f, StateUsed)
	}
}
