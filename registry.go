package framepool

import "github.com/osmem/framepool/console"

// Registry tracks every constructed pool so that an allocation can be
// released knowing only its frame number. Pools are appended at
// construction time and never removed; the capacity bound is fixed when
// the registry is built and exceeding it is a configuration bug.
type Registry struct {
	sink  console.Sink
	limit int
	pools []*FramePool
}

// NewRegistry creates a registry holding at most limit pools. Messages
// about misused releases go to sink; a nil sink discards them.
func NewRegistry(limit int, sink console.Sink) *Registry {
	if limit <= 0 {
		panic("framepool: registry limit must > 0")
	}
	if sink == nil {
		sink = console.Discard{}
	}
	return &Registry{
		sink:  sink,
		limit: limit,
		pools: make([]*FramePool, 0, limit),
	}
}

func (r *Registry) register(p *FramePool) {
	if len(r.pools) >= r.limit {
		panic("framepool: registry is full")
	}
	r.pools = append(r.pools, p)
	r.sink.Puts("Contiguous Frame Pool initialized\n")
}

// ReleaseFrames frees the allocation whose head is frameNo: the head
// becomes Free, then every following Used frame up to the next Free or
// HeadOfSequence frame or the end of the owning pool. Misuse is reported
// through the console sink and mutates nothing: the frame may belong to
// no registered pool, or may not be the head of a sequence (mid-run
// release, double free, or a range reserved via MarkInaccessible).
func (r *Registry) ReleaseFrames(frameNo uint64) {
	for _, p := range r.pools {
		if !p.contains(frameNo) {
			continue
		}
		if p.getState(frameNo) != StateHeadOfSequence {
			r.sink.Puts("Error: Frame is not Head-of-Sequence\n")
			return
		}
		p.setState(frameNo, StateFree)
		end := p.baseFrameNo + p.nFrames
		for f := frameNo + 1; f < end && p.getState(f) == StateUsed; f++ {
			p.setState(f, StateFree)
		}
		return
	}
	r.sink.Puts("Error: Frame does not belong to any pool\n")
}
