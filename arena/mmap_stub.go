//go:build !unix

package arena

// Mmap is unavailable on this platform.
type Mmap struct {
	frameSize uint64
	data      []byte
}

// NewMmap ...
func NewMmap(frameSize uint64, nFrames uint64) (*Mmap, error) {
	return nil, ErrUnsupported
}

// FrameSpan ...
func (m *Mmap) FrameSpan(frameNo uint64, nFrames uint64) []byte {
	return nil
}

// Close ...
func (m *Mmap) Close() error {
	return nil
}
