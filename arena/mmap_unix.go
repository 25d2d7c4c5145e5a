//go:build unix

package arena

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Mmap is a frame source backed by an anonymous private mapping, for
// hosting frame memory in real pages rather than on the Go heap.
type Mmap struct {
	frameSize uint64
	data      []byte
}

// NewMmap maps frameSize*nFrames zeroed bytes.
func NewMmap(frameSize uint64, nFrames uint64) (*Mmap, error) {
	if frameSize == 0 {
		panic("arena: frame size must > 0")
	}
	data, err := unix.Mmap(-1, 0, int(frameSize*nFrames),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("arena: mmap %d frames: %w", nFrames, err)
	}
	return &Mmap{
		frameSize: frameSize,
		data:      data,
	}, nil
}

// FrameSpan ...
func (m *Mmap) FrameSpan(frameNo uint64, nFrames uint64) []byte {
	off := frameNo * m.frameSize
	return m.data[off : off+nFrames*m.frameSize]
}

// Close unmaps the region. No span obtained from FrameSpan may be touched
// afterwards.
func (m *Mmap) Close() error {
	if m.data == nil {
		return nil
	}
	err := unix.Munmap(m.data)
	m.data = nil
	return err
}
