package framepool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateBitmapGetSet(t *testing.T) {
	b := stateBitmap{data: make([]byte, 4)}

	for rel := uint64(0); rel < 16; rel++ {
		assert.Equal(t, StateFree, b.get(rel))
	}

	b.set(1, StateUsed)
	assert.Equal(t, []byte{4, 0, 0, 0}, b.data)
	assert.Equal(t, StateUsed, b.get(1))

	b.set(0, StateHeadOfSequence)
	assert.Equal(t, []byte{6, 0, 0, 0}, b.data)
	assert.Equal(t, StateHeadOfSequence, b.get(0))

	b.set(3, StateHeadOfSequence)
	assert.Equal(t, []byte{134, 0, 0, 0}, b.data)

	b.set(4, StateUsed)
	assert.Equal(t, []byte{134, 1, 0, 0}, b.data)
	assert.Equal(t, StateUsed, b.get(4))
}

func TestStateBitmapSetPreservesNeighbors(t *testing.T) {
	b := stateBitmap{data: make([]byte, 1)}

	b.set(0, StateHeadOfSequence)
	b.set(1, StateUsed)
	b.set(2, StateUsed)
	b.set(3, StateHeadOfSequence)

	b.set(1, StateFree)

	assert.Equal(t, StateHeadOfSequence, b.get(0))
	assert.Equal(t, StateFree, b.get(1))
	assert.Equal(t, StateUsed, b.get(2))
	assert.Equal(t, StateHeadOfSequence, b.get(3))
	assert.Equal(t, []byte{2 | 1<<4 | 2<<6}, b.data)
}

func TestStateBitmapClear(t *testing.T) {
	b := stateBitmap{data: []byte{0xff, 0xff}}
	b.clear()
	assert.Equal(t, []byte{0, 0}, b.data)
	for rel := uint64(0); rel < 8; rel++ {
		assert.Equal(t, StateFree, b.get(rel))
	}
}

func TestNeededInfoFrames(t *testing.T) {
	table := []struct {
		name     string
		nFrames  uint64
		expected uint64
	}{
		{name: "single", nFrames: 1, expected: 1},
		{name: "small", nFrames: 16, expected: 1},
		{name: "one frame exactly", nFrames: 4 * FrameSize, expected: 1},
		{name: "just above one frame", nFrames: 4*FrameSize + 1, expected: 2},
		{name: "four frames", nFrames: 16 * FrameSize, expected: 4},
	}

	for _, e := range table {
		t.Run(e.name, func(t *testing.T) {
			assert.Equal(t, e.expected, NeededInfoFrames(e.nFrames))
		})
	}
}
