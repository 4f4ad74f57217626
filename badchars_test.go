package collide

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNilFilterIsNoOp(t *testing.T) {
	var f *Filter
	require.False(t, f.HasBadByte(0xffffffff))
	require.False(t, f.Reject(0, 0xffffffff, 0x41414141))
}

func TestFilterRejectsForbiddenBytes(t *testing.T) {
	f := NewFilter([]byte{0x00, 0x0a})
	require.True(t, f.HasBadByte(0x00000000))
	require.True(t, f.HasBadByte(0x0a000000))
	require.True(t, f.HasBadByte(0x00004100))
	require.False(t, f.HasBadByte(0x41424344))
}

func TestFilterRejectGatesAllVariants(t *testing.T) {
	f := NewFilter([]byte{0x00})
	require.True(t, f.Reject(0x41414141, 0x41414100))
	require.False(t, f.Reject(0x41414141, 0x42424242))
}

func TestEmptyFilterRejectsNothing(t *testing.T) {
	f := NewFilter(nil)
	for w := uint32(0); w < 0x100; w++ {
		require.False(t, f.HasBadByte(w<<24))
	}
}
