package collide

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCollideBlock0DifferentialClosure checks that the block found by
// CollideBlock0, compressed against iv both plain and with deltaBlock0
// applied, produces chaining values differing by exactly DeltaIV. This
// drives a real (bounded-by-a-fixed-seed) search, so it is skipped in
// -short mode.
func TestCollideBlock0DifferentialClosure(t *testing.T) {
	if testing.Short() {
		t.Skip("CollideBlock0 runs a real randomized search; skipped in -short mode")
	}

	seed := uint64(0x1234)
	block, stats, err := CollideBlock0(StandardIV, NewOptions(WithSeed(seed)))
	require.NoError(t, err)
	require.Equal(t, -1, stats.Path)

	block2 := block
	block2[4] += deltaBlock0.w4
	block2[11] += deltaBlock0.w11
	block2[14] += deltaBlock0.w14

	iv1 := Compress(StandardIV, block)
	iv2 := Compress(StandardIV, block2)
	require.Equal(t, DeltaIV, iv2.Sub(iv1))
}

// TestCollideBlock0RespectsBadChars checks every word of a found block, and
// its delta sibling at the three differential positions, avoids a
// nontrivial forbidden byte set.
func TestCollideBlock0RespectsBadChars(t *testing.T) {
	if testing.Short() {
		t.Skip("CollideBlock0 runs a real randomized search; skipped in -short mode")
	}

	bad := NewFilter([]byte{0x00, 0x0a}) // exclude NUL and newline
	block, _, err := CollideBlock0(StandardIV, NewOptions(WithSeed(0x5678), WithBadChars([]byte{0x00, 0x0a})))
	require.NoError(t, err)

	for _, w := range block {
		require.False(t, bad.HasBadByte(w))
	}
	require.False(t, bad.HasBadByte(block[4]+deltaBlock0.w4))
	require.False(t, bad.HasBadByte(block[11]+deltaBlock0.w11))
	require.False(t, bad.HasBadByte(block[14]+deltaBlock0.w14))
}

// TestCollideBlock0JPEGComment checks the JPEGHACK substitution is applied
// verbatim to block[14] when requested.
func TestCollideBlock0JPEGComment(t *testing.T) {
	if testing.Short() {
		t.Skip("CollideBlock0 runs a real randomized search; skipped in -short mode")
	}

	block, _, err := CollideBlock0(StandardIV, NewOptions(WithSeed(0x9abc), WithJPEGComment(true)))
	require.NoError(t, err)
	require.Equal(t, uint32(0x0000feff), block[14]&0x00ffffff)
}
