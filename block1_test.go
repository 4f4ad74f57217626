package collide

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// forcePathIV returns a standard-IV variant whose B word encodes the given
// block-1 path selector in bits 0 and 6.
func forcePathIV(path int) IV {
	iv := StandardIV
	b := iv[1]
	b = (b &^ 1) | uint32(path&1)
	b = (b &^ (1 << 6)) | (uint32((path>>1)&1) << 6)
	iv[1] = b
	return iv
}

func TestForcePathIVRoundTrips(t *testing.T) {
	for path := 0; path < 4; path++ {
		iv := forcePathIV(path)
		require.Equal(t, path, PathFromIV(iv[1]), "path %d", path)
	}
}

// TestCollideBlock1AllFourPaths checks that each of the four differential
// paths is reachable and that CollideBlock1 reports the path it used in
// Stats. A real search per path, so skipped in -short mode.
func TestCollideBlock1AllFourPaths(t *testing.T) {
	if testing.Short() {
		t.Skip("CollideBlock1 runs a real randomized search; skipped in -short mode")
	}

	for path := 0; path < 4; path++ {
		iv := forcePathIV(path)
		_, stats, err := CollideBlock1(iv, NewOptions(WithSeed(uint64(0x1000+path))))
		require.NoError(t, err)
		require.Equal(t, path, stats.Path)
	}
}

// TestCollideBlock1RespectsBadChars mirrors the block-0 bad-char test for
// the second engine.
func TestCollideBlock1RespectsBadChars(t *testing.T) {
	if testing.Short() {
		t.Skip("CollideBlock1 runs a real randomized search; skipped in -short mode")
	}

	bad := NewFilter([]byte{0x00, 0x0a})
	iv := forcePathIV(0)
	block, _, err := CollideBlock1(iv, NewOptions(WithSeed(0x2222), WithBadChars([]byte{0x00, 0x0a})))
	require.NoError(t, err)

	for _, w := range block {
		require.False(t, bad.HasBadByte(w))
	}
	require.False(t, bad.HasBadByte(block[4]-deltaBlock1.w4))
	require.False(t, bad.HasBadByte(block[11]-deltaBlock1.w11))
	require.False(t, bad.HasBadByte(block[14]-deltaBlock1.w14))
}

// TestCollideBlock1DifferentialClosure checks that the block-1 output
// cancels the iv difference block0 established, verified against Compress
// directly (not via the full Collide pipeline).
func TestCollideBlock1DifferentialClosure(t *testing.T) {
	if testing.Short() {
		t.Skip("CollideBlock1 runs a real randomized search; skipped in -short mode")
	}

	iv := forcePathIV(1)
	block, _, err := CollideBlock1(iv, NewOptions(WithSeed(0x3333)))
	require.NoError(t, err)

	block2 := block
	block2[4] -= deltaBlock1.w4
	block2[11] -= deltaBlock1.w11
	block2[14] -= deltaBlock1.w14

	lhs := Compress(iv, block)
	rhs := Compress(iv.Add(DeltaIV), block2)
	require.Equal(t, lhs, rhs)
}
