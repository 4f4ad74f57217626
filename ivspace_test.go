package collide

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSatisfiesBlock0Precondition(t *testing.T) {
	iv := IV{0, 0, 0x02000000, 0x00000000} // bit25(C)=1 != bit24(C)=0, bit25(D)=0 == bit24(D)=0
	require.True(t, iv.SatisfiesBlock0Precondition())

	iv2 := IV{0, 0, 0x03000000, 0x00000000} // bit25(C)=1, bit24(C)=1 -> equal, should fail
	require.False(t, iv2.SatisfiesBlock0Precondition())

	iv3 := IV{0, 0, 0x02000000, 0x02000000} // D bits unequal -> should fail
	require.False(t, iv3.SatisfiesBlock0Precondition())
}

func TestRandomConformantIVAlwaysSatisfies(t *testing.T) {
	r := NewRand(0xabc123)
	for i := 0; i < 1000; i++ {
		iv := RandomConformantIV(r)
		require.True(t, iv.SatisfiesBlock0Precondition())
	}
}

func TestIVAddSub(t *testing.T) {
	iv := IV{1, 2, 3, 4}
	delta := [4]uint32{0xffffffff, 10, 0, 1}
	sum := iv.Add(delta)
	require.Equal(t, IV{0, 12, 3, 5}, sum)

	back := sum.Sub(iv)
	require.Equal(t, delta, back)
}

func TestStandardIV(t *testing.T) {
	require.Equal(t, IV{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}, StandardIV)
}
