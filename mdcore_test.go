package collide

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestStepUnstepRoundTrip checks Step and Unstep are mutual inverses: given a
// trail and a freely chosen message word, deriving Q[n+1] via Step and then
// recovering the same word via Unstep returns the original word.
func TestStepUnstepRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		trail := &Trail{}
		for j := range trail.q {
			trail.q[j] = rng.Uint32()
		}
		n := 3 + rng.Intn(20)
		data := rng.Uint32()
		k := rng.Uint32()
		s := uint(1 + rng.Intn(31))

		trail.set(n+1, Step(F1, trail.at(n-3), trail.at(n), trail.at(n-1), trail.at(n-2), data+k, s))
		got := Unstep(trail, n, k, s)
		require.Equal(t, data, got, "Unstep did not invert Step at n=%d", n)
	}
}

// TestUnstep2RoundTrip is Unstep2's counterpart using F2.
func TestUnstep2RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 2000; i++ {
		trail := &Trail{}
		for j := range trail.q {
			trail.q[j] = rng.Uint32()
		}
		n := 3 + rng.Intn(20)
		data := rng.Uint32()
		k := rng.Uint32()
		s := uint(1 + rng.Intn(31))

		trail.set(n+1, Step(F2, trail.at(n-3), trail.at(n), trail.at(n-1), trail.at(n-2), data+k, s))
		got := Unstep2(trail, n, k, s)
		require.Equal(t, data, got)
	}
}

// TestRoundFunctionIdentities checks the algebraic shortcuts used for F1/F2
// against their textbook definitions.
func TestRoundFunctionIdentities(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		x, y, z := rng.Uint32(), rng.Uint32(), rng.Uint32()
		require.Equal(t, (x&y)|(^x&z), F1(x, y, z))
		require.Equal(t, (x&z)|(y&^z), F2(x, y, z))
		require.Equal(t, x^y^z, F3(x, y, z))
		require.Equal(t, y^(x| ^z), F4(x, y, z))
	}
}

func TestRotateRight32(t *testing.T) {
	require.Equal(t, uint32(0x80000000), rotateRight32(1, 1))
	require.Equal(t, bits.RotateLeft32(0x12345678, -7), rotateRight32(0x12345678, 7))
	require.Equal(t, uint32(0x12345678), rotateRight32(bits.RotateLeft32(0x12345678, 13), 13))
}

func TestTrailAliasing(t *testing.T) {
	iv := IV{1, 2, 3, 4}
	trail := NewTrail(iv)
	require.Equal(t, iv[0], trail.at(-3))
	require.Equal(t, iv[3], trail.at(-2))
	require.Equal(t, iv[2], trail.at(-1))
	require.Equal(t, iv[1], trail.at(0))

	trail.set(5, 0xdeadbeef)
	require.Equal(t, uint32(0xdeadbeef), trail.at(5))
}
