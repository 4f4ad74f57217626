package collide

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasherKnownVectors(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "d41d8cd98f00b204e9800998ecf8427e"},
		{"abc", "900150983cd24fb0d6963f7d28e17f72"},
		{"The quick brown fox jumps over the lazy dog", "9e107d9d372bb6826bd81d3542a419d6"},
		{"The quick brown fox jumps over the lazy dog.", "e4d909c290d0fb1ca068ffaddf22cbd0"},
	}
	for _, c := range cases {
		h := NewHasher()
		_, err := h.Write([]byte(c.in))
		require.NoError(t, err)
		got := hex.EncodeToString(h.Sum(nil))
		require.Equal(t, c.want, got, "input %q", c.in)
	}
}

func TestHasherStreamingMatchesOneShot(t *testing.T) {
	msg := make([]byte, 1000)
	for i := range msg {
		msg[i] = byte(i * 37)
	}

	oneShot := NewHasher()
	_, _ = oneShot.Write(msg)
	want := oneShot.Sum(nil)

	streaming := NewHasher()
	for i := 0; i < len(msg); i += 7 {
		end := i + 7
		if end > len(msg) {
			end = len(msg)
		}
		_, _ = streaming.Write(msg[i:end])
	}
	got := streaming.Sum(nil)
	require.Equal(t, want, got)
}

func TestHasherSumDoesNotMutateState(t *testing.T) {
	h := NewHasher()
	_, _ = h.Write([]byte("partial"))
	first := h.Sum(nil)
	second := h.Sum(nil)
	require.Equal(t, first, second)

	_, _ = h.Write([]byte(" more"))
	third := h.Sum(nil)
	require.NotEqual(t, first, third)
}

func TestSum128MatchesHasher(t *testing.T) {
	msg := []byte("grounding every piece in the corpus")
	h := NewHasher()
	_, _ = h.Write(msg)
	want := h.Sum(nil)

	got := Sum128(msg)
	require.Equal(t, hex.EncodeToString(want), hex.EncodeToString([]byte{
		byte(got[0]), byte(got[0] >> 8), byte(got[0] >> 16), byte(got[0] >> 24),
		byte(got[1]), byte(got[1] >> 8), byte(got[1] >> 16), byte(got[1] >> 24),
		byte(got[2]), byte(got[2] >> 8), byte(got[2] >> 16), byte(got[2] >> 24),
		byte(got[3]), byte(got[3] >> 8), byte(got[3] >> 16), byte(got[3] >> 24),
	}))
}

func TestCompressMatchesStandardIVTransform(t *testing.T) {
	var block [16]uint32
	block[0] = 0x80
	block[14] = 0
	out := Compress(StandardIV, block)
	require.Equal(t, Sum128(nil), out)
}
