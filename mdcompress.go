/*
 * Minio Cloud Storage, (C) 2020 Minio, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package collide

import (
	"encoding/binary"
	"hash"
)

// BlockSize and Size match the stdlib crypto/md5 constants; Hasher is a
// drop-in hash.Hash built on top of Compress instead of an assembly
// backend. The round-constant tables below serve Compress only; the
// engines write the same constants as literals at each step.
const (
	BlockSize = 64
	Size      = 16
)

// round1Shift, round2Shift, round3Shift, round4Shift are the per-round
// rotation amounts, repeating every four steps.
var (
	round1Shift = [4]uint{7, 12, 17, 22}
	round2Shift = [4]uint{5, 9, 14, 20}
	round3Shift = [4]uint{4, 11, 16, 23}
	round4Shift = [4]uint{6, 10, 15, 21}

	round2Index = [16]int{1, 6, 11, 0, 5, 10, 15, 4, 9, 14, 3, 8, 13, 2, 7, 12}
	round3Index = [16]int{5, 8, 11, 14, 1, 4, 7, 10, 13, 0, 3, 6, 9, 12, 15, 2}
	round4Index = [16]int{0, 7, 14, 5, 12, 3, 10, 1, 8, 15, 6, 13, 4, 11, 2, 9}

	round1Const = [16]uint32{
		0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
		0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
		0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
		0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	}
	round2Const = [16]uint32{
		0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
		0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
		0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
		0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	}
	round3Const = [16]uint32{
		0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
		0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
		0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
		0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	}
	round4Const = [16]uint32{
		0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
		0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
		0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
		0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
	}
)

// Compress applies one 64-step, four-round MD5 compression to block under
// chaining value iv, returning the resulting chaining value. It is the
// forward counterpart of the engines' Unstep/Unstep2 equations, built from
// the same F1-F4 round functions and round constants, and is what finally
// confirms a candidate trail actually collides once the search is done.
func Compress(iv IV, block [16]uint32) IV {
	a, b, c, d := iv[0], iv[1], iv[2], iv[3]

	for i := 0; i < 16; i++ {
		a = Step(F1, a, b, c, d, block[i]+round1Const[i], round1Shift[i%4])
		a, b, c, d = d, a, b, c
	}
	for i := 0; i < 16; i++ {
		a = Step(F2, a, b, c, d, block[round2Index[i]]+round2Const[i], round2Shift[i%4])
		a, b, c, d = d, a, b, c
	}
	for i := 0; i < 16; i++ {
		a = Step(F3, a, b, c, d, block[round3Index[i]]+round3Const[i], round3Shift[i%4])
		a, b, c, d = d, a, b, c
	}
	for i := 0; i < 16; i++ {
		a = Step(F4, a, b, c, d, block[round4Index[i]]+round4Const[i], round4Shift[i%4])
		a, b, c, d = d, a, b, c
	}

	return iv.Add([4]uint32{a, b, c, d})
}

// decodeBlock reads 16 little-endian uint32s from a 64-byte slice.
func decodeBlock(p []byte) (block [16]uint32) {
	for i := range block {
		block[i] = binary.LittleEndian.Uint32(p[i*4:])
	}
	return
}

// Hasher is a streaming hash.Hash implementation of MD5 built on Compress.
// Buffering and padding follow the usual crypto/md5-style digest shape, but
// it stays synchronous: a single Compress call per 64-byte block is cheap
// enough that a worker/channel fan-out would buy nothing here. It backs
// Sum128 and serves any caller who wants a plain crypto/md5-shaped handle
// to the exact primitive the engines target.
type Hasher struct {
	iv     IV
	x      [BlockSize]byte
	nx     int
	length uint64
}

// NewHasher returns a Hasher initialized to the standard MD5 IV.
func NewHasher() *Hasher {
	h := &Hasher{}
	h.Reset()
	return h
}

// Size returns the number of bytes Sum will append.
func (h *Hasher) Size() int { return Size }

// BlockSize returns the hasher's underlying block size.
func (h *Hasher) BlockSize() int { return BlockSize }

// Reset restores the hasher to its initial state.
func (h *Hasher) Reset() {
	h.iv = StandardIV
	h.nx = 0
	h.length = 0
}

// Write adds more data to the running hash.
func (h *Hasher) Write(p []byte) (n int, err error) {
	n = len(p)
	h.length += uint64(n)

	if h.nx > 0 {
		c := copy(h.x[h.nx:], p)
		h.nx += c
		p = p[c:]
		if h.nx == BlockSize {
			h.iv = Compress(h.iv, decodeBlock(h.x[:]))
			h.nx = 0
		}
	}
	for len(p) >= BlockSize {
		h.iv = Compress(h.iv, decodeBlock(p[:BlockSize]))
		p = p[BlockSize:]
	}
	if len(p) > 0 {
		h.nx = copy(h.x[:], p)
	}
	return n, nil
}

// Sum appends the current hash to in and returns the resulting slice,
// without altering the underlying hash state.
func (h *Hasher) Sum(in []byte) []byte {
	clone := *h
	var tmp [BlockSize]byte
	tmp[0] = 0x80

	length := clone.length
	padLen := 56 - int(length%BlockSize)
	if padLen <= 0 {
		padLen += BlockSize
	}
	clone.Write(tmp[:padLen])

	var lenBytes [8]byte
	binary.LittleEndian.PutUint64(lenBytes[:], length<<3)
	clone.Write(lenBytes[:])

	if clone.nx != 0 {
		panic("collide: hasher padding left a partial block")
	}

	var digest [Size]byte
	binary.LittleEndian.PutUint32(digest[0:], clone.iv[0])
	binary.LittleEndian.PutUint32(digest[4:], clone.iv[1])
	binary.LittleEndian.PutUint32(digest[8:], clone.iv[2])
	binary.LittleEndian.PutUint32(digest[12:], clone.iv[3])
	return append(in, digest[:]...)
}

// Sum128 computes the MD5 digest of p in one call, as [4]uint32 chaining
// words rather than a byte slice — convenient for comparing against IV
// arithmetic in tests.
func Sum128(p []byte) IV {
	h := NewHasher()
	_, _ = h.Write(p)
	sum := h.Sum(nil)
	return IV{
		binary.LittleEndian.Uint32(sum[0:]),
		binary.LittleEndian.Uint32(sum[4:]),
		binary.LittleEndian.Uint32(sum[8:]),
		binary.LittleEndian.Uint32(sum[12:]),
	}
}

var _ hash.Hash = (*Hasher)(nil)
