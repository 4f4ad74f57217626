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
	"math/bits"
	"time"
)

// deltaBlock1 is the (subtractive) message difference applied to the
// second member of a block-1 collision pair.
var deltaBlock1 = struct {
	w4, w11, w14 uint32
}{w4: 1 << 31, w11: 1 << 15, w14: 1 << 31}

// enumerateTunnelBits distributes the low n bits of a counter j onto the
// set bits of mask, in increasing integer order of the resulting word, for
// j in [0, 2^n). Used to walk a free tunnel's bit positions in a fixed,
// repeatable order without recomputing the mask's set-bit offsets each time.
func enumerateTunnelBits(mask uint32, n int) []uint32 {
	out := make([]uint32, 1<<uint(n))
	for i := range out {
		var word uint32
		offset := 0
		for j := 0; j < n; j++ {
			for (mask>>uint(offset))&1 == 0 {
				offset++
			}
			if i&(1<<j) != 0 {
				word |= 1 << uint(offset)
			}
			offset++
		}
		out[i] = word
	}
	return out
}

// enumerateQ9Q10Bits is enumerateTunnelBits's counterpart for the combined
// Q[9]/Q[10] tunnel, whose mask may run out of free bits before the counter
// exhausts a fixed power of two; it stops at the first index whose bit
// distribution would run past bit 31.
func enumerateQ9Q10Bits(mask uint32) []uint32 {
	var out []uint32
	for i := 0; ; i++ {
		var word uint32
		offset := 0
		overflowed := false
		for j := 0; i > (1<<uint(j))-1; j++ {
			for offset < 32 && (mask>>uint(offset))&1 == 0 {
				offset++
			}
			if offset >= 32 {
				overflowed = true
				break
			}
			if i&(1<<j) != 0 {
				word |= 1 << uint(offset)
			}
			offset++
		}
		if overflowed || offset > 32 {
			break
		}
		out = append(out, word)
	}
	return out
}

// CollideBlock1 searches for a 64-byte message block that, applied after
// iv (the chaining value produced by compressing a CollideBlock0 output),
// cancels the block-0 differential so that the two two-block messages hash
// identically. iv must satisfy the caller contract that it was produced by
// a paired CollideBlock0 invocation; that contract is not (and, in general,
// cannot be) validated here.
func CollideBlock1(iv IV, opts Options) ([16]uint32, Stats, error) {
	rnd := opts.newRand(seedTagBlock1)
	trail := NewTrail(iv)
	start := time.Now()

	path := PathFromIV(iv[1])
	qc := QCondsByPath[path]
	m9mask := Q9M9Masks[path]
	m9m10mask := Q9Q10Masks[path]

	q9m9bits := enumerateTunnelBits(m9mask, 9)
	q9q10bits := enumerateQ9Q10Bits(m9m10mask)

	stats := Stats{Path: path}
	opts.logInfo("block1: path (%d%d)", path>>1, path&1)

	var block [16]uint32

outer:
	for {
		stats.OuterRestarts++

		trail.set(2, qc[2].Sample(rnd.Uint32(), trail.at(0)))
		for i := 3; i < 17; i++ {
			trail.set(i, qc[i].Sample(rnd.Uint32(), trail.at(i-1)))
		}

		block[5] = Unstep(trail, 5, 0x4787c62a, 12)
		if opts.BadChars.Reject(block[5]) {
			continue outer
		}
		block[6] = Unstep(trail, 6, 0xa8304613, 17)
		if opts.BadChars.Reject(block[6]) {
			continue outer
		}
		block[7] = Unstep(trail, 7, 0xfd469501, 22)
		if opts.BadChars.Reject(block[7]) {
			continue outer
		}
		block[11] = Unstep(trail, 11, 0x895cd7be, 22)
		if opts.BadChars.Reject(block[11], block[11]-deltaBlock1.w11) {
			continue outer
		}
		block[14] = Unstep(trail, 14, 0xa679438e, 17)
		if opts.BadChars.Reject(block[14], block[14]-deltaBlock1.w14) {
			continue outer
		}
		block[15] = Unstep(trail, 15, 0x49b40821, 22)
		if opts.BadChars.Reject(block[15]) {
			continue outer
		}

		success := false
	q1:
		for attempt := 0; attempt < 2000; attempt++ {
			stats.Q1Attempts++

			trail.set(1, qc[1].Sample(rnd.Uint32(), trail.at(0)))

			block[0] = Unstep(trail, 0, 0xd76aa478, 7)
			if opts.BadChars.Reject(block[0]) {
				continue q1
			}
			block[1] = Unstep(trail, 1, 0xe8c7b756, 12)
			if opts.BadChars.Reject(block[1]) {
				continue q1
			}
			block[3] = Unstep(trail, 3, 0xc1bdceee, 22)
			if opts.BadChars.Reject(block[3]) {
				continue q1
			}
			block[4] = Unstep(trail, 4, 0xf57c0faf, 7)
			if opts.BadChars.Reject(block[4], block[4]-deltaBlock1.w4) {
				continue q1
			}

			trail.set(17, Step(F2, trail.at(13), trail.at(16), trail.at(15), trail.at(14), block[1]+0xf61e2562, 5))
			if qBad(trail.at(17), trail.at(16), qc[17]) {
				continue q1
			}

			trail.set(18, Step(F2, trail.at(14), trail.at(17), trail.at(16), trail.at(15), block[6]+0xc040b340, 9))
			if qBad(trail.at(18), trail.at(17), qc[18]) {
				continue q1
			}

			trail.set(19, Step(F2, trail.at(15), trail.at(18), trail.at(17), trail.at(16), block[11]+0x265e5a51, 14))
			if qBad(trail.at(19), trail.at(18), qc[19]) {
				continue q1
			}

			trail.set(20, Step(F2, trail.at(16), trail.at(19), trail.at(18), trail.at(17), block[0]+0xe9b6c7aa, 20))
			if qBad(trail.at(20), trail.at(19), qc[20]) {
				continue q1
			}

			trail.set(21, Step(F2, trail.at(17), trail.at(20), trail.at(19), trail.at(18), block[5]+0xd62f105d, 5))
			if qBad(trail.at(21), trail.at(20), qc[21]) {
				continue q1
			}

			block[2] = Unstep(trail, 2, 0x242070db, 17)
			if opts.BadChars.Reject(block[2]) {
				continue q1
			}
			success = true
			break q1
		}
		if !success {
			continue outer
		}

		q9BaseOrig := trail.at(9)
		q10BaseOrig := trail.at(10)

		for q10ctr := 0; q10ctr < len(q9q10bits); q10ctr++ {
			q9save := q9BaseOrig | (q9q10bits[q10ctr] &^ Q10Mask)
			trail.set(9, q9save)
			trail.set(10, q10BaseOrig|(q9q10bits[q10ctr]&Q10Mask))

			block[10] = Unstep(trail, 10, 0xffff5bb1, 17)
			if opts.BadChars.Reject(block[10]) {
				continue
			}

			a2, b2, c2, d2 := trail.at(21), trail.at(20), trail.at(19), trail.at(18)

			d2 = Step(F2, d2, a2, b2, c2, block[10]+0x02441453, 9) // step 22
			if d2&0x80000000 != qc[22].Inv {
				continue
			}

			preRotate := c2 + F2(d2, a2, b2) + block[15] + 0xd8a1e681
			if preRotate&(1<<17) == 0 {
				continue // opposite polarity of block 0
			}
			c2 = bits.RotateLeft32(preRotate, 14)
			c2 += d2
			if c2&0x80000000 != qc[23].Inv {
				continue
			}

			b2 = Step(F2, b2, c2, d2, a2, block[4]+0xe7d3fbc8, 20) // step 24
			if b2&0x80000000 == 0 {
				continue
			}

			block[13] = Unstep(trail, 13, 0xfd987193, 12)
			if opts.BadChars.Reject(block[13]) {
				continue
			}

			for q9ctr := 0; q9ctr < len(q9m9bits); q9ctr++ {
				stats.TunnelIters++
				trail.set(9, q9save|q9m9bits[q9ctr])

				block[8] = Unstep(trail, 8, 0x698098d8, 7)
				if opts.BadChars.Reject(block[8]) {
					continue
				}
				block[9] = Unstep(trail, 9, 0x8b44f7af, 12)
				if opts.BadChars.Reject(block[9]) {
					continue
				}
				block[12] = Unstep(trail, 12, 0x6b901122, 7)
				if opts.BadChars.Reject(block[12]) {
					continue
				}

				ta, tb, tc, td, ok := runTail(a2, b2, c2, d2, block, true)
				if !ok {
					continue
				}

				opts.logDebug("block1: candidate at outer=%d path=%d", stats.OuterRestarts, path)

				block2 := block
				block2[4] -= deltaBlock1.w4
				block2[11] -= deltaBlock1.w11
				block2[14] -= deltaBlock1.w14

				lhs := Compress(iv, block)
				debugAssert(iv.Add([4]uint32{ta, tb, tc, td}) == lhs, "block1: runTail chaining value disagrees with Compress")

				rhs := Compress(iv.Add(DeltaIV), block2)
				if lhs == rhs {
					stats.Elapsed = time.Since(start)
					opts.logInfo("block1: success after %d outer restarts, %v", stats.OuterRestarts, stats.Elapsed)
					return block, stats, nil
				}
			}
		}
	}
}
