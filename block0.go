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
	"time"
)

// deltaBlock0 is the message difference applied to the second member of a
// block-0 collision pair.
var deltaBlock0 = struct {
	w4, w11, w14 uint32
}{w4: 1 << 31, w11: 1 << 15, w14: 1 << 31}

// DeltaIV is the fixed chaining-value difference the block-0 engine drives
// its pair of candidate blocks to, and which the block-1 engine must cancel.
var DeltaIV = [4]uint32{1 << 31, (1 << 31) + (1 << 25), (1 << 31) + (1 << 25), (1 << 31) + (1 << 25)}

// CollideBlock0 searches for a 64-byte message block such that compressing
// iv with the block and with the block offset by deltaBlock0 lands on two
// chaining values differing exactly by DeltaIV. It samples a Q-trail under
// the block-0 condition rows, derives the message words by Unstep, then
// walks the Q[9,10], Q[4], and Q[9] tunnels to retry the tail of the trail
// cheaply before falling back to a full outer restart. The search blocks
// until success; there is no timeout.
func CollideBlock0(iv IV, opts Options) ([16]uint32, Stats, error) {
	rnd := opts.newRand(seedTagBlock0)
	trail := NewTrail(iv)
	start := time.Now()
	stats := Stats{Path: -1}

	var block [16]uint32

outer:
	for {
		stats.OuterRestarts++

		for i := 1; i < 17; i++ {
			trail.set(i, QCondsBlock0[i].Sample(rnd.Uint32(), trail.at(i-1)))
		}

		block[0] = Unstep(trail, 0, 0xd76aa478, 7)
		if opts.BadChars.Reject(block[0]) {
			continue outer
		}
		block[6] = Unstep(trail, 6, 0xa8304613, 17)
		if opts.BadChars.Reject(block[6]) {
			continue outer
		}
		block[11] = Unstep(trail, 11, 0x895cd7be, 22)
		if opts.BadChars.Reject(block[11], block[11]+deltaBlock0.w11) {
			continue outer
		}
		block[14] = Unstep(trail, 14, 0xa679438e, 17)
		if opts.JPEGComment {
			// JPEG comment marker substitution: block[14]'s two middle
			// bytes are forced and Q[15] is recomputed forward instead
			// of derived, so it stays consistent with the forced word.
			block[14] = (block[14] & 0xff000000) | 0x5000feff
			trail.set(15, Step(F1, trail.at(11), trail.at(14), trail.at(13), trail.at(12), block[14]+0xa679438e, 17))
			if qBad(trail.at(15), trail.at(14), QCondsBlock0[15]) {
				continue outer
			}
		} else {
			if opts.BadChars.Reject(block[14], block[14]+deltaBlock0.w14) {
				continue outer
			}
		}
		block[15] = Unstep(trail, 15, 0x49b40821, 22)
		if opts.BadChars.Reject(block[15]) {
			continue outer
		}

		success := false
	q17:
		for attempt := 0; attempt < 100; attempt++ {
			stats.Q17Attempts++

			trail.set(17, QCondsBlock0[17].Sample(rnd.Uint32(), trail.at(16)))

			trail.set(18, Step(F2, trail.at(14), trail.at(17), trail.at(16), trail.at(15), block[6]+0xc040b340, 9))
			if qBad(trail.at(18), trail.at(17), QCondsBlock0[18]) {
				continue q17
			}

			trail.set(19, Step(F2, trail.at(15), trail.at(18), trail.at(17), trail.at(16), block[11]+0x265e5a51, 14))
			if qBad(trail.at(19), trail.at(18), QCondsBlock0[19]) {
				continue q17
			}

			trail.set(20, Step(F2, trail.at(16), trail.at(19), trail.at(18), trail.at(17), block[0]+0xe9b6c7aa, 20))
			if qBad(trail.at(20), trail.at(19), QCondsBlock0[20]) {
				continue q17
			}

			block[1] = Unstep2(trail, 16, 0xf61e2562, 5)
			trail.set(2, Step(F1, trail.at(-2), trail.at(1), trail.at(0), trail.at(-1), block[1]+0xe8c7b756, 12))
			if opts.BadChars.Reject(block[1]) {
				continue q17
			}

			block[5] = Unstep(trail, 5, 0x4787c62a, 12)
			trail.set(21, Step(F2, trail.at(17), trail.at(20), trail.at(19), trail.at(18), block[5]+0xd62f105d, 5))
			if qBad(trail.at(21), trail.at(20), QCondsBlock0[21]) {
				continue q17
			}
			if opts.BadChars.Reject(block[5]) {
				continue q17
			}

			block[2] = Unstep(trail, 2, 0x242070db, 17)
			if opts.BadChars.Reject(block[2]) {
				continue q17
			}
			success = true
			break q17
		}
		if !success {
			continue outer
		}

		// Tunnel 1: Q[9,10] three-bit tunnel.
		for q10ctr := uint32(0); q10ctr < 8; q10ctr++ {
			trail.set(9, (trail.at(9) &^ 0x00002000) | ((q10ctr << 13) & 0x00002000))
			trail.set(10, (trail.at(10) &^ 0x00000060) | ((q10ctr << 4) & 0x00000060))

			block[10] = Unstep(trail, 10, 0xffff5bb1, 17)
			if opts.BadChars.Reject(block[10]) {
				continue
			}
			block[13] = Unstep(trail, 13, 0xfd987193, 12)
			if opts.BadChars.Reject(block[13]) {
				continue
			}

			trail.set(22, Step(F2, trail.at(18), trail.at(21), trail.at(20), trail.at(19), block[10]+0x02441453, 9))
			if trail.at(22)&0x80000000 == 0 {
				continue
			}

			trail.set(23, Step(F2, trail.at(19), trail.at(22), trail.at(21), trail.at(20), block[15]+0xd8a1e681, 14))
			if trail.at(23)&0x80000000 != 0 {
				continue
			}
			preRotateSum := trail.at(19) + F2(trail.at(22), trail.at(21), trail.at(20)) + block[15] + 0xd8a1e681
			if preRotateSum&(1<<17) != 0 {
				continue
			}

			part8 := F1(trail.at(8), trail.at(7), trail.at(6)) + 0x698098d8 + trail.at(5)
			part9 := uint32(0x8b44f7af) + trail.at(6)
			part12 := rotateRight32(trail.at(13)-trail.at(12), 7) - F1(trail.at(12), trail.at(11), trail.at(10)) - 0x6b901122
			q9base := trail.at(9) &^ Q9M9Mask

			// Tunnel 2: Q[4] four-bit tunnel.
			for q4ctr := uint32(0); q4ctr < 16; q4ctr++ {
				trail.set(4, (trail.at(4) &^ 0x38000004) | (((q4ctr << 2) | (q4ctr << 26)) & 0x38000004))

				block[3] = Unstep(trail, 3, 0xc1bdceee, 22)
				if opts.BadChars.Reject(block[3]) {
					continue
				}
				block[4] = Unstep(trail, 4, 0xf57c0faf, 7)
				if opts.BadChars.Reject(block[4], block[4]+deltaBlock0.w4) {
					continue
				}
				block[7] = Unstep(trail, 7, 0xfd469501, 22)
				if opts.BadChars.Reject(block[7]) {
					continue
				}

				trail.set(24, Step(F2, trail.at(20), trail.at(23), trail.at(22), trail.at(21), block[4]+0xe7d3fbc8, 20))
				if trail.at(24)&0x80000000 == 0 {
					continue
				}

				a21, a24, a23, a22 := trail.at(21), trail.at(24), trail.at(23), trail.at(22)

				// Tunnel 3: Q[9] sixteen-bit tunnel.
				for q9ctr := uint32(0); q9ctr < 1<<16; q9ctr++ {
					stats.TunnelIters++
					trail.set(9, q9base|((q9ctr^(q9ctr<<8)^(q9ctr<<14))&Q9M9Mask))

					block[8] = rotateRight32(trail.at(9)-trail.at(8), 7) - part8
					if opts.BadChars.Reject(block[8]) {
						continue
					}
					block[9] = rotateRight32(trail.at(10)-trail.at(9), 12) - F1(trail.at(9), trail.at(8), trail.at(7)) - part9
					if opts.BadChars.Reject(block[9]) {
						continue
					}
					block[12] = part12 - trail.at(9)
					if opts.BadChars.Reject(block[12]) {
						continue
					}

					a, b, c, d, ok := runTail(a21, a24, a23, a22, block, false)
					if !ok {
						continue
					}

					newIV := iv.Add([4]uint32{a, b, c, d})
					if newIV[1]&0x02000000 != 0 {
						continue
					}
					if (newIV[2]^newIV[1])&0x82000000 != 0 {
						continue
					}
					if (newIV[3]^newIV[2])&0x82000000 != 0 {
						continue
					}
					if (newIV[2]^newIV[1])&1 != 0 {
						continue
					}

					opts.logDebug("block0: candidate at outer=%d tunnel=%d", stats.OuterRestarts, q9ctr)

					var block2 [16]uint32 = block
					block2[4] += deltaBlock0.w4
					block2[11] += deltaBlock0.w11
					block2[14] += deltaBlock0.w14

					iv1 := Compress(iv, block)
					debugAssert(newIV == iv1, "block0: runTail chaining value %08x disagrees with Compress %08x", newIV, iv1)

					iv2 := Compress(iv, block2)
					diff := iv2.Sub(iv1)
					if diff == DeltaIV {
						stats.Elapsed = time.Since(start)
						opts.logInfo("block0: success after %d outer restarts, %v", stats.OuterRestarts, stats.Elapsed)
						return block, stats, nil
					}
				}
			}
		}
	}
}
