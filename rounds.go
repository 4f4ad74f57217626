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

import "math/bits"

// runTail finishes a candidate trail from the second half of round 2
// (steps 25-32) through round 4 (steps 49-64), with the per-step MSB
// parity rejections that keep a wrong trail from propagating deep into the
// round-4 alternation before being caught. Both engines share this exact
// step sequence; the only difference between the block-0 and block-1
// differential paths in this stretch is the polarity of the carry-control
// check at step 35, passed in as requireBit15Set (false for block 0, true
// for block 1).
//
// a,b,c,d are Q[21],Q[24],Q[23],Q[22] on entry (the registers produced by
// the tunnel stage immediately before this point). On success the returned
// (a,b,c,d) are the four 32-bit contributions to add to the seed IV.
func runTail(a, b, c, d uint32, block [16]uint32, requireBit15Set bool) (ra, rb, rc, rd uint32, ok bool) {
	// round 2, steps 25-32
	a = Step(F2, a, b, c, d, block[9]+0x21e1cde6, 5)
	d = Step(F2, d, a, b, c, block[14]+0xc33707d6, 9)
	c = Step(F2, c, d, a, b, block[3]+0xf4d50d87, 14)
	b = Step(F2, b, c, d, a, block[8]+0x455a14ed, 20)
	a = Step(F2, a, b, c, d, block[13]+0xa9e3e905, 5)
	d = Step(F2, d, a, b, c, block[2]+0xfcefa3f8, 9)
	c = Step(F2, c, d, a, b, block[7]+0x676f02d9, 14)
	b = Step(F2, b, c, d, a, block[12]+0x8d2a4c8a, 20)

	// round 3, steps 33-48
	a = Step(F3, a, b, c, d, block[5]+0xfffa3942, 4)
	d = Step(F3, d, a, b, c, block[8]+0x8771f681, 11)

	// step 35: carry-control bit 15 check before finishing the rotate.
	sum := c + F3(d, a, b) + block[11] + 0x6d9d6122
	bit15Set := sum&(1<<15) != 0
	if requireBit15Set != bit15Set {
		return 0, 0, 0, 0, false
	}
	c = bits.RotateLeft32(sum, 16)
	c += d

	b = Step(F3, b, c, d, a, block[14]+0xfde5380c, 23)
	a = Step(F3, a, b, c, d, block[1]+0xa4beea44, 4)
	d = Step(F3, d, a, b, c, block[4]+0x4bdecfa9, 11)
	c = Step(F3, c, d, a, b, block[7]+0xf6bb4b60, 16)
	b = Step(F3, b, c, d, a, block[10]+0xbebfbc70, 23)
	a = Step(F3, a, b, c, d, block[13]+0x289b7ec6, 4)
	d = Step(F3, d, a, b, c, block[0]+0xeaa127fa, 11)
	c = Step(F3, c, d, a, b, block[3]+0xd4ef3085, 16)
	b = Step(F3, b, c, d, a, block[6]+0x04881d05, 23)
	a = Step(F3, a, b, c, d, block[9]+0xd9d4d039, 4)
	d = Step(F3, d, a, b, c, block[12]+0xe6db99e5, 11) // 46
	c = Step(F3, c, d, a, b, block[15]+0x1fa27cf8, 16)  // 47
	b = Step(F3, b, c, d, a, block[2]+0xc4ac5665, 23)   // 48
	if (d^b)&0x80000000 != 0 {
		return 0, 0, 0, 0, false // I
	}

	// round 4, steps 49-64, with the alternating (a^c)/(d^b) MSB checks
	// that must hold at every step for the differential to cancel out.
	a = Step(F4, a, b, c, d, block[0]+0xf4292244, 6) // 49
	if (a^c)&0x80000000 != 0 {
		return 0, 0, 0, 0, false // J
	}
	d = Step(F4, d, a, b, c, block[7]+0x432aff97, 10) // 50
	if (d^b)&0x80000000 == 0 {
		return 0, 0, 0, 0, false // K = ~I
	}
	c = Step(F4, c, d, a, b, block[14]+0xab9423a7, 15) // 51
	if (a^c)&0x80000000 != 0 {
		return 0, 0, 0, 0, false // J
	}
	b = Step(F4, b, c, d, a, block[5]+0xfc93a039, 21) // 52
	if (d^b)&0x80000000 != 0 {
		return 0, 0, 0, 0, false // K
	}
	a = Step(F4, a, b, c, d, block[12]+0x655b59c3, 6) // 53
	if (a^c)&0x80000000 != 0 {
		return 0, 0, 0, 0, false // J
	}
	d = Step(F4, d, a, b, c, block[3]+0x8f0ccc92, 10) // 54
	if (d^b)&0x80000000 != 0 {
		return 0, 0, 0, 0, false // K
	}
	c = Step(F4, c, d, a, b, block[10]+0xffeff47d, 15) // 55
	if (a^c)&0x80000000 != 0 {
		return 0, 0, 0, 0, false // J
	}
	b = Step(F4, b, c, d, a, block[1]+0x85845dd1, 21) // 56
	if (d^b)&0x80000000 != 0 {
		return 0, 0, 0, 0, false // K
	}
	a = Step(F4, a, b, c, d, block[8]+0x6fa87e4f, 6) // 57
	if (a^c)&0x80000000 != 0 {
		return 0, 0, 0, 0, false // J
	}
	d = Step(F4, d, a, b, c, block[15]+0xfe2ce6e0, 10) // 58
	if (d^b)&0x80000000 != 0 {
		return 0, 0, 0, 0, false // K
	}
	c = Step(F4, c, d, a, b, block[6]+0xa3014314, 15) // 59
	if (a^c)&0x80000000 != 0 {
		return 0, 0, 0, 0, false // J
	}
	b = Step(F4, b, c, d, a, block[13]+0x4e0811a1, 21) // 60
	if (d^b)&0x80000000 == 0 {
		return 0, 0, 0, 0, false // I = ~K
	}
	a = Step(F4, a, b, c, d, block[4]+0xf7537e82, 6) // 61
	if (a^c)&0x80000000 != 0 {
		return 0, 0, 0, 0, false // J
	}
	d = Step(F4, d, a, b, c, block[11]+0xbd3af235, 10) // 62
	if (d^b)&0x80000000 != 0 {
		return 0, 0, 0, 0, false // I
	}
	c = Step(F4, c, d, a, b, block[2]+0x2ad7d2bb, 15) // 63
	if (a^c)&0x80000000 != 0 {
		return 0, 0, 0, 0, false // J
	}
	b = Step(F4, b, c, d, a, block[9]+0xeb86d391, 21) // 64

	return a, b, c, d, true
}
