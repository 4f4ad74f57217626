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

// RoundFunc is one of the four MD5 round functions.
type RoundFunc func(x, y, z uint32) uint32

// F1 is the round-1 function: x&y | ~x&z, rewritten as z ^ (x & (y ^ z))
// to trade a second AND and a NOT for one XOR.
func F1(x, y, z uint32) uint32 { return z ^ (x & (y ^ z)) }

// F2 is the round-2 function, defined in terms of F1 with rotated arguments.
func F2(x, y, z uint32) uint32 { return F1(z, x, y) }

// F3 is the round-3 function.
func F3(x, y, z uint32) uint32 { return x ^ y ^ z }

// F4 is the round-4 function.
func F4(x, y, z uint32) uint32 { return y ^ (x | ^z) }

// Step performs the central MD5 step: w += f(x,y,z) + data; w = ROL(w, s); w += x.
func Step(f RoundFunc, w, x, y, z, data uint32, s uint) uint32 {
	w += f(x, y, z) + data
	w = bits.RotateLeft32(w, int(s))
	w += x
	return w
}

// Unstep recovers the message word that drives round-1 step n, given the
// Q-trail Q[n-3..n+1] and the step's round constant k and shift s.
//
// Q is indexed with the Q[-3..24] convention, accessed through the Trail
// helper type rather than a bare []uint32 so callers never have to
// remember the -3 offset themselves.
func Unstep(q *Trail, n int, k uint32, s uint) uint32 {
	diff := q.at(n+1) - q.at(n)
	rot := bits.RotateLeft32(diff, -int(s))
	return rot - F1(q.at(n), q.at(n-1), q.at(n-2)) - k - q.at(n-3)
}

// Unstep2 is Unstep's round-2 counterpart (uses F2 in place of F1).
func Unstep2(q *Trail, n int, k uint32, s uint) uint32 {
	diff := q.at(n+1) - q.at(n)
	rot := bits.RotateLeft32(diff, -int(s))
	return rot - F2(q.at(n), q.at(n-1), q.at(n-2)) - k - q.at(n-3)
}

// Trail is the register history Q[-3..24] of one engine invocation. Index -3
// aliases A, -2 aliases D, -1 aliases C, 0 aliases B of the seed IV; Q[i] for
// i >= 1 is the register value written by round-1 step i (the same storage
// is reused by later rounds, which only ever reference the last four
// entries at a time).
type Trail struct {
	q [28]uint32 // q[i+3] == Q[i], i in [-3, 24]
}

// NewTrail seeds a trail from a chaining value, aliasing Q[-3..0] = (A,D,C,B).
func NewTrail(iv IV) *Trail {
	t := &Trail{}
	t.q[0] = iv[0] // Q[-3] = A
	t.q[1] = iv[3] // Q[-2] = D
	t.q[2] = iv[2] // Q[-1] = C
	t.q[3] = iv[1] // Q[0]  = B
	return t
}

func (t *Trail) at(i int) uint32     { return t.q[i+3] }
func (t *Trail) set(i int, v uint32) { t.q[i+3] = v }

// rotateRight32 rotates x right by n bits, expressed as a left rotation by
// -n so the sign-extension pitfalls of a native right shift never apply.
func rotateRight32(x uint32, n uint) uint32 {
	return bits.RotateLeft32(x, -int(n))
}
