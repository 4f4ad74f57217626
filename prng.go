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

import "time"

// seedTagBlock0 and seedTagBlock1 mix into the wall-clock seed so the two
// engines never start from the same state even when invoked back to back.
const (
	seedTagBlock0 uint64 = 0xfeedface
	seedTagBlock1 uint64 = 0xdeadf00d
)

// Rand is the xorshift64* generator shared by both engines. It makes no
// cryptographic-quality claim; it exists only to avoid adversarial
// degeneracies in the rejection sampler.
type Rand struct {
	state uint64
}

// NewRand constructs a generator from an explicit 64-bit seed, useful for
// deterministic tests. The seed is not pre-mixed; callers that want the
// same startup behavior as a wall-clock-seeded run should use SeedFromTime
// instead.
func NewRand(seed uint64) *Rand {
	return &Rand{state: seed}
}

// SeedFromTime mixes the wall-clock time with tag, then pre-mixes the
// result with one xorshift64* step so the first output word isn't a thin
// function of a mostly-monotonic nanosecond counter.
func SeedFromTime(tag uint64) *Rand {
	r := &Rand{state: uint64(time.Now().UnixNano()) ^ tag}
	r.next()
	return r
}

func (r *Rand) next() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.state = x
	return x * 0x2545F4914F6CDD1D
}

// Uint64 returns the next xorshift64* output word.
func (r *Rand) Uint64() uint64 {
	return r.next()
}

// Uint32 returns the low 32 bits of the next xorshift64* output word.
func (r *Rand) Uint32() uint32 {
	return uint32(r.next())
}
