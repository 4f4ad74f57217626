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

import "github.com/pkg/errors"

// IV is an MD5 chaining value: an ordered (A, B, C, D) tuple.
type IV [4]uint32

// StandardIV is the standard MD5 initial chaining value.
var StandardIV = IV{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}

// ErrIVPrecondition is returned when a caller-supplied IV does not satisfy
// SatisfiesBlock0Precondition.
var ErrIVPrecondition = errors.New("collide: IV does not satisfy the block-0 precondition")

// SatisfiesBlock0Precondition reports whether iv is suitable as the seed for
// a two-block collision search: the post-block-0 IV it eventually leads to
// must land where at least one of the four block-1 differential paths is
// reachable. This is the caller contract from spec §6.
func (iv IV) SatisfiesBlock0Precondition() bool {
	c2, c3 := iv[2], iv[3]
	bit25of2 := (c2 >> 25) & 1
	bit24of2 := (c2 >> 24) & 1
	bit25of3 := (c3 >> 25) & 1
	bit24of3 := (c3 >> 24) & 1
	return bit25of2 != bit24of2 && bit25of3 == bit24of3
}

// RandomConformantIV draws IVs from r until one satisfies
// SatisfiesBlock0Precondition, and returns it.
func RandomConformantIV(r *Rand) IV {
	for {
		iv := IV{r.Uint32(), r.Uint32(), r.Uint32(), r.Uint32()}
		if iv.SatisfiesBlock0Precondition() {
			return iv
		}
	}
}

// Add returns the componentwise modular sum of iv and delta, i.e. the new
// chaining value after a compression step contributes (a,b,c,d).
func (iv IV) Add(delta [4]uint32) IV {
	return IV{iv[0] + delta[0], iv[1] + delta[1], iv[2] + delta[2], iv[3] + delta[3]}
}

// Sub returns the componentwise difference iv - other.
func (iv IV) Sub(other IV) [4]uint32 {
	return [4]uint32{iv[0] - other[0], iv[1] - other[1], iv[2] - other[2], iv[3] - other[3]}
}
