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

// Collide runs CollideBlock0 and, against the chaining value it produces,
// CollideBlock1 in sequence and returns both blocks together with the
// intermediate chaining value.
func Collide(iv IV, opts Options) (b0, b1 [16]uint32, ivAfterB0 IV, err error) {
	if !iv.SatisfiesBlock0Precondition() {
		return [16]uint32{}, [16]uint32{}, IV{}, errors.Wrapf(ErrIVPrecondition, "Collide: iv %08x", iv)
	}

	b0, stats0, err := CollideBlock0(iv, opts)
	if err != nil {
		return [16]uint32{}, [16]uint32{}, IV{}, errors.Wrap(err, "Collide: block 0")
	}
	opts.logInfo("collide: block 0 done after %v (%d outer restarts)", stats0.Elapsed, stats0.OuterRestarts)

	ivAfterB0 = Compress(iv, b0)

	b1, stats1, err := CollideBlock1(ivAfterB0, opts)
	if err != nil {
		return b0, [16]uint32{}, ivAfterB0, errors.Wrap(err, "Collide: block 1")
	}
	opts.logInfo("collide: block 1 done after %v (%d outer restarts, path %d)", stats1.Elapsed, stats1.OuterRestarts, stats1.Path)

	return b0, b1, ivAfterB0, nil
}
