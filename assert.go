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

import "fmt"

// debugAssertEnabled gates the internal sanity checks scattered through
// the engines. It defaults to on, the way an unoptimized build would run
// with asserts compiled in; set it to false (e.g. from an init() in a
// release build) to drop them for a faster hot loop.
var debugAssertEnabled = true

// debugAssert panics if cond is false. These aren't input validation —
// they check algebraic invariants (at present: a forward Compress matches
// the Step-by-step IV the engine just built) that can only be violated by
// a bug in this package, never by caller input.
func debugAssert(cond bool, format string, args ...interface{}) {
	if !debugAssertEnabled || cond {
		return
	}
	panic("collide: assertion failed: " + fmt.Sprintf(format, args...))
}
