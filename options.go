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

	"github.com/sirupsen/logrus"
)

// Stats carries per-invocation bookkeeping a caller can log or benchmark
// with, kept separate from the engines' hot loops so collecting it never
// costs a search iteration anything.
type Stats struct {
	OuterRestarts uint64
	Q17Attempts   uint64 // block 0's Q[17] retry count; zero in block-1 stats
	Q1Attempts    uint64 // block 1's Q[1] retry count; zero in block-0 stats
	TunnelIters   uint64
	Elapsed       time.Duration
	Path          int // -1 for block 0, which has no path selector
}

// Options configures a single engine invocation.
type Options struct {
	// BadChars, when non-nil, rejects any candidate message word whose
	// bytes intersect the forbidden set. A nil BadChars is a no-op.
	BadChars *Filter

	// Seed, when non-nil, overrides the wall-clock PRNG seed so a search
	// can be replayed deterministically in tests.
	Seed *uint64

	// Logger, when non-nil, receives a Debug-level entry for each
	// candidate block that passes the round-4 checks and Info-level
	// entries on success (block 1 also logs its selected path at Info).
	// Engines stay silent when Logger is nil.
	Logger *logrus.Logger

	// JPEGComment forces block[14] into a JPEG comment marker shape: the
	// low three bytes are cleared and set to 0x00, 0xfe, 0xff while the
	// top byte keeps its original bits OR'd with 0x50, i.e.
	// block[14] = (block[14] & 0xff000000) | 0x5000feff. Q[15] is then
	// recomputed forward instead of derived by Unstep, so it stays
	// consistent with the forced word. It only ever applies to
	// CollideBlock0.
	JPEGComment bool
}

// Option mutates an Options value.
type Option func(*Options)

// WithBadChars sets the forbidden-byte filter from a raw byte list.
func WithBadChars(bad []byte) Option {
	return func(o *Options) { o.BadChars = NewFilter(bad) }
}

// WithSeed pins the PRNG seed for a deterministic, replayable search.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = &seed }
}

// WithLogger attaches a logrus.Logger for progress reporting.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithJPEGComment enables the JPEG-comment-marker substitution in block 0.
func WithJPEGComment(enabled bool) Option {
	return func(o *Options) { o.JPEGComment = enabled }
}

// NewOptions builds an Options from a list of Option functions.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

func (o Options) newRand(tag uint64) *Rand {
	if o.Seed != nil {
		r := NewRand(*o.Seed ^ tag)
		return r
	}
	return SeedFromTime(tag)
}

func (o Options) logDebug(format string, args ...interface{}) {
	if o.Logger != nil {
		o.Logger.Debugf(format, args...)
	}
}

func (o Options) logInfo(format string, args ...interface{}) {
	if o.Logger != nil {
		o.Logger.Infof(format, args...)
	}
}
