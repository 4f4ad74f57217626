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
	"context"
	"runtime"
	"time"

	"github.com/klauspost/cpuid/v2"
)

// Engine is the shape shared by CollideBlock0 and CollideBlock1; callers of
// CollideParallel pick which one to race by passing it in directly.
type Engine func(iv IV, opts Options) ([16]uint32, Stats, error)

// ParallelOptions configures a CollideParallel call.
type ParallelOptions struct {
	Options

	// Workers is the number of independent engine goroutines to race.
	// Zero selects cpuid.CPU.LogicalCores, capped by runtime.NumCPU().
	Workers int

	// Engine selects which search to race; nil defaults to CollideBlock0.
	// Pass CollideBlock1 to parallelize the second-block search instead.
	Engine Engine
}

// WithWorkers sets ParallelOptions.Workers.
func WithWorkers(n int) func(*ParallelOptions) {
	return func(p *ParallelOptions) { p.Workers = n }
}

func (p ParallelOptions) workerCount() int {
	if p.Workers > 0 {
		return p.Workers
	}
	n := cpuid.CPU.LogicalCores
	if n <= 0 || n > runtime.NumCPU() {
		n = runtime.NumCPU()
	}
	if n < 1 {
		n = 1
	}
	return n
}

// workerResult is one lane's answer, fanned in to the CollideParallel
// coordinator over a buffered channel so a losing lane never blocks on send.
type workerResult struct {
	lane  int
	block [16]uint32
	stats Stats
}

// CollideParallel races popts.Workers independent invocations of engine
// against the same iv, each seeded distinctly from the others, and returns
// the first to succeed. Each lane runs its own unbounded search; the
// dispatcher's only job is picking a winner off the result channel, not
// assembling or synchronizing anything across lanes.
//
// Losing lanes are not preemptible mid-search — CollideBlock0/CollideBlock1
// have no cancellation point between outer-loop restarts — so ctx only
// governs how long the caller waits for a winner; goroutines that lose the
// race keep running in the background until their own engine returns, then
// discard their result silently.
func CollideParallel(ctx context.Context, iv IV, popts ParallelOptions) ([16]uint32, Stats, error) {
	engine := popts.engine()
	workers := popts.workerCount()

	popts.logInfo("parallel: racing %d workers on %s", workers, cpuid.CPU.BrandName)

	resultCh := make(chan workerResult, workers)

	for lane := 0; lane < workers; lane++ {
		laneOpts := popts.Options
		laneOpts.Seed = laneSeed(popts.Options.Seed, lane)

		go func(lane int, opts Options) {
			block, stats, err := engine(iv, opts)
			if err != nil {
				return // programmer-error class failures only; nothing to race with.
			}
			resultCh <- workerResult{lane: lane, block: block, stats: stats}
		}(lane, laneOpts)
	}

	select {
	case res := <-resultCh:
		popts.logInfo("parallel: lane %d won after %d outer restarts, %v", res.lane, res.stats.OuterRestarts, res.stats.Elapsed)
		return res.block, res.stats, nil
	case <-ctx.Done():
		return [16]uint32{}, Stats{}, ctx.Err()
	}
}

// laneSeed derives a per-lane seed so workers never sample the same trail:
// an explicit Options.Seed is mixed with the lane index; an absent one falls
// back to the wall-clock, also mixed with the lane index so two lanes
// started in the same nanosecond still diverge.
func laneSeed(base *uint64, lane int) *uint64 {
	const laneMix = 0x9e3779b97f4a7c15 // golden-ratio constant, spreads low lane indices across the state space
	var seed uint64
	if base != nil {
		seed = *base
	} else {
		seed = uint64(time.Now().UnixNano())
	}
	seed ^= uint64(lane) * laneMix
	return &seed
}

// engine defaults ParallelOptions to CollideBlock0 when the caller hasn't
// picked one; CollideBlock1 callers always set it explicitly since it also
// requires a post-block-0 iv.
func (p ParallelOptions) engine() Engine {
	if p.Engine != nil {
		return p.Engine
	}
	return CollideBlock0
}
