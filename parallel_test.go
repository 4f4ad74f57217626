package collide

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollideParallelDefaultWorkerCount(t *testing.T) {
	p := ParallelOptions{}
	require.Greater(t, p.workerCount(), 0)

	p.Workers = 3
	require.Equal(t, 3, p.workerCount())
}

func TestLaneSeedDiverges(t *testing.T) {
	base := uint64(42)
	seedA := laneSeed(&base, 0)
	seedB := laneSeed(&base, 1)
	require.NotEqual(t, *seedA, *seedB)
}

// TestCollideParallelFindsBlock0 races a handful of workers against the
// standard IV and checks a winner satisfies the same differential-closure
// property as a single-worker CollideBlock0 search.
func TestCollideParallelFindsBlock0(t *testing.T) {
	if testing.Short() {
		t.Skip("CollideParallel runs real randomized searches; skipped in -short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	popts := ParallelOptions{
		Options: NewOptions(WithSeed(0xbeef)),
		Workers: 4,
	}
	block, stats, err := CollideParallel(ctx, StandardIV, popts)
	require.NoError(t, err)
	require.Equal(t, -1, stats.Path)

	block2 := block
	block2[4] += deltaBlock0.w4
	block2[11] += deltaBlock0.w11
	block2[14] += deltaBlock0.w14

	iv1 := Compress(StandardIV, block)
	iv2 := Compress(StandardIV, block2)
	require.Equal(t, DeltaIV, iv2.Sub(iv1))
}

func TestCollideParallelRespectsContextTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()

	// A near-zero timeout should fire well before even a single outer
	// restart of a real search completes.
	_, _, err := CollideParallel(ctx, StandardIV, ParallelOptions{Workers: 1})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
