package ppm

import (
	"slices"
	"sync/atomic"
	"testing"
)

func withParallelConfig(t *testing.T, config ParallelConfig) {
	t.Helper()
	old := GetParallelConfig()
	SetParallelConfig(config)
	t.Cleanup(func() { SetParallelConfig(old) })
}

func TestParallelFor(t *testing.T) {
	withParallelConfig(t, ParallelConfig{NumWorkers: 4, GrainSize: 1})

	n := 1000
	var count int64
	seen := make([]int32, n)
	ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt64(&count, 1)
			atomic.AddInt32(&seen[i], 1)
		}
	})

	if count != int64(n) {
		t.Errorf("ParallelFor processed %d items, want %d", count, n)
	}
	for i, c := range seen {
		if c != 1 {
			t.Fatalf("index %d visited %d times", i, c)
		}
	}
}

func TestParallelForSmall(t *testing.T) {
	withParallelConfig(t, ParallelConfig{NumWorkers: 4, GrainSize: 100})

	calls := 0
	ParallelFor(10, func(start, end int) {
		calls++
		if start != 0 || end != 10 {
			t.Errorf("sequential chunk = [%d, %d), want [0, 10)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}

	ParallelFor(0, func(start, end int) {
		t.Error("fn called for empty range")
	})
}

func TestParallelTransformsMatchSequential(t *testing.T) {
	px := make([]Pixel, 10007)
	for i := range px {
		px[i] = Pixel{uint8(i), uint8(i * 7), uint8(i * 13)}
	}

	withParallelConfig(t, ParallelConfig{NumWorkers: 1})
	seq := NewImage(slices.Clone(px), len(px), 1)
	seq.Invert()
	seq.ToGrayscale()

	SetParallelConfig(ParallelConfig{NumWorkers: 8, GrainSize: 16})
	par := NewImage(slices.Clone(px), len(px), 1)
	par.Invert()
	par.ToGrayscale()

	if !slices.Equal(seq.Pixels(), par.Pixels()) {
		t.Error("parallel transforms differ from sequential")
	}
}

func TestDefaultParallelConfig(t *testing.T) {
	config := DefaultParallelConfig()
	if config.NumWorkers != 0 {
		t.Errorf("NumWorkers = %d, want 0", config.NumWorkers)
	}
	if effectiveWorkers(config) < 1 {
		t.Errorf("effectiveWorkers = %d", effectiveWorkers(config))
	}
}
