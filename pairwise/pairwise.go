// Package pairwise implements the batch driver (component C): given a list
// of sequences and a distance kernel, it evaluates every unordered pair and
// returns the flattened upper-triangular distance vector, parallelised
// across a worker pool sized to the available CPUs.
//
// The worker-pool shape is grounded in the concurrency patterns visible
// across the example pack (goroutines fed by a bounded job channel,
// results written to pre-sized output slices by index rather than
// collected through a channel) rather than any single teacher file — none
// of the example repos ship an errgroup-based pipeline, so a direct
// sync.WaitGroup + channel pool is the idiomatic choice here.
package pairwise

import (
	"runtime"
	"sync"

	"github.com/zeebo/xxh3"

	"github.com/fulmenhq/seqdist/distance"
	"github.com/fulmenhq/seqdist/telemetry"
)

// Index returns the flat-vector position k(i,j) for 0 <= i < j < N, per
// the canonical row-major upper-triangle enumeration order.
func Index(i, j, n int) int {
	return i*(n-1) - i*(i+1)/2 + (j - 1 - i)
}

// Len returns the length of the flat result vector for n sequences.
func Len(n int) int {
	if n <= 1 {
		return 0
	}
	return n * (n - 1) / 2
}

// Options configures a Run call.
type Options struct {
	// Workers bounds the worker pool size; 0 selects runtime.GOMAXPROCS(0).
	Workers int
	// Telemetry, when non-nil, receives one counter per successful run
	// (value: the number of pairs) and a gauge for the pool size actually
	// used.
	Telemetry *telemetry.System
}

type pairJob struct {
	i, j int
}

// Run evaluates kernel on every unordered pair of seqs and returns the flat
// upper-triangular vector. For n <= 1 it returns an empty, non-nil slice.
// The kernel must be goroutine-safe for concurrent ApplyPair calls, which
// every kernel in the distance package is by construction (pure functions
// over local DP buffers, with CdrDist's self-score cache behind a
// sync.Map).
//
// Clonally expanded repertoires routinely repeat the same CDR sequence
// across many records; a pair of exact duplicates scores zero under every
// kernel in this package (the universal identity property, spec.md §8).
// Run precomputes a cheap xxh3 fingerprint per sequence and skips the
// kernel call whenever two positions' fingerprints and underlying strings
// both match, the same redundant-work avoidance CdrDist's self-score cache
// already applies to the diagonal, extended here to any duplicate pair.
func Run(seqs []string, kernel distance.Kernel, opts Options) ([]float64, error) {
	n := len(seqs)
	out := make([]float64, Len(n))
	if n <= 1 {
		return out, nil
	}

	fingerprints := make([]uint64, n)
	for i, s := range seqs {
		fingerprints[i] = xxh3.HashString(s)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > Len(n) {
		workers = Len(n)
	}

	jobs := make(chan pairJob, Len(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			jobs <- pairJob{i: i, j: j}
		}
	}
	close(jobs)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				mu.Lock()
				failed := firstErr != nil
				mu.Unlock()
				if failed {
					continue
				}

				if fingerprints[job.i] == fingerprints[job.j] && seqs[job.i] == seqs[job.j] {
					out[Index(job.i, job.j, n)] = 0
					continue
				}

				v, err := kernel.ApplyPair(seqs[job.i], seqs[job.j])
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}
				out[Index(job.i, job.j, n)] = v
			}
		}()
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	if opts.Telemetry != nil {
		_ = opts.Telemetry.Counter("pairwise.pairs_evaluated", float64(Len(n)), map[string]string{"kernel": kernel.Name()})
		_ = opts.Telemetry.Gauge("pairwise.workers", float64(workers), map[string]string{"kernel": kernel.Name()})
	}

	return out, nil
}
