/*package thread contains functions useful for multi-threading the particle
loops in mirror.*/
package thread

import (
	"fmt"
	"runtime"
	"sync"
)

// Set sets the number of threads mirror will run on. Setting n = -1 uses
// every available core.
func Set(n int) (int, error) {
	if n == -1 {
		n = runtime.NumCPU()
	}
	if n <= 0 {
		return 0, fmt.Errorf("%d threads requested, but the thread count must "+
			"be positive (or -1 to use every core).", n)
	} else if n > runtime.NumCPU() {
		return 0, fmt.Errorf("%d threads requested, but your system only has "+
			"%d cores. If you want mirror to use the maximum number of "+
			"threads, set Threads = -1.", n, runtime.NumCPU())
	}

	runtime.GOMAXPROCS(n)
	return n, nil
}

// Workers returns the number of workers particle loops should be split
// across.
func Workers() int {
	return runtime.GOMAXPROCS(0)
}

// Chunk is a contiguous range of particle indices, [Start, End).
type Chunk struct {
	Start, End int
}

// Chunks splits n indices into at most workers disjoint, contiguous chunks
// of nearly equal size. Empty chunks are never returned, so the result has
// fewer than workers elements when n < workers.
func Chunks(n, workers int) []Chunk {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	out := make([]Chunk, workers)
	start := 0
	for i := range out {
		size := n / workers
		if i < n%workers {
			size++
		}
		out[i] = Chunk{start, start + size}
		start += size
	}

	return out
}

// Parallel calls f once for every chunk, each on its own goroutine, and waits
// for all of them to finish. A single chunk is run on the calling goroutine.
func Parallel(chunks []Chunk, f func(c Chunk)) {
	if len(chunks) == 1 {
		f(chunks[0])
		return
	}

	wg := &sync.WaitGroup{}
	wg.Add(len(chunks))
	for i := range chunks {
		go func(c Chunk) {
			defer wg.Done()
			f(c)
		}(chunks[i])
	}
	wg.Wait()
}
