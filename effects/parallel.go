package effects

import (
	"runtime"
	"sync"
)

// parallelThreshold is the minimum row count worth fanning out to workers.
// Below this, single-threaded is faster due to goroutine overhead.
const parallelThreshold = 64

// forEachRowChunk runs fn over [0,h) split into contiguous row chunks, one
// per worker. Stages using it must be independent per row.
func forEachRowChunk(h int, fn func(y0, y1 int)) {
	if h < parallelThreshold {
		fn(0, h)
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > h {
		workers = h
	}
	chunk := (h + workers - 1) / workers

	var wg sync.WaitGroup
	for y0 := 0; y0 < h; y0 += chunk {
		y1 := y0 + chunk
		if y1 > h {
			y1 = h
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			fn(y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}
