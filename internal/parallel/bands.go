package parallel

// Band is a half-open range of output rows [Y0, Y1) processed by one
// work item. Bands never overlap, so band writers need no locking.
type Band struct {
	Y0, Y1 int
}

// SplitBands divides height rows into at most n contiguous bands of
// near-equal size. n <= 1 or a short image yields a single band.
func SplitBands(height, n int) []Band {
	if n < 1 {
		n = 1
	}
	if n > height {
		n = height
	}
	if height <= 0 {
		return nil
	}

	bands := make([]Band, 0, n)
	size := height / n
	extra := height % n
	y := 0
	for i := 0; i < n; i++ {
		h := size
		if i < extra {
			h++
		}
		bands = append(bands, Band{Y0: y, Y1: y + h})
		y += h
	}
	return bands
}

// RunBands splits height rows across the pool and calls fn once per band,
// blocking until every band is done. A band count of 4x the worker count
// keeps all workers busy when bands finish unevenly. With one worker the
// bands run serially on the caller's goroutine.
func RunBands(p *WorkerPool, height int, fn func(b Band)) {
	if p == nil || p.Workers() == 1 {
		for _, b := range SplitBands(height, 1) {
			fn(b)
		}
		return
	}

	bands := SplitBands(height, p.Workers()*4)
	work := make([]func(), len(bands))
	for i, b := range bands {
		band := b
		work[i] = func() { fn(band) }
	}
	p.ExecuteAll(work)
}
