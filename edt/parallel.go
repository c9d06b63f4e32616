package edt

import "golang.org/x/sync/errgroup"

// forBlocks splits [0,n) into at most o.workers contiguous blocks of at
// least o.minBlock units and runs fn once per block. It returns the number
// of blocks after every fn call has returned.
//
// A single block runs on the calling goroutine.
func forBlocks(n int, o Options, fn func(lo, hi int)) int {
	if n <= 0 {
		return 0
	}
	blocks := min(o.workers, (n+o.minBlock-1)/o.minBlock)
	if blocks <= 1 {
		fn(0, n)
		return 1
	}

	size := (n + blocks - 1) / blocks
	var g errgroup.Group
	g.SetLimit(o.workers)
	count := 0
	for lo := 0; lo < n; lo += size {
		lo := lo // per-iteration copy; go.mod targets go1.21 loop semantics
		hi := min(lo+size, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
		count++
	}
	_ = g.Wait() // fn never fails

	return count
}
