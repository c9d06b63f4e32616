package edt

import "runtime"

// Scheduling defaults.
const (
	// DefaultMinBlock is the smallest number of columns (phase one) or rows
	// (phase two) handed to a single goroutine.
	DefaultMinBlock = 16
)

const (
	panicWorkersInvalid  = "edt: WithWorkers: n must be >= 1"
	panicMinBlockInvalid = "edt: WithMinBlock: n must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	workers  int // >= 1; runtime.GOMAXPROCS(0) by default
	minBlock int // >= 1; DefaultMinBlock
}

// WithWorkers bounds the number of goroutines running concurrently in each
// phase. n == 1 runs both phases on the calling goroutine.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithMinBlock sets the minimum number of columns or rows per task.
// Panics if n < 1.
func WithMinBlock(n int) Option {
	if n < 1 {
		panic(panicMinBlockInvalid)
	}

	return func(o *Options) { o.minBlock = n }
}

// Workers reports the resolved worker bound.
func (o Options) Workers() int { return o.workers }

// MinBlock reports the resolved minimum block size.
func (o Options) MinBlock() int { return o.minBlock }

// GatherOptions resolves user setters over the defaults, last writer wins.
func GatherOptions(user ...Option) Options {
	o := Options{
		workers:  runtime.GOMAXPROCS(0),
		minBlock: DefaultMinBlock,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
