package customrules

import (
	"sync"

	"go.starlark.net/starlark"
)

const defaultPoolSize = 8

// threadPool reuses Starlark threads across check calls. Files may be
// checked concurrently, and a thread must not be shared by two calls.
type threadPool struct {
	mu      sync.Mutex
	threads []*starlark.Thread
	maxSize int
}

func newThreadPool(maxSize int) *threadPool {
	if maxSize <= 0 {
		maxSize = defaultPoolSize
	}
	return &threadPool{
		threads: make([]*starlark.Thread, 0, maxSize),
		maxSize: maxSize,
	}
}

// get retrieves a thread from the pool or creates a new one.
func (p *threadPool) get(name string) *starlark.Thread {
	p.mu.Lock()
	defer p.mu.Unlock()

	if n := len(p.threads); n > 0 {
		thread := p.threads[n-1]
		p.threads = p.threads[:n-1]
		thread.Name = name
		return thread
	}

	return &starlark.Thread{
		Name:  name,
		Print: func(_ *starlark.Thread, _ string) {},
	}
}

// put returns a thread to the pool. Threads beyond maxSize are dropped.
func (p *threadPool) put(thread *starlark.Thread) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.threads) < p.maxSize {
		thread.Name = ""
		p.threads = append(p.threads, thread)
	}
}

func (p *threadPool) size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.threads)
}
