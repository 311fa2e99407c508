package resilience

import "sync"

// SingleFlight collapses concurrent calls that share a key into one
// execution; followers block until the leader finishes and receive its
// result.
type SingleFlight struct {
	mu       sync.Mutex
	inflight map[string]*flight
}

type flight struct {
	done   chan struct{}
	result any
	err    error
}

// Do runs fn once per key at a time. The bool reports whether the result
// came from another caller's in-flight execution.
func (g *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	g.mu.Lock()
	if f, ok := g.inflight[key]; ok {
		g.mu.Unlock()
		<-f.done
		return f.result, f.err, true
	}

	f := &flight{done: make(chan struct{})}
	if g.inflight == nil {
		g.inflight = make(map[string]*flight)
	}
	g.inflight[key] = f
	g.mu.Unlock()

	f.result, f.err = fn()
	close(f.done)

	g.mu.Lock()
	delete(g.inflight, key)
	g.mu.Unlock()

	return f.result, f.err, false
}
