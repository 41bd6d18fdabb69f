// Package inflight tracks driver callbacks that are running on threads the
// client does not own, so a client can stop without racing them.
package inflight

import "sync"

// Gate admits callbacks until it is closed. Close waits for the admitted
// ones to leave. The zero value is open.
type Gate struct {
	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// Enter admits a callback. It returns false once Close has been called;
// otherwise the caller must call Exit when done.
func (g *Gate) Enter() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return false
	}
	g.wg.Add(1)
	return true
}

// Exit marks an admitted callback as finished.
func (g *Gate) Exit() {
	g.wg.Done()
}

// Close refuses new callbacks and waits for admitted ones. Calling it again
// only waits.
func (g *Gate) Close() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()
	g.wg.Wait()
}

// Reopen admits callbacks again after Close.
func (g *Gate) Reopen() {
	g.mu.Lock()
	g.closed = false
	g.mu.Unlock()
}
