package inflight

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGate_CloseWaitsForAdmitted(t *testing.T) {
	var g Gate
	if !g.Enter() {
		t.Fatal("Enter() on open gate = false")
	}

	done := make(chan struct{})
	go func() {
		g.Close()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Close returned while a callback was in flight")
	case <-time.After(20 * time.Millisecond):
	}

	g.Exit()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return after Exit")
	}
}

func TestGate_RefusesAfterClose(t *testing.T) {
	var g Gate
	g.Close()

	if g.Enter() {
		t.Error("Enter() after Close = true")
	}

	g.Reopen()
	if !g.Enter() {
		t.Fatal("Enter() after Reopen = false")
	}
	g.Exit()
}

func TestGate_ConcurrentCallbacksDuringClose(t *testing.T) {
	var (
		g       Gate
		running atomic.Int64
		late    atomic.Int64
		closed  atomic.Bool
		wg      sync.WaitGroup
	)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				if !g.Enter() {
					return
				}
				if closed.Load() {
					late.Add(1)
				}
				running.Add(1)
				running.Add(-1)
				g.Exit()
			}
		}()
	}

	time.Sleep(time.Millisecond)
	g.Close()
	closed.Store(true)

	if n := running.Load(); n != 0 {
		t.Errorf("%d callbacks still running after Close", n)
	}
	wg.Wait()
	if n := late.Load(); n != 0 {
		t.Errorf("%d callbacks admitted after Close returned", n)
	}
}
