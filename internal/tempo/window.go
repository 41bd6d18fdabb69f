package tempo

// IntervalWindow is a fixed-capacity FIFO of tick intervals in seconds.
// Pushing into a full window evicts the oldest interval. Not safe for
// concurrent use.
type IntervalWindow struct {
	buf   []float64
	head  int // oldest element
	count int
}

// NewIntervalWindow creates a window holding at most capacity intervals.
func NewIntervalWindow(capacity int) *IntervalWindow {
	if capacity < 1 {
		capacity = 1
	}
	return &IntervalWindow{buf: make([]float64, capacity)}
}

// Push appends an interval, evicting the oldest one when full.
func (w *IntervalWindow) Push(v float64) {
	if w.count < len(w.buf) {
		w.buf[(w.head+w.count)%len(w.buf)] = v
		w.count++
		return
	}
	w.buf[w.head] = v
	w.head = (w.head + 1) % len(w.buf)
}

// Len returns the number of buffered intervals.
func (w *IntervalWindow) Len() int { return w.count }

// Cap returns the window capacity.
func (w *IntervalWindow) Cap() int { return len(w.buf) }

// Full reports whether the window holds Cap intervals.
func (w *IntervalWindow) Full() bool { return w.count == len(w.buf) }

// Reset drops all intervals.
func (w *IntervalWindow) Reset() {
	w.head = 0
	w.count = 0
}

// Values returns a copy of the intervals, oldest first.
func (w *IntervalWindow) Values() []float64 {
	out := make([]float64, w.count)
	for i := range out {
		out[i] = w.buf[(w.head+i)%len(w.buf)]
	}
	return out
}
