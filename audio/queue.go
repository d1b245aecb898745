// Package audio buffers interleaved float32 samples between the frame loop
// and a backend's audio thread.
package audio

import "sync"

// Queue is a bounded sample FIFO. When full, the oldest samples are
// discarded; when empty, readers get silence.
type Queue struct {
	mu       sync.Mutex
	buf      []float32
	head     int
	size     int
	channels int
}

func NewQueue(capacity, channels int) *Queue {
	if channels <= 0 {
		channels = 1
	}
	capacity -= capacity % channels
	if capacity <= 0 {
		capacity = channels
	}
	return &Queue{
		buf:      make([]float32, capacity),
		channels: channels,
	}
}

func (q *Queue) Channels() int {
	return q.channels
}

func (q *Queue) Cap() int {
	return len(q.buf)
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}

// Write appends samples, dropping the oldest ones if they do not fit.
func (q *Queue) Write(samples []float32) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(samples) >= len(q.buf) {
		samples = samples[len(samples)-len(q.buf):]
		copy(q.buf, samples)
		q.head = 0
		q.size = len(q.buf)
		return
	}

	if overflow := q.size + len(samples) - len(q.buf); overflow > 0 {
		q.head = (q.head + overflow) % len(q.buf)
		q.size -= overflow
	}
	tail := (q.head + q.size) % len(q.buf)
	n := copy(q.buf[tail:], samples)
	copy(q.buf, samples[n:])
	q.size += len(samples)
}

// Read fills dst and returns how many samples came from the queue. The
// rest of dst is silence.
func (q *Queue) Read(dst []float32) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := min(len(dst), q.size)
	first := min(n, len(q.buf)-q.head)
	copy(dst, q.buf[q.head:q.head+first])
	copy(dst[first:n], q.buf[:n-first])
	q.head = (q.head + n) % len(q.buf)
	q.size -= n

	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
	return n
}

func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.head = 0
	q.size = 0
}
