// Package queue provides a FIFO work queue backed by a growable ring buffer.
//
// The propagator uses it to walk forward edges breadth-first; FIFO order is
// what makes the walk visit vertices in non-decreasing BFS depth.
//
// Complexity: Push and Pop are O(1) amortized; the buffer doubles when full
// and is never shrunk. Queue is not safe for concurrent use.
package queue

// defaultCapacity is used when New is given a non-positive capacity.
const defaultCapacity = 16

// Queue is a FIFO of T. The zero value is an empty queue ready to use.
type Queue[T any] struct {
	buf  []T
	head int // index of the oldest element
	n    int // number of stored elements
}

// New returns an empty queue with room for capacity elements before growing.
func New[T any](capacity int) *Queue[T] {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Queue[T]{buf: make([]T, capacity)}
}

// Push appends x at the tail.
func (q *Queue[T]) Push(x T) {
	if q.n == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.n)%len(q.buf)] = x
	q.n++
}

// Pop removes and returns the oldest element. The second result is false
// when the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.n == 0 {
		return zero, false
	}
	x := q.buf[q.head]
	q.buf[q.head] = zero // drop the reference for the GC
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return x, true
}

// Peek returns the oldest element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.n == 0 {
		var zero T
		return zero, false
	}
	return q.buf[q.head], true
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.n }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.n == 0 }

// Reset empties the queue, keeping its buffer.
func (q *Queue[T]) Reset() {
	clear(q.buf)
	q.head, q.n = 0, 0
}

// grow doubles the buffer and unwraps the ring so head is at index 0.
func (q *Queue[T]) grow() {
	size := len(q.buf) * 2
	if size == 0 {
		size = defaultCapacity
	}
	next := make([]T, size)
	if q.n > 0 {
		tail := copy(next, q.buf[q.head:])
		copy(next[tail:], q.buf[:q.head])
	}
	q.buf = next
	q.head = 0
}
