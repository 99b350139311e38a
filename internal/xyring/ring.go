// Package xyring carries generated XY samples from the synthesis
// goroutine to the display. The Ring is a fixed-capacity lock-free
// buffer with exactly one producer and one consumer; the Snapshot is a
// display-owned staging buffer so that repeated display reads never
// touch the ring itself.
package xyring

import "sync/atomic"

// Sample is one stereo output frame. Left channel = X, right channel = Y.
type Sample struct {
	X float32
	Y float32
}

// Ring is a single-producer/single-consumer circular buffer of samples.
//
// The producer role owns Push, the consumer role owns Pop; neither may
// be shared across goroutines. Push never blocks and never allocates:
// when the buffer is full the sample is dropped and the drop counter
// increments. Pop returns immediately when empty.
//
// Correctness depends on the slot write becoming visible to the
// consumer before the advanced write cursor does (and symmetrically
// for the read cursor). Go's sync/atomic operations are sequentially
// consistent, which is strictly stronger than the release/acquire
// pairing this pattern needs.
type Ring struct {
	buf      []Sample
	capacity uint64

	writePos atomic.Uint64 // advanced only by the producer
	readPos  atomic.Uint64 // advanced only by the consumer
	dropped  atomic.Uint64
}

// New creates a ring with the given capacity. Capacities below 1 are
// raised to 1. The capacity is fixed for the life of the ring.
func New(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{
		buf:      make([]Sample, capacity),
		capacity: uint64(capacity),
	}
}

// Push appends a sample. Returns false if the ring was full and the
// sample was dropped. Producer side only.
func (r *Ring) Push(s Sample) bool {
	w := r.writePos.Load()
	if w-r.readPos.Load() >= r.capacity {
		r.dropped.Add(1)
		return false
	}
	r.buf[w%r.capacity] = s
	r.writePos.Store(w + 1) // publish the slot write above
	return true
}

// Pop removes and returns the oldest sample. Returns false immediately
// when the ring is empty; this is a normal condition, not an error.
// Consumer side only.
func (r *Ring) Pop() (Sample, bool) {
	p := r.readPos.Load()
	if p == r.writePos.Load() {
		return Sample{}, false
	}
	s := r.buf[p%r.capacity]
	r.readPos.Store(p + 1)
	return s, true
}

// Len reports how many samples are currently buffered. Exact only when
// called from the producer or consumer goroutine; advisory otherwise.
func (r *Ring) Len() int {
	return int(r.writePos.Load() - r.readPos.Load())
}

// Cap returns the fixed capacity.
func (r *Ring) Cap() int { return int(r.capacity) }

// Pushed returns the total number of samples ever accepted.
func (r *Ring) Pushed() uint64 { return r.writePos.Load() }

// Dropped returns the total number of samples rejected because the
// ring was full. Dropping is expected under load and non-fatal.
func (r *Ring) Dropped() uint64 { return r.dropped.Load() }

// Snapshot is a fixed-size circular trace buffer owned by the display.
// Drain moves everything currently in the ring into it in one pass;
// the display then reads the snapshot as often as it likes without
// contending with the producer.
type Snapshot struct {
	buf      []Sample
	writePos int
	total    uint64
}

// NewSnapshot creates a snapshot holding the most recent capacity samples.
func NewSnapshot(capacity int) *Snapshot {
	if capacity < 1 {
		capacity = 1
	}
	return &Snapshot{buf: make([]Sample, capacity)}
}

// Drain pops every currently available sample from the ring into the
// snapshot and returns how many were moved. Call from the single
// display goroutine, once per rendered frame.
func (s *Snapshot) Drain(r *Ring) int {
	n := 0
	for {
		smp, ok := r.Pop()
		if !ok {
			return n
		}
		s.buf[s.writePos] = smp
		s.writePos = (s.writePos + 1) % len(s.buf)
		s.total++
		n++
	}
}

// Total returns the number of samples ever drained into the snapshot.
func (s *Snapshot) Total() uint64 { return s.total }

// Recent appends the most recent n samples to dst in chronological
// order (oldest first) and returns the extended slice. n is capped at
// the snapshot capacity and at the number of samples seen so far.
func (s *Snapshot) Recent(dst []Sample, n int) []Sample {
	if n > len(s.buf) {
		n = len(s.buf)
	}
	if uint64(n) > s.total {
		n = int(s.total)
	}
	start := (s.writePos - n + len(s.buf)) % len(s.buf)
	for i := 0; i < n; i++ {
		dst = append(dst, s.buf[(start+i)%len(s.buf)])
	}
	return dst
}
