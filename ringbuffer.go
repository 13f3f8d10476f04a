package engine

import "sync/atomic"

// RingBuffer is a lock-free single-producer/single-consumer sample
// queue used to hand rendered audio from the engine's render thread to
// an output device callback without blocking either side (spec §5).
type RingBuffer struct {
	data     []Sample
	capacity uint32
	writePos atomic.Uint32
	readPos  atomic.Uint32
}

// NewRingBuffer allocates a buffer holding capacity samples.
func NewRingBuffer(capacity uint32) *RingBuffer {
	return &RingBuffer{data: make([]Sample, capacity), capacity: capacity}
}

// Write copies as many leading samples of src as fit without
// overwriting unread data, returning the count written. Safe to call
// concurrently with one Read caller.
func (rb *RingBuffer) Write(src []Sample) int {
	writePos := rb.writePos.Load()
	readPos := rb.readPos.Load()

	available := (readPos - writePos - 1 + rb.capacity) % rb.capacity
	toWrite := uint32(len(src))
	if toWrite > available {
		toWrite = available
	}

	for i := uint32(0); i < toWrite; i++ {
		rb.data[(writePos+i)%rb.capacity] = src[i]
	}

	rb.writePos.Store((writePos + toWrite) % rb.capacity)
	return int(toWrite)
}

// Read copies as many samples as are available into dst, returning the
// count read. Safe to call concurrently with one Write caller.
func (rb *RingBuffer) Read(dst []Sample) int {
	writePos := rb.writePos.Load()
	readPos := rb.readPos.Load()

	available := (writePos - readPos + rb.capacity) % rb.capacity
	toRead := uint32(len(dst))
	if toRead > available {
		toRead = available
	}

	for i := uint32(0); i < toRead; i++ {
		dst[i] = rb.data[(readPos+i)%rb.capacity]
	}

	rb.readPos.Store((readPos + toRead) % rb.capacity)
	return int(toRead)
}

// Available reports how many samples are queued for reading.
func (rb *RingBuffer) Available() int {
	writePos := rb.writePos.Load()
	readPos := rb.readPos.Load()
	return int((writePos - readPos + rb.capacity) % rb.capacity)
}
