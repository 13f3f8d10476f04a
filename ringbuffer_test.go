package engine

import "testing"

func TestRingBuffer_WriteThenReadRoundTrips(t *testing.T) {
	rb := NewRingBuffer(16)
	src := []Sample{1, 2, 3, 4, 5}
	if n := rb.Write(src); n != len(src) {
		t.Fatalf("Write() = %d, want %d", n, len(src))
	}
	if n := rb.Available(); n != len(src) {
		t.Fatalf("Available() = %d, want %d", n, len(src))
	}

	dst := make([]Sample, len(src))
	if n := rb.Read(dst); n != len(src) {
		t.Fatalf("Read() = %d, want %d", n, len(src))
	}
	for i := range src {
		if dst[i] != src[i] {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], src[i])
		}
	}
	if n := rb.Available(); n != 0 {
		t.Fatalf("Available() after full drain = %d, want 0", n)
	}
}

func TestRingBuffer_WriteNeverOverwritesUnreadData(t *testing.T) {
	// Capacity 4 can hold at most capacity-1 = 3 unread samples (the
	// empty/full ambiguity is resolved by always leaving one slot free).
	rb := NewRingBuffer(4)
	full := []Sample{1, 2, 3, 4, 5}
	n := rb.Write(full)
	if n != 3 {
		t.Fatalf("Write() = %d, want capped at capacity-1 = 3", n)
	}
	if avail := rb.Available(); avail != 3 {
		t.Fatalf("Available() = %d, want 3", avail)
	}
}

func TestRingBuffer_ReadMoreThanAvailableReturnsOnlyAvailable(t *testing.T) {
	rb := NewRingBuffer(16)
	rb.Write([]Sample{1, 2})

	dst := make([]Sample, 10)
	n := rb.Read(dst)
	if n != 2 {
		t.Fatalf("Read() = %d, want 2 (only 2 samples were available)", n)
	}
}

func TestRingBuffer_WrapsAroundCorrectly(t *testing.T) {
	rb := NewRingBuffer(4)
	rb.Write([]Sample{1, 2, 3})

	drained := make([]Sample, 3)
	rb.Read(drained)

	rb.Write([]Sample{4, 5, 6})
	dst := make([]Sample, 3)
	n := rb.Read(dst)
	if n != 3 {
		t.Fatalf("Read() after wraparound = %d, want 3", n)
	}
	want := []Sample{4, 5, 6}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %v, want %v (wraparound data corrupted)", i, dst[i], want[i])
		}
	}
}

func TestRingBuffer_EmptyReadReturnsZero(t *testing.T) {
	rb := NewRingBuffer(8)
	dst := make([]Sample, 4)
	if n := rb.Read(dst); n != 0 {
		t.Fatalf("Read() on empty buffer = %d, want 0", n)
	}
}
