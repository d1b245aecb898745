package audio

import (
	"sync"
	"testing"
)

func seq(from, n int) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = float32(from + i)
	}
	return s
}

func TestQueueReadWrite(t *testing.T) {
	q := NewQueue(8, 2)
	q.Write(seq(1, 4))
	if q.Len() != 4 {
		t.Fatalf("Len: got %d, expected 4", q.Len())
	}

	dst := make([]float32, 6)
	if n := q.Read(dst); n != 4 {
		t.Fatalf("Read: got %d, expected 4", n)
	}
	expected := []float32{1, 2, 3, 4, 0, 0}
	for i := range dst {
		if dst[i] != expected[i] {
			t.Fatalf("dst[%d]: got %v, expected %v", i, dst[i], expected[i])
		}
	}
}

func TestQueueDropsOldest(t *testing.T) {
	q := NewQueue(8, 2)
	q.Write(seq(1, 6))
	q.Write(seq(7, 4))

	dst := make([]float32, 8)
	if n := q.Read(dst); n != 8 {
		t.Fatalf("Read: got %d, expected 8", n)
	}
	for i := range dst {
		if dst[i] != float32(3+i) {
			t.Fatalf("dst[%d]: got %v, expected %v", i, dst[i], 3+i)
		}
	}
}

func TestQueueOversizedWrite(t *testing.T) {
	q := NewQueue(4, 1)
	q.Write(seq(1, 10))
	dst := make([]float32, 4)
	q.Read(dst)
	for i := range dst {
		if dst[i] != float32(7+i) {
			t.Fatalf("dst[%d]: got %v, expected %v", i, dst[i], 7+i)
		}
	}
}

func TestQueueWrapAround(t *testing.T) {
	q := NewQueue(6, 1)
	dst := make([]float32, 4)
	next := 1
	for round := 0; round < 10; round++ {
		q.Write(seq(next, 4))
		if n := q.Read(dst); n != 4 {
			t.Fatalf("round %d: Read got %d", round, n)
		}
		for i := range dst {
			if dst[i] != float32(next+i) {
				t.Fatalf("round %d: dst[%d] got %v, expected %v", round, i, dst[i], next+i)
			}
		}
		next += 4
	}
}

func TestQueueSilenceWhenEmpty(t *testing.T) {
	q := NewQueue(4, 2)
	dst := []float32{9, 9, 9}
	if n := q.Read(dst); n != 0 {
		t.Fatalf("Read: got %d, expected 0", n)
	}
	for i, v := range dst {
		if v != 0 {
			t.Fatalf("dst[%d]: got %v, expected silence", i, v)
		}
	}
	q.Write(seq(1, 2))
	q.Clear()
	if q.Len() != 0 {
		t.Fatalf("Len after Clear: got %d", q.Len())
	}
}

func TestQueueConcurrent(t *testing.T) {
	q := NewQueue(1024, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			q.Write(seq(0, 64))
		}
	}()
	go func() {
		defer wg.Done()
		dst := make([]float32, 48)
		for i := 0; i < 1000; i++ {
			q.Read(dst)
		}
	}()
	wg.Wait()
	if q.Len() > q.Cap() {
		t.Fatalf("Len %d exceeds Cap %d", q.Len(), q.Cap())
	}
}
