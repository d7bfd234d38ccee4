package core

import "testing"

func lineString(l Line) string {
	return string(l.Bytes())
}

func TestScrollBufferBasic(t *testing.T) {
	var b ScrollBuffer

	if b.Size() != 0 {
		t.Fatalf("new buffer should be empty, got size %d", b.Size())
	}

	b.Push([]byte("L1"))
	b.Push([]byte("L2"))
	b.Push([]byte("L3"))

	if b.Size() != 3 {
		t.Fatalf("expected size 3, got %d", b.Size())
	}
	if lineString(b.Get(0)) != "L1" || lineString(b.Get(1)) != "L2" || lineString(b.Get(2)) != "L3" {
		t.Fatalf("unexpected push order: %q %q %q", lineString(b.Get(0)), lineString(b.Get(1)), lineString(b.Get(2)))
	}
	if lineString(b.Get(3)) != "" {
		t.Fatalf("out-of-range get should be empty, got %q", lineString(b.Get(3)))
	}
}

func TestScrollBufferWrap(t *testing.T) {
	var b ScrollBuffer

	// 20 pushes, capacity 12: size must clamp to 12, oldest retained is push #9 (1-indexed #9, i.e. value 8)
	for i := 0; i < 20; i++ {
		b.Push([]byte{byte('A' + i)})
	}

	if b.Size() != ScrollBufferCapacity {
		t.Fatalf("expected size %d after overflow, got %d", ScrollBufferCapacity, b.Size())
	}

	// Invariant: after N pushes without clear, get(0) == push #(N-capacity).
	want := byte('A' + (20 - ScrollBufferCapacity))
	line0 := b.Get(0)
	if got := line0.Bytes()[0]; got != want {
		t.Fatalf("get(0) after wrap: want %q, got %q", want, got)
	}
	lineLast := b.Get(ScrollBufferCapacity - 1)
	if got := lineLast.Bytes()[0]; got != byte('A'+19) {
		t.Fatalf("newest line wrong: got %q", got)
	}
}

func TestScrollBufferTruncation(t *testing.T) {
	var b ScrollBuffer
	long := make([]byte, 30)
	for i := range long {
		long[i] = 'x'
	}
	b.Push(long)

	lineTrunc := b.Get(0)
	if got := lineTrunc.Len(); got != LineWidth {
		t.Fatalf("expected truncation to %d bytes, got %d", LineWidth, got)
	}
}

func TestScrollBufferClear(t *testing.T) {
	var b ScrollBuffer
	b.Push([]byte("x"))
	b.Push([]byte("y"))
	b.Clear()
	if b.Size() != 0 {
		t.Fatalf("expected 0 after clear, got %d", b.Size())
	}
	if lineString(b.Get(0)) != "" {
		t.Fatalf("expected empty line after clear")
	}
}

func TestScrollBufferSizeGrowth(t *testing.T) {
	var b ScrollBuffer
	for n := 1; n <= 20; n++ {
		b.Push([]byte{'a'})
		want := n
		if want > ScrollBufferCapacity {
			want = ScrollBufferCapacity
		}
		if b.Size() != want {
			t.Fatalf("after %d pushes, expected size %d, got %d", n, want, b.Size())
		}
	}
}
