package memory

import "testing"

func TestNewMemoryIsZeroed(t *testing.T) {
	m := New()
	for _, addr := range []uint16{0, 1, MaxAddr} {
		if got := m.Read(addr); got != 0 {
			t.Fatalf("Read(%d) = %d, want 0", addr, got)
		}
	}
}

func TestWriteRead(t *testing.T) {
	m := New()
	m.Write(42, 12345)
	if got := m.Read(42); got != 12345 {
		t.Fatalf("Read(42) = %d, want 12345", got)
	}
	if got := m.Read(0); got != 0 {
		t.Fatalf("Read(0) = %d, want 0 (unaffected by write at 42)", got)
	}
}

func TestBoundaryAddress(t *testing.T) {
	m := New()
	m.Write(MaxAddr, 7)
	if got := m.Read(MaxAddr); got != 7 {
		t.Fatalf("Read(MaxAddr) = %d, want 7", got)
	}
}
