package loader

import (
	"bytes"
	"testing"

	"github.com/synacorvm/synacorvm/internal/memory"
	"github.com/synacorvm/synacorvm/internal/vmerr"
)

func TestLoadBasicImage(t *testing.T) {
	img := []byte{1, 0, 2, 0, 3, 0}
	mem := memory.New()
	if err := Load(bytes.NewReader(img), mem); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := []uint16{1, 2, 3}
	for addr, w := range want {
		if got := mem.Read(uint16(addr)); got != w {
			t.Fatalf("mem[%d] = %d, want %d", addr, got, w)
		}
	}
	if got := mem.Read(3); got != 0 {
		t.Fatalf("mem[3] = %d, want 0 (unused, zero-padded)", got)
	}
}

func TestLoadEmptyImageIsLegal(t *testing.T) {
	mem := memory.New()
	if err := Load(bytes.NewReader(nil), mem); err != nil {
		t.Fatalf("Load returned error for empty image: %v", err)
	}
}

func TestLoadOddByteCountRejected(t *testing.T) {
	img := []byte{1, 0, 2}
	mem := memory.New()
	err := Load(bytes.NewReader(img), mem)
	fault, ok := err.(*vmerr.Fault)
	if !ok || fault.Kind != vmerr.ImageFormat {
		t.Fatalf("expected ImageFormat fault for odd byte count, got %v", err)
	}
}

func TestLoadOversizeImageRejected(t *testing.T) {
	img := make([]byte, (memory.Size+1)*2)
	mem := memory.New()
	err := Load(bytes.NewReader(img), mem)
	fault, ok := err.(*vmerr.Fault)
	if !ok || fault.Kind != vmerr.ImageFormat {
		t.Fatalf("expected ImageFormat fault for oversize image, got %v", err)
	}
}

func TestLoadLittleEndianWordOrder(t *testing.T) {
	img := []byte{0x34, 0x12}
	mem := memory.New()
	if err := Load(bytes.NewReader(img), mem); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := mem.Read(0); got != 0x1234 {
		t.Fatalf("mem[0] = %#x, want 0x1234", got)
	}
}
