// Package loader reads a Synacor program image into memory.
package loader

import (
	"errors"
	"io"

	"github.com/synacorvm/synacorvm/internal/memory"
	"github.com/synacorvm/synacorvm/internal/vmerr"
)

// Load reads little-endian 16-bit words from r into mem starting at
// address 0. An odd number of trailing bytes, or an image longer than
// memory.Size words, is rejected as an image-format fault. Addresses
// beyond the image are left zero.
func Load(r io.Reader, mem *memory.Memory) error {
	var lo, hi [1]byte
	addr := 0
	for {
		n, err := io.ReadFull(r, lo[:])
		if n == 0 && errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return vmerr.New(vmerr.IO, "read error: %v", err)
		}

		if _, err := io.ReadFull(r, hi[:]); err != nil {
			return vmerr.New(vmerr.ImageFormat, "truncated image: odd byte count")
		}

		if addr >= memory.Size {
			return vmerr.New(vmerr.ImageFormat, "image exceeds %d words", memory.Size)
		}

		mem.Write(uint16(addr), uint16(lo[0])|uint16(hi[0])<<8)
		addr++
	}
}
