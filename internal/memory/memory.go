// Package memory implements the Synacor machine's word-addressable store:
// 32,768 words, all zero until an image is loaded into it.
package memory

const (
	// Size is the number of addressable words.
	Size = 32768
	// MaxAddr is the highest valid word address.
	MaxAddr = Size - 1
)

// Memory is a fixed array of words, addressable 0..MaxAddr.
type Memory struct {
	words [Size]uint16
}

// New returns memory with every word initialized to zero.
func New() *Memory {
	return &Memory{}
}

// Read returns the word stored at addr. Callers must keep addr in range;
// Memory performs no bounds checking of its own, matching the teacher's
// low-level GetMemory/SetMemory pair — range checking is the fetch loop's
// job (see internal/vm), not the storage layer's.
func (m *Memory) Read(addr uint16) uint16 {
	return m.words[addr]
}

// Write stores value at addr.
func (m *Memory) Write(addr uint16, value uint16) {
	m.words[addr] = value
}
