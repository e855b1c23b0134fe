// Package ports wraps the VM's two blocking byte streams — the source for
// the `in` instruction and the sink for `out` — in buffered readers and
// writers, the way the teacher wraps os.Stdin in a bufio.Reader at the
// point commands are read rather than issuing a syscall per byte.
package ports

import (
	"bufio"
	"io"
)

// Ports holds the machine's input and output byte streams.
type Ports struct {
	in  *bufio.Reader
	out *bufio.Writer
}

// New builds Ports around the given reader and writer.
func New(in io.Reader, out io.Writer) *Ports {
	return &Ports{
		in:  bufio.NewReader(in),
		out: bufio.NewWriter(out),
	}
}

// ReadByte blocks for exactly one byte from the input stream.
func (p *Ports) ReadByte() (byte, error) {
	return p.in.ReadByte()
}

// WriteByte writes exactly one byte to the output stream.
func (p *Ports) WriteByte(b byte) error {
	return p.out.WriteByte(b)
}

// Flush pushes any buffered output to the underlying writer. Called on
// HALT and on any fatal exit so partial output is never lost.
func (p *Ports) Flush() error {
	return p.out.Flush()
}
