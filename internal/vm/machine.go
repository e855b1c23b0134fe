// Package vm implements the Synacor instruction-fetch/decode/execute
// loop: the interpreter core described by the architecture. All mutable
// state — registers, stack, memory, program counter — is collected into
// one owned Machine value, the way the teacher collects CPU state into a
// single cpuState/CPU struct rather than scattering it across package
// globals.
package vm

import (
	"github.com/synacorvm/synacorvm/internal/memory"
	"github.com/synacorvm/synacorvm/internal/ports"
	"github.com/synacorvm/synacorvm/util/trace"
)

const (
	numRegisters = 8
	// registerBase is the first word value that denotes a register
	// reference; registerBase..registerBase+7 name R0..R7.
	registerBase = 32768
	valueMask    = 0x7FFF
	// memWordModulus is 2^15, the modulus for arithmetic results.
	memWordModulus = 32768
)

type opHandler func(m *Machine, ops []uint16) error

// Machine holds all state owned by one interpreter run.
type Machine struct {
	mem    *memory.Memory
	reg    [numRegisters]uint16
	stack  []uint16
	pc     uint16
	halted bool

	ports  *ports.Ports
	tracer *trace.Tracer
	table  [opCount]opHandler
}

// New builds a Machine over mem, ready to execute from address 0.
// io may be nil for machines that never execute `in`/`out` (e.g. tests
// that only exercise arithmetic); tracer may be nil to disable tracing.
func New(mem *memory.Memory, io *ports.Ports, tracer *trace.Tracer) *Machine {
	m := &Machine{mem: mem, ports: io, tracer: tracer}
	m.table = buildTable()
	return m
}

// Halted reports whether the machine has executed HALT or returned with
// an empty stack.
func (m *Machine) Halted() bool {
	return m.halted
}

// PC returns the current program counter, mostly useful for tests.
func (m *Machine) PC() uint16 {
	return m.pc
}

// Register returns the current value of R[i].
func (m *Machine) Register(i int) uint16 {
	return m.reg[i]
}

// SetRegister sets R[i], for test setup.
func (m *Machine) SetRegister(i int, v uint16) {
	m.reg[i] = v
}

// Stack returns a snapshot of the stack, bottom first, for tests.
func (m *Machine) Stack() []uint16 {
	out := make([]uint16, len(m.stack))
	copy(out, m.stack)
	return out
}

// SetPC sets the program counter, for test setup.
func (m *Machine) SetPC(pc uint16) {
	m.pc = pc
}
