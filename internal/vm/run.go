package vm

import (
	"github.com/synacorvm/synacorvm/internal/memory"
	"github.com/synacorvm/synacorvm/internal/vmerr"
)

// Run executes instructions until HALT, a clean RET-on-empty-stack exit,
// or a fatal Fault. It returns nil on clean termination.
func (m *Machine) Run() error {
	for !m.halted {
		if err := m.step(); err != nil {
			return err
		}
	}
	if m.ports != nil {
		if err := m.ports.Flush(); err != nil {
			return vmerr.New(vmerr.IO, "flush failed: %v", err)
		}
	}
	return nil
}

// step fetches, decodes, and dispatches exactly one instruction.
func (m *Machine) step() error {
	opWord, ok := m.fetch()
	if !ok {
		// PC ran off the top of addressable memory fetching the
		// opcode itself: treat it as reaching the end of the program.
		m.halted = true
		return nil
	}
	if opWord >= uint16(opCount) {
		return vmerr.New(vmerr.InvalidOpcode, "opcode %d out of range", opWord)
	}
	op := Opcode(opWord)

	k := arity[op]
	operands := make([]uint16, k)
	for i := 0; i < k; i++ {
		w, ok := m.fetch()
		if !ok {
			m.halted = true
			return nil
		}
		operands[i] = w
	}

	m.tracer.Instr(m.pc-uint16(k)-1, mnemonics[op], operands)

	return m.table[op](m, operands)
}

// fetch reads the word at the current PC and advances PC by one. ok is
// false when PC has run past the addressable memory — reached by
// sequential fetch when an instruction or its operands end at the last
// address — and per the architecture that is treated as a clean end of
// program rather than a fault.
func (m *Machine) fetch() (word uint16, ok bool) {
	if m.pc > memory.MaxAddr {
		return 0, false
	}
	w := m.mem.Read(m.pc)
	m.pc++
	return w, true
}
