package vm

import "github.com/synacorvm/synacorvm/internal/vmerr"

// resolveValue implements resolve_value: a literal evaluates to itself, a
// register reference evaluates to the register's current contents, and
// anything above 32775 is an invalid operand.
func (m *Machine) resolveValue(w uint16) (uint16, error) {
	switch {
	case w <= 32767:
		return w, nil
	case w <= 32775:
		return m.reg[w-registerBase], nil
	default:
		return 0, vmerr.New(vmerr.InvalidOperand, "operand %d out of range", w)
	}
}

// resolveRegister implements resolve_register: only a register reference
// is accepted, used for destination operands, which must never be
// pre-resolved to a value.
func resolveRegister(w uint16) (int, error) {
	if w >= registerBase && w <= registerBase+numRegisters-1 {
		return int(w - registerBase), nil
	}
	return 0, vmerr.New(vmerr.ExpectedRegister, "expected register, got %d", w)
}
