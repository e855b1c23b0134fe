package vm

import "github.com/synacorvm/synacorvm/internal/vmerr"

// buildTable returns the opcode -> handler dispatch table. Arity for each
// entry is looked up separately from the arity table in opcodes.go; a
// handler never re-derives how many operands it was given.
func buildTable() [opCount]opHandler {
	return [opCount]opHandler{
		OpHalt: opHalt,
		OpSet:  opSet,
		OpPush: opPush,
		OpPop:  opPop,
		OpEq:   opEq,
		OpGt:   opGt,
		OpJmp:  opJmp,
		OpJt:   opJt,
		OpJf:   opJf,
		OpAdd:  opAdd,
		OpMult: opMult,
		OpMod:  opMod,
		OpAnd:  opAnd,
		OpOr:   opOr,
		OpNot:  opNot,
		OpRmem: opRmem,
		OpWmem: opWmem,
		OpCall: opCall,
		OpRet:  opRet,
		OpOut:  opOut,
		OpIn:   opIn,
		OpNoop: opNoop,
	}
}

func opHalt(m *Machine, _ []uint16) error {
	m.halted = true
	return nil
}

func opSet(m *Machine, ops []uint16) error {
	r, err := resolveRegister(ops[0])
	if err != nil {
		return err
	}
	v, err := m.resolveValue(ops[1])
	if err != nil {
		return err
	}
	m.reg[r] = v
	return nil
}

func opPush(m *Machine, ops []uint16) error {
	v, err := m.resolveValue(ops[0])
	if err != nil {
		return err
	}
	m.stack = append(m.stack, v)
	return nil
}

func opPop(m *Machine, ops []uint16) error {
	v, err := m.pop()
	if err != nil {
		return err
	}
	r, err := resolveRegister(ops[0])
	if err != nil {
		return err
	}
	m.reg[r] = v
	return nil
}

func opEq(m *Machine, ops []uint16) error {
	return m.setCompare(ops, func(b, c uint16) bool { return b == c })
}

func opGt(m *Machine, ops []uint16) error {
	return m.setCompare(ops, func(b, c uint16) bool { return b > c })
}

func (m *Machine) setCompare(ops []uint16, cmp func(b, c uint16) bool) error {
	r, err := resolveRegister(ops[0])
	if err != nil {
		return err
	}
	b, err := m.resolveValue(ops[1])
	if err != nil {
		return err
	}
	c, err := m.resolveValue(ops[2])
	if err != nil {
		return err
	}
	if cmp(b, c) {
		m.reg[r] = 1
	} else {
		m.reg[r] = 0
	}
	return nil
}

func opJmp(m *Machine, ops []uint16) error {
	v, err := m.resolveValue(ops[0])
	if err != nil {
		return err
	}
	m.pc = v
	return nil
}

func opJt(m *Machine, ops []uint16) error {
	return m.jumpIf(ops, func(v uint16) bool { return v != 0 })
}

func opJf(m *Machine, ops []uint16) error {
	return m.jumpIf(ops, func(v uint16) bool { return v == 0 })
}

func (m *Machine) jumpIf(ops []uint16, take func(uint16) bool) error {
	a, err := m.resolveValue(ops[0])
	if err != nil {
		return err
	}
	b, err := m.resolveValue(ops[1])
	if err != nil {
		return err
	}
	if take(a) {
		m.pc = b
	}
	return nil
}

func opAdd(m *Machine, ops []uint16) error {
	return m.setArith(ops, func(b, c uint16) (uint16, error) {
		return uint16((uint32(b) + uint32(c)) % memWordModulus), nil
	})
}

func opMult(m *Machine, ops []uint16) error {
	return m.setArith(ops, func(b, c uint16) (uint16, error) {
		return uint16((uint32(b) * uint32(c)) % memWordModulus), nil
	})
}

func opMod(m *Machine, ops []uint16) error {
	return m.setArith(ops, func(b, c uint16) (uint16, error) {
		if c == 0 {
			return 0, vmerr.New(vmerr.DivByZero, "mod by zero")
		}
		return b % c, nil
	})
}

func opAnd(m *Machine, ops []uint16) error {
	return m.setArith(ops, func(b, c uint16) (uint16, error) { return b & c, nil })
}

func opOr(m *Machine, ops []uint16) error {
	return m.setArith(ops, func(b, c uint16) (uint16, error) { return b | c, nil })
}

func (m *Machine) setArith(ops []uint16, fn func(b, c uint16) (uint16, error)) error {
	r, err := resolveRegister(ops[0])
	if err != nil {
		return err
	}
	b, err := m.resolveValue(ops[1])
	if err != nil {
		return err
	}
	c, err := m.resolveValue(ops[2])
	if err != nil {
		return err
	}
	v, err := fn(b, c)
	if err != nil {
		return err
	}
	m.reg[r] = v
	return nil
}

func opNot(m *Machine, ops []uint16) error {
	r, err := resolveRegister(ops[0])
	if err != nil {
		return err
	}
	b, err := m.resolveValue(ops[1])
	if err != nil {
		return err
	}
	m.reg[r] = (^b) & valueMask
	return nil
}

func opRmem(m *Machine, ops []uint16) error {
	r, err := resolveRegister(ops[0])
	if err != nil {
		return err
	}
	addr, err := m.resolveValue(ops[1])
	if err != nil {
		return err
	}
	m.reg[r] = m.mem.Read(addr)
	return nil
}

func opWmem(m *Machine, ops []uint16) error {
	addr, err := m.resolveValue(ops[0])
	if err != nil {
		return err
	}
	v, err := m.resolveValue(ops[1])
	if err != nil {
		return err
	}
	m.mem.Write(addr, v)
	return nil
}

func opCall(m *Machine, ops []uint16) error {
	target, err := m.resolveValue(ops[0])
	if err != nil {
		return err
	}
	m.stack = append(m.stack, m.pc)
	m.pc = target
	return nil
}

func opRet(m *Machine, _ []uint16) error {
	v, err := m.pop()
	if err != nil {
		// Per the architecture, RET on an empty stack exits cleanly
		// rather than faulting like POP does.
		m.halted = true
		return nil
	}
	m.pc = v
	return nil
}

func opOut(m *Machine, ops []uint16) error {
	v, err := m.resolveValue(ops[0])
	if err != nil {
		return err
	}
	if m.ports == nil {
		return nil
	}
	if err := m.ports.WriteByte(byte(v & 0xFF)); err != nil {
		return vmerr.New(vmerr.IO, "write failed: %v", err)
	}
	return nil
}

func opIn(m *Machine, ops []uint16) error {
	r, err := resolveRegister(ops[0])
	if err != nil {
		return err
	}
	if m.ports == nil {
		return vmerr.New(vmerr.IO, "no input stream configured")
	}
	b, err := m.ports.ReadByte()
	if err != nil {
		return vmerr.New(vmerr.IO, "read failed: %v", err)
	}
	m.reg[r] = uint16(b)
	return nil
}

func opNoop(_ *Machine, _ []uint16) error {
	return nil
}

func (m *Machine) pop() (uint16, error) {
	if len(m.stack) == 0 {
		return 0, vmerr.New(vmerr.StackUnderflow, "pop on empty stack")
	}
	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return v, nil
}
