package vm

// Opcode numbers, matching the Synacor architecture exactly.
const (
	OpHalt Opcode = iota
	OpSet
	OpPush
	OpPop
	OpEq
	OpGt
	OpJmp
	OpJt
	OpJf
	OpAdd
	OpMult
	OpMod
	OpAnd
	OpOr
	OpNot
	OpRmem
	OpWmem
	OpCall
	OpRet
	OpOut
	OpIn
	OpNoop

	opCount
)

// Opcode identifies one of the 22 defined instructions.
type Opcode uint16

// arity is the single source of truth for how many operand words follow
// each opcode in memory. Handlers never re-derive this.
var arity = [opCount]int{
	OpHalt: 0,
	OpSet:  2,
	OpPush: 1,
	OpPop:  1,
	OpEq:   3,
	OpGt:   3,
	OpJmp:  1,
	OpJt:   2,
	OpJf:   2,
	OpAdd:  3,
	OpMult: 3,
	OpMod:  3,
	OpAnd:  3,
	OpOr:   3,
	OpNot:  2,
	OpRmem: 2,
	OpWmem: 2,
	OpCall: 1,
	OpRet:  0,
	OpOut:  1,
	OpIn:   1,
	OpNoop: 0,
}

// mnemonics names each opcode for the instruction tracer and for fault
// messages.
var mnemonics = [opCount]string{
	OpHalt: "halt",
	OpSet:  "set",
	OpPush: "push",
	OpPop:  "pop",
	OpEq:   "eq",
	OpGt:   "gt",
	OpJmp:  "jmp",
	OpJt:   "jt",
	OpJf:   "jf",
	OpAdd:  "add",
	OpMult: "mult",
	OpMod:  "mod",
	OpAnd:  "and",
	OpOr:   "or",
	OpNot:  "not",
	OpRmem: "rmem",
	OpWmem: "wmem",
	OpCall: "call",
	OpRet:  "ret",
	OpOut:  "out",
	OpIn:   "in",
	OpNoop: "noop",
}
