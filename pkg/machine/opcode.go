// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package machine

import (
	"github.com/lassandro/lc3vm/pkg/encoding"
	"github.com/lassandro/lc3vm/pkg/translate"
)

// Opcode is the instruction class held in the top four bits of a word.
type Opcode uint8

const (
	OP_BR   Opcode = 0b0000
	OP_ADD  Opcode = 0b0001
	OP_LD   Opcode = 0b0010
	OP_ST   Opcode = 0b0011
	OP_JSR  Opcode = 0b0100
	OP_AND  Opcode = 0b0101
	OP_LDR  Opcode = 0b0110
	OP_STR  Opcode = 0b0111
	OP_RTI  Opcode = 0b1000
	OP_NOT  Opcode = 0b1001
	OP_LDI  Opcode = 0b1010
	OP_STI  Opcode = 0b1011
	OP_JMP  Opcode = 0b1100
	OP_LEA  Opcode = 0b1110
	OP_TRAP Opcode = 0b1111

	// Reserved, never executable
	OP_INVALID Opcode = 0b1101
)

var opcodeNames = [16]string{
	OP_BR:      "BR",
	OP_ADD:     "ADD",
	OP_LD:      "LD",
	OP_ST:      "ST",
	OP_JSR:     "JSR",
	OP_AND:     "AND",
	OP_LDR:     "LDR",
	OP_STR:     "STR",
	OP_RTI:     "RTI",
	OP_NOT:     "NOT",
	OP_LDI:     "LDI",
	OP_STI:     "STI",
	OP_JMP:     "JMP",
	OP_INVALID: "INVALID",
	OP_LEA:     "LEA",
	OP_TRAP:    "TRAP",
}

func (op Opcode) String() string {
	if int(op) < len(opcodeNames) {
		return opcodeNames[op]
	}

	return translate.From("Opcode(%#x)", uint8(op))
}

// Instruction is a fetched word split into its opcode and the two register
// fields shared by most formats. Opcode specific fields are read from Word.
type Instruction struct {
	Word   uint16
	Opcode Opcode
	A      uint16 // bits 11-9
	B      uint16 // bits 8-6
}

// Decode splits word into an Instruction. Every bit pattern yields an
// Instruction; the reserved pattern also yields ErrInvalidOpcode.
func Decode(word uint16) (Instruction, error) {
	instr := Instruction{
		Word:   word,
		Opcode: Opcode(encoding.Field(word, 12, 4)),
		A:      encoding.Field(word, 9, 3),
		B:      encoding.Field(word, 6, 3),
	}

	if instr.Opcode == OP_INVALID {
		return instr, ErrInvalidOpcode
	}

	return instr, nil
}

func (instr Instruction) String() string {
	return translate.From(
		"%-7s a=%d b=%d word=%#04x", instr.Opcode, instr.A, instr.B, instr.Word,
	)
}

// Immediate mode flag of ADD and AND (bit 5).
func (instr Instruction) immediate() bool {
	return encoding.Field(instr.Word, 5, 1) == 1
}

// Second source register of ADD and AND (bits 2-0).
func (instr Instruction) src2() uint16 {
	return encoding.Field(instr.Word, 0, 3)
}

func (instr Instruction) imm5() uint16 {
	return encoding.SignExtend(instr.Word, 5)
}

func (instr Instruction) offset6() uint16 {
	return encoding.SignExtend(instr.Word, 6)
}

func (instr Instruction) offset9() uint16 {
	return encoding.SignExtend(instr.Word, 9)
}

func (instr Instruction) offset11() uint16 {
	return encoding.SignExtend(instr.Word, 11)
}

func (instr Instruction) vector() uint16 {
	return encoding.ZeroExtend(instr.Word, 8)
}
