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

// Reset zeroes registers, status and memory.
func (mc *MachineState) Reset() {
	mc.Registers = [8]uint16{}
	mc.Memory = [MEMORY_SIZE]uint16{}
	mc.Program = 0x0000
	mc.Procstat = 0x0000
}

// Condition returns the N/Z/P bits of the status register.
func (mc *MachineState) Condition() uint16 {
	return mc.Procstat & FLAG_MASK
}

// setFlags replaces the condition bits so exactly one of N, Z, P describes
// value. The remaining status bits are preserved.
func (mc *Machine) setFlags(value uint16) {
	mc.State.Procstat &= ^FLAG_MASK

	switch {
	case value == 0:
		mc.State.Procstat |= FLAG_ZERO
	case value>>15 == 1:
		mc.State.Procstat |= FLAG_NEG
	default:
		mc.State.Procstat |= FLAG_POS
	}
}

// Step fetches, decodes and executes one instruction. It returns a non-nil
// error once the machine has stopped; ErrHalted and ErrInterrupted mark a
// clean stop.
func (mc *Machine) Step() error {
	addr := mc.State.Program
	instr, err := Decode(mc.State.Memory[addr])

	if mc.Tracer != nil {
		mc.Tracer.Step(&mc.State, instr)
	}

	if err != nil {
		return &OpcodeError{Addr: addr, Instruction: instr, Err: err}
	}

	mc.State.Program++

	regs := &mc.State.Registers

	switch instr.Opcode {
	// ADD  |0001    |DR   |SR1  |0|00 |SR2   | Register  addition
	// ADD  |0001    |DR   |SR1  |1|imm5      | Immediate addition
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_ADD:
		if instr.immediate() {
			regs[instr.A] = regs[instr.B] + instr.imm5()
		} else {
			regs[instr.A] = regs[instr.B] + regs[instr.src2()]
		}

		mc.setFlags(regs[instr.A])

	// AND  |0101    |DR   |SR1  |0|00 |SR2   | Register  bitwise
	// AND  |0101    |DR   |SR1  |1|imm5      | Immediate bitwise
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_AND:
		if instr.immediate() {
			regs[instr.A] = regs[instr.B] & instr.imm5()
		} else {
			regs[instr.A] = regs[instr.B] & regs[instr.src2()]
		}

		mc.setFlags(regs[instr.A])

	// BR   |0000    |N|Z|P|PCoffset9         | Conditional branch
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_BR:
		if instr.A&mc.State.Condition() != 0 {
			mc.State.Program += instr.offset9()
		}

	// JMP  |1100    |000  |BaseR|000000      | Jump
	// RET  |1100    |000  |111  |000000      | Return
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_JMP:
		mc.State.Program = regs[instr.B]

	// JSR  |0100    |1|PCoffset11            | Jump to subroutine
	// JSRR |0100    |0|00 |BaseR|000000      | Jump to subroutine register
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_JSR:
		// R7 is written first, JSRR R7 lands on the return address
		regs[7] = mc.State.Program

		if (instr.Word>>11)&0x1 == 1 {
			mc.State.Program += instr.offset11()
		} else {
			mc.State.Program = regs[instr.B]
		}

	// LD   |0010    |DR   |PCoffset9         | Load
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_LD:
		value, err := mc.read(mc.State.Program + instr.offset9())
		if err != nil {
			return err
		}

		regs[instr.A] = value
		mc.setFlags(value)

	// LDI  |1010    |DR   |PCoffset9         | Load indirect
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_LDI:
		ptr, err := mc.read(mc.State.Program + instr.offset9())
		if err != nil {
			return err
		}

		value, err := mc.read(ptr)
		if err != nil {
			return err
		}

		regs[instr.A] = value
		mc.setFlags(value)

	// LDR  |0110    |DR   |BaseR|offset6     | Load base+offset
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_LDR:
		value, err := mc.read(regs[instr.B] + instr.offset6())
		if err != nil {
			return err
		}

		regs[instr.A] = value
		mc.setFlags(value)

	// LEA  |1110    |DR   |PCoffset9         | Load effective address
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_LEA:
		regs[instr.A] = mc.State.Program + instr.offset9()

		mc.setFlags(regs[instr.A])

	// NOT  |1001    |DR   |SR   |1|11111     | Bitwise complement
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_NOT:
		regs[instr.A] = ^regs[instr.B]

		mc.setFlags(regs[instr.A])

	// RTI  |1000    |000000000000            | Return from interrupt
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_RTI:
		// No privilege or interrupt model to return into
		mc.State.Program = addr
		return &OpcodeError{Addr: addr, Instruction: instr, Err: ErrUnsupportedOpcode}

	// ST   |0011    |SR   |PCoffset9         | Store
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_ST:
		mc.write(mc.State.Program+instr.offset9(), regs[instr.A])

	// STI  |1011    |SR   |PCoffset9         | Store indirect
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_STI:
		ptr, err := mc.read(mc.State.Program + instr.offset9())
		if err != nil {
			return err
		}

		mc.write(ptr, regs[instr.A])

	// STR  |0111    |SR   |BaseR|offset6     | Store base+offset
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_STR:
		mc.write(regs[instr.B]+instr.offset6(), regs[instr.A])

	// TRAP |1111    |0000   |trapvect8       | System call
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_TRAP:
		return mc.trap(instr.vector())
	}

	return nil
}

// Run executes instructions until the machine stops and returns the reason.
// Display output is flushed before returning.
func (mc *Machine) Run() error {
	mc.State.Memory[DEV_KBSR] = KBSR_READY

	var err error
	for err == nil {
		err = mc.Step()
	}

	if ferr := mc.flush(); ferr != nil && ExitCode(err) == EXIT_SUCCESS {
		return ferr
	}

	return err
}
