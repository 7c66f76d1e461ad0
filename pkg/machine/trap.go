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

// trap runs the service routine selected by vector. Unknown vectors do
// nothing.
func (mc *Machine) trap(vector uint16) error {
	regs := &mc.State.Registers
	regs[7] = mc.State.Program

	switch vector {
	case TRAP_GETC:
		c, err := mc.getc()
		if err != nil {
			return err
		}

		regs[0] = c
		mc.setFlags(c)

	case TRAP_OUT:
		return mc.putc(byte(regs[0]))

	// One character per word, terminated by a zero word or the end of memory
	case TRAP_PUTS:
		for addr := int(regs[0]); addr < MEMORY_SIZE; addr++ {
			c, err := mc.read(uint16(addr))
			if err != nil {
				return err
			}

			if c == 0 {
				break
			}

			if err := mc.putcFlush(byte(c)); err != nil {
				return err
			}
		}

	case TRAP_IN:
		if err := mc.puts(PROMPT_IN); err != nil {
			return err
		}

		c, err := mc.getc()
		if err != nil {
			return err
		}

		regs[0] = c
		mc.setFlags(c)

		return mc.putc(byte(c))

	// Two characters per word, low byte first, terminated by a zero word or
	// the end of memory
	case TRAP_PUTSP:
		for addr := int(regs[0]); addr < MEMORY_SIZE; addr++ {
			word, err := mc.read(uint16(addr))
			if err != nil {
				return err
			}

			if word == 0 {
				break
			}

			for _, c := range [2]byte{byte(word), byte(word >> 8)} {
				if c == 0 {
					continue
				}

				if err := mc.putcFlush(c); err != nil {
					return err
				}
			}
		}

	case TRAP_HALT:
		if err := mc.puts(NOTICE_HALT); err != nil {
			return err
		}

		if err := mc.flush(); err != nil {
			return err
		}

		return ErrHalted
	}

	return nil
}
