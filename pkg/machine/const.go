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

const MEMORY_SIZE = 1 << 16

const (
	FLAG_POS  uint16 = 1 << 0
	FLAG_ZERO uint16 = 1 << 1
	FLAG_NEG  uint16 = 1 << 2

	FLAG_MASK uint16 = FLAG_POS | FLAG_ZERO | FLAG_NEG
)

const (
	TRAP_GETC  uint16 = 0x20
	TRAP_OUT   uint16 = 0x21
	TRAP_PUTS  uint16 = 0x22
	TRAP_IN    uint16 = 0x23
	TRAP_PUTSP uint16 = 0x24
	TRAP_HALT  uint16 = 0x25
)

const (
	MEMSPACE_USER    uint16 = 0x3000
	MEMSPACE_DEVICES uint16 = 0xFE00
)

const (
	DEV_KBSR uint16 = 0xFE00
	DEV_KBDR uint16 = 0xFE02

	// KBSR bit 15 reports a key ready to be read from KBDR.
	KBSR_READY uint16 = 1 << 15
)

// Keyboard bytes given special meaning by the input path.
const (
	KEY_ETX byte = 0x03
	KEY_LF  byte = 0x0A
	KEY_CR  byte = 0x0D
)

const (
	PROMPT_IN   = "\n> "
	NOTICE_HALT = "\nHALT\n"
)
