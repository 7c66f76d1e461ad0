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
	"bufio"
	"io"
)

// DeviceHandler connects the machine to the outside world. Keyboard supplies
// one blocking byte per call; Display receives program output.
type DeviceHandler struct {
	Keyboard io.ByteReader
	Display  *bufio.Writer
}

type MachineState struct {
	Registers [8]uint16
	Program   uint16
	Procstat  uint16
	Memory    [MEMORY_SIZE]uint16
}

// MachineTracer observes execution. Step is called with the decoded
// instruction before it executes; Read and Write report memory bus traffic.
type MachineTracer interface {
	Step(state *MachineState, instr Instruction)
	Read(addr uint16, value uint16)
	Write(addr uint16, value uint16)
}

type Machine struct {
	Devices *DeviceHandler
	State   MachineState
	Tracer  MachineTracer
}
