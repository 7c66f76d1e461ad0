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

// Package trace prints an execution trace of a running machine.
package trace

import (
	"io"
	"log"
	"strings"

	"github.com/lassandro/lc3vm/pkg/machine"
	"github.com/lassandro/lc3vm/pkg/translate"
)

var f = translate.From

// Tracer logs every instruction before it executes and, when Memory is set,
// every memory bus access.
type Tracer struct {
	Logger *log.Logger
	Memory bool
}

// New creates a Tracer writing to w.
func New(w io.Writer, memory bool) *Tracer {
	return &Tracer{
		Logger: log.New(w, "", 0),
		Memory: memory,
	}
}

func (tr *Tracer) Step(state *machine.MachineState, instr machine.Instruction) {
	var sb strings.Builder

	sb.WriteString(f("[%#04x] %v |", state.Program, instr))

	for i, reg := range state.Registers {
		sb.WriteString(f(" R%d=%#04x", i, reg))
	}

	sb.WriteString(f(" PSR=%#04x %s", state.Procstat, conditionString(state.Condition())))

	tr.Logger.Print(sb.String())
}

func (tr *Tracer) Read(addr uint16, value uint16) {
	if tr.Memory {
		tr.Logger.Print(f("    read  [%#04x] -> %#04x", addr, value))
	}
}

func (tr *Tracer) Write(addr uint16, value uint16) {
	if tr.Memory {
		tr.Logger.Print(f("    write [%#04x] <- %#04x", addr, value))
	}
}

func conditionString(cond uint16) string {
	flags := []byte("---")

	if cond&machine.FLAG_NEG != 0 {
		flags[0] = 'n'
	}

	if cond&machine.FLAG_ZERO != 0 {
		flags[1] = 'z'
	}

	if cond&machine.FLAG_POS != 0 {
		flags[2] = 'p'
	}

	return string(flags)
}
