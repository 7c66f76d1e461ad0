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

package trace_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lassandro/lc3vm/pkg/machine"
	"github.com/lassandro/lc3vm/pkg/trace"
)

func newMachine(tr *trace.Tracer, words map[uint16]uint16) *machine.Machine {
	mc := &machine.Machine{Tracer: tr}
	mc.State.Program = 0x3000

	for addr, word := range words {
		mc.State.Memory[addr] = word
	}

	return mc
}

func TestTraceStep(t *testing.T) {
	var buf bytes.Buffer

	mc := newMachine(trace.New(&buf, false), map[uint16]uint16{
		// ADD R0 R0 #5
		0x3000: 0b0001_000_000_1_00101,
		// LD R1 #0
		0x3001: 0b0010_001_000000000,
	})

	require.NoError(t, mc.Step())
	require.NoError(t, mc.Step())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], "[0x3000] ADD")
	assert.Contains(t, lines[0], "R0=0x0000")
	assert.Contains(t, lines[0], "---")

	assert.Contains(t, lines[1], "[0x3001] LD")
	assert.Contains(t, lines[1], "R0=0x0005")
	assert.Contains(t, lines[1], "--p")
}

func TestTraceMemory(t *testing.T) {
	var buf bytes.Buffer

	mc := newMachine(trace.New(&buf, true), map[uint16]uint16{
		// ST R2 #1
		0x3000: 0b0011_010_000000001,
		// LDR R3 R4 #0
		0x3001: 0b0110_011_100_000000,
	})
	mc.State.Registers[2] = 0xBEEF
	mc.State.Registers[4] = 0x3002

	require.NoError(t, mc.Step())
	require.NoError(t, mc.Step())

	out := buf.String()

	assert.Contains(t, out, "write [0x3002] <- 0xbeef")
	assert.Contains(t, out, "read  [0x3002] -> 0xbeef")
	assert.Equal(t, uint16(0xBEEF), mc.State.Registers[3])
}

func TestTraceInvalid(t *testing.T) {
	var buf bytes.Buffer

	mc := newMachine(trace.New(&buf, false), map[uint16]uint16{
		0x3000: 0b1101_000000000000,
	})

	err := mc.Step()

	assert.ErrorIs(t, err, machine.ErrInvalidOpcode)
	assert.Contains(t, buf.String(), "INVALID")
}
