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
	"github.com/pkg/errors"

	"github.com/lassandro/lc3vm/pkg/translate"
)

var f = translate.From

var (
	// Clean termination
	ErrHalted      = errors.New(f("halted"))
	ErrInterrupted = errors.New(f("interrupted"))

	// Instruction errors
	ErrInvalidOpcode     = errors.New(f("invalid opcode"))
	ErrUnsupportedOpcode = errors.New(f("unsupported opcode"))

	// Device errors
	ErrNoKeyboard = errors.New(f("keyboard unavailable"))

	// Image errors
	ErrOddImage   = errors.New(f("image has an odd number of bytes"))
	ErrEmptyImage = errors.New(f("image has no origin word"))
)

const (
	EXIT_SUCCESS = 0
	EXIT_FAILURE = 1
	EXIT_ABORT   = 2
)

// OpcodeError reports an instruction the machine refused to execute.
type OpcodeError struct {
	Addr        uint16
	Instruction Instruction
	Err         error
}

func (err *OpcodeError) Error() string {
	return f(
		"%v %v at %#04x (word %#04x)",
		err.Err, err.Instruction.Opcode, err.Addr, err.Instruction.Word,
	)
}

func (err *OpcodeError) Unwrap() error {
	return err.Err
}

// ExitCode maps the error that ended Run to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return EXIT_SUCCESS
	case errors.Is(err, ErrHalted), errors.Is(err, ErrInterrupted):
		return EXIT_SUCCESS
	case errors.Is(err, ErrUnsupportedOpcode), errors.Is(err, ErrNoKeyboard):
		return EXIT_ABORT
	default:
		return EXIT_FAILURE
	}
}
