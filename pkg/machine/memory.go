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
)

func (mc *Machine) read(addr uint16) (uint16, error) {
	var value uint16

	if addr == DEV_KBDR {
		key, err := mc.getc()
		if err != nil {
			return 0, err
		}

		value = key
	} else {
		value = mc.State.Memory[addr]
	}

	if mc.Tracer != nil {
		mc.Tracer.Read(addr, value)
	}

	return value, nil
}

func (mc *Machine) write(addr uint16, value uint16) {
	mc.State.Memory[addr] = value

	if mc.Tracer != nil {
		mc.Tracer.Write(addr, value)
	}
}

// getc blocks for one keyboard byte. A failed read yields NUL, CR reads as LF
// and ETX ends the run.
func (mc *Machine) getc() (uint16, error) {
	if mc.Devices == nil || mc.Devices.Keyboard == nil {
		return 0, ErrNoKeyboard
	}

	// Anything the program printed must be visible before it waits on input
	if err := mc.flush(); err != nil {
		return 0, err
	}

	key, err := mc.Devices.Keyboard.ReadByte()
	if err != nil {
		key = 0
	}

	switch key {
	case KEY_CR:
		key = KEY_LF
	case KEY_ETX:
		return 0, ErrInterrupted
	}

	return uint16(key), nil
}

func (mc *Machine) putc(c byte) error {
	if mc.Devices == nil || mc.Devices.Display == nil {
		return nil
	}

	return errors.Wrap(mc.Devices.Display.WriteByte(c), f("display"))
}

// putcFlush writes c and makes it visible immediately.
func (mc *Machine) putcFlush(c byte) error {
	if err := mc.putc(c); err != nil {
		return err
	}

	return mc.flush()
}

func (mc *Machine) puts(s string) error {
	if mc.Devices == nil || mc.Devices.Display == nil {
		return nil
	}

	_, err := mc.Devices.Display.WriteString(s)

	return errors.Wrap(err, f("display"))
}

func (mc *Machine) flush() error {
	if mc.Devices == nil || mc.Devices.Display == nil {
		return nil
	}

	return errors.Wrap(mc.Devices.Display.Flush(), f("display"))
}
