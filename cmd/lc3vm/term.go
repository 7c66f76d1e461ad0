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

package main

import (
	"github.com/pkg/errors"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

var termRestore unix.Termios
var termEntered bool

// enterRawTerm switches fd to byte-at-a-time input without echo or signal
// keys, so Ctrl-C arrives as ETX and CR is passed through untranslated.
// Input that is not a terminal is left alone.
func enterRawTerm(fd uintptr) error {
	if !term.IsTerminal(int(fd)) {
		return nil
	}

	if err := termios.Tcgetattr(fd, &termRestore); err != nil {
		return errors.Wrap(err, f("reading terminal state"))
	}

	termstate := termRestore

	termstate.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.INLCR | unix.ICRNL | unix.IXON
	termstate.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.IEXTEN | unix.ISIG
	termstate.Cflag &^= unix.CSIZE | unix.PARENB
	termstate.Cflag |= unix.CS8

	// Block until at least one byte is available
	termstate.Cc[unix.VMIN] = 1
	termstate.Cc[unix.VTIME] = 0

	if err := termios.Tcsetattr(fd, termios.TCSANOW, &termstate); err != nil {
		return errors.Wrap(err, f("entering raw mode"))
	}

	termEntered = true

	return nil
}

func exitRawTerm(fd uintptr) {
	if !termEntered {
		return
	}

	if err := termios.Tcsetattr(fd, termios.TCSANOW, &termRestore); err != nil {
		panic(err)
	}

	termEntered = false
}
