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
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/lassandro/lc3vm/pkg/machine"
	"github.com/lassandro/lc3vm/pkg/trace"
	"github.com/lassandro/lc3vm/pkg/translate"
)

var f = translate.From

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func lc3vm(args []string) int {
	cfg, err := parseArgs(args, os.Stderr)

	if errors.Is(err, errHelp) {
		return machine.EXIT_SUCCESS
	} else if err != nil {
		return machine.EXIT_FAILURE
	}

	if cfg.Version {
		fmt.Println(Version())
		return machine.EXIT_SUCCESS
	}

	file, err := os.Open(cfg.Image)

	if err != nil {
		log.Println(err)
		return machine.EXIT_FAILURE
	}

	defer file.Close()

	var mc machine.Machine
	mc.Devices = &machine.DeviceHandler{
		Keyboard: bufio.NewReader(os.Stdin),
		Display:  bufio.NewWriter(os.Stdout),
	}

	img, err := mc.LoadImage(file)

	if err != nil {
		log.Println(errors.Wrap(err, cfg.Image))
		return machine.ExitCode(err)
	}

	if cfg.Dump {
		if err := img.Dump(os.Stdout); err != nil {
			log.Println(err)
			return machine.EXIT_FAILURE
		}
	}

	if cfg.Trace {
		output := os.Stderr

		if cfg.TraceFile != "" {
			output, err = os.Create(cfg.TraceFile)

			if err != nil {
				log.Println(err)
				return machine.EXIT_FAILURE
			}

			defer output.Close()
		}

		mc.Tracer = trace.New(output, cfg.TraceMem)
	}

	if cfg.Raw {
		if err := enterRawTerm(os.Stdin.Fd()); err != nil {
			log.Println(err)
			return machine.EXIT_ABORT
		}

		defer exitRawTerm(os.Stdin.Fd())
	}

	err = mc.Run()
	code := machine.ExitCode(err)

	if code != machine.EXIT_SUCCESS {
		log.Println(err)
	}

	return code
}

func main() {
	os.Exit(lc3vm(os.Args[1:]))
}
