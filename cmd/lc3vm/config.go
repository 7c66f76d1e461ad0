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
	"flag"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const usage = "lc3vm [options] <image file>"

var (
	errHelp  = flag.ErrHelp
	errUsage = errors.New(f("missing image file"))
)

// Config defines program configuration.
type Config struct {
	Image     string // Path to the image file to load.
	Trace     bool   // Print an execution trace?
	TraceMem  bool   // Include memory bus traffic in the trace?
	TraceFile string // Write the trace here instead of stderr.
	Raw       bool   // Put an interactive stdin into raw mode?
	Dump      bool   // Print the loaded image before running it?
	Version   bool   // Print version information and exit?
}

// parseArgs parses command line arguments. Usage text and parse errors are
// written to output.
func parseArgs(args []string, output io.Writer) (*Config, error) {
	var c Config
	c.Raw = true

	flags := flag.NewFlagSet("lc3vm", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.Usage = func() {
		fmt.Fprintln(output, usage)
		flags.PrintDefaults()
	}

	flags.BoolVar(&c.Trace, "trace", c.Trace, "Print every instruction before it executes.")
	flags.BoolVar(&c.TraceMem, "trace-mem", c.TraceMem, "Include memory reads and writes in the trace. Implies -trace.")
	flags.StringVar(&c.TraceFile, "trace-file", c.TraceFile, "Write the trace to this file instead of stderr. Implies -trace.")
	flags.BoolVar(&c.Raw, "raw", c.Raw, "Put the terminal into raw mode while running.")
	flags.BoolVar(&c.Dump, "dump", c.Dump, "Print the loaded image words before running.")
	flags.BoolVar(&c.Version, "version", c.Version, "Display version information.")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if c.Version {
		return &c, nil
	}

	if flags.NArg() != 1 {
		flags.Usage()
		return nil, errUsage
	}

	c.Image = flags.Arg(0)
	c.Trace = c.Trace || c.TraceMem || c.TraceFile != ""

	return &c, nil
}
