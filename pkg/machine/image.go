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
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Image is a loadable program: big-endian words placed at Origin onwards.
type Image struct {
	Origin uint16
	Words  []uint16
}

// ParseImage reads an image file. The first word is the origin, the rest are
// the contents.
func ParseImage(reader io.Reader) (*Image, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, f("reading image"))
	}

	if len(data)%2 != 0 {
		return nil, ErrOddImage
	}

	if len(data) < 2 {
		return nil, ErrEmptyImage
	}

	img := &Image{
		Origin: binary.BigEndian.Uint16(data),
		Words:  make([]uint16, 0, len(data)/2-1),
	}

	for i := 2; i < len(data); i += 2 {
		img.Words = append(img.Words, binary.BigEndian.Uint16(data[i:]))
	}

	return img, nil
}

// Dump writes the image words, eight to a line, prefixed by their address.
func (img *Image) Dump(w io.Writer) error {
	addr := img.Origin

	for i, word := range img.Words {
		var err error

		switch {
		case i%8 == 0 && i > 0:
			_, err = io.WriteString(w, f("\n[%#04x] %#04x", addr, word))
		case i%8 == 0:
			_, err = io.WriteString(w, f("[%#04x] %#04x", addr, word))
		default:
			_, err = io.WriteString(w, f(" %#04x", word))
		}

		if err != nil {
			return errors.Wrap(err, f("dumping image"))
		}

		addr++
	}

	_, err := io.WriteString(w, "\n")

	return errors.Wrap(err, f("dumping image"))
}

// Load resets the machine and places img in memory. The program counter
// starts at the origin and the image wraps past 0xFFFF.
func (mc *Machine) Load(img *Image) {
	mc.State.Reset()

	addr := img.Origin
	for _, word := range img.Words {
		mc.State.Memory[addr] = word
		addr++
	}

	mc.State.Program = img.Origin
}

// LoadImage parses an image from reader and loads it.
func (mc *Machine) LoadImage(reader io.Reader) (*Image, error) {
	img, err := ParseImage(reader)
	if err != nil {
		return nil, err
	}

	mc.Load(img)

	return img, nil
}
