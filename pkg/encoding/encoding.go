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

// Package encoding holds the bit-field helpers shared by the decoder and the
// executor.
package encoding

// Mask returns a word with the low bitcount bits set.
func Mask(bitcount uint16) uint16 {
	return uint16((uint32(1) << bitcount) - 1)
}

// Field extracts bitcount bits of value starting at bit shift.
func Field(value uint16, shift uint16, bitcount uint16) uint16 {
	return (value >> shift) & Mask(bitcount)
}

// SignExtend widens the low bitcount bits of value to a full word, treating
// bit bitcount-1 as the sign. Bits above the field are discarded first.
func SignExtend(value uint16, bitcount uint16) uint16 {
	value &= Mask(bitcount)

	if (value>>(bitcount-1))&0x1 == 1 {
		value |= ^Mask(bitcount)
	}

	return value
}

// ZeroExtend widens the low bitcount bits of value to a full word.
func ZeroExtend(value uint16, bitcount uint16) uint16 {
	return value & Mask(bitcount)
}
