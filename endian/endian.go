// This file is part of Painting64.
//
// Painting64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Painting64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Painting64.  If not, see <https://www.gnu.org/licenses/>.

// Package endian converts values to and from the big-endian byte order used by
// the N64. The functions are total and the result does not depend on the byte
// order of the host.
package endian

import (
	"encoding/binary"
	"math"
)

// BE16 returns the big-endian representation of v.
func BE16(v uint16) [2]byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return b
}

// BE32 returns the big-endian representation of v.
func BE32(v uint32) [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return b
}

// BEFloat32 returns the big-endian representation of the IEEE 754 bit pattern
// of f.
func BEFloat32(f float32) [4]byte {
	return BE32(math.Float32bits(f))
}

// FromBE32 is the inverse of BE32.
func FromBE32(b [4]byte) uint32 {
	return binary.BigEndian.Uint32(b[:])
}

// FromBEFloat32 is the inverse of BEFloat32.
func FromBEFloat32(b [4]byte) float32 {
	return math.Float32frombits(FromBE32(b))
}

// Put16 writes v at offset in data.
func Put16(data []byte, offset int, v uint16) {
	b := BE16(v)
	copy(data[offset:offset+2], b[:])
}

// Put32 writes v at offset in data.
func Put32(data []byte, offset int, v uint32) {
	b := BE32(v)
	copy(data[offset:offset+4], b[:])
}

// PutFloat32 writes f at offset in data.
func PutFloat32(data []byte, offset int, f float32) {
	b := BEFloat32(f)
	copy(data[offset:offset+4], b[:])
}

// Get32 reads the big-endian value at offset in data.
func Get32(data []byte, offset int) uint32 {
	return binary.BigEndian.Uint32(data[offset : offset+4])
}
