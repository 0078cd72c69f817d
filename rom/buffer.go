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

package rom

import (
	"io"

	"github.com/Chlorobite/B3313tools-Painting64/endian"
)

// Buffer is an in-memory ROM image. It implements io.ReaderAt and io.WriterAt.
// Writing past the end of the buffer extends it, in the same way as writing
// past the end of a file does.
type Buffer struct {
	Data []byte
}

// NewBuffer is the preferred method of initialisation for the Buffer type.
func NewBuffer(size int) *Buffer {
	return &Buffer{Data: make([]byte, size)}
}

// ReadAt implements the io.ReaderAt interface.
func (b *Buffer) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(b.Data)) {
		return 0, io.EOF
	}
	n := copy(p, b.Data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// WriteAt implements the io.WriterAt interface.
func (b *Buffer) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, io.ErrShortWrite
	}
	end := off + int64(len(p))
	if end > int64(len(b.Data)) {
		d := make([]byte, end)
		copy(d, b.Data)
		b.Data = d
	}
	return copy(b.Data[off:], p), nil
}

// Put32 writes a big-endian word at address. It is a convenient way of
// building ROM tables.
func (b *Buffer) Put32(address uint32, v uint32) {
	w := endian.BE32(v)
	_, _ = b.WriteAt(w[:], int64(address))
}

// Get32 reads the big-endian word at address. Returns zero if the address is
// outside the buffer.
func (b *Buffer) Get32(address uint32) uint32 {
	var w [4]byte
	if _, err := b.ReadAt(w[:], int64(address)); err != nil {
		return 0
	}
	return endian.FromBE32(w)
}
