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

	"github.com/Chlorobite/B3313tools-Painting64/curated"
	"github.com/Chlorobite/B3313tools-Painting64/endian"
)

// Fixed locations in the ROM.
const (
	LevelTableAddress   uint32 = 0x2abf20
	LevelTableStride    uint32 = 0x0c
	LevelScriptBase     uint32 = 0x2abca0
	PointerTableAddress uint32 = 0x3e0bc0
)

// the segment that the segmented addresses in the level table must be in
const levelSegment uint32 = 0x15000000

// the level start address is the second word of the record referred to by the
// level table
const levelStartOffset uint32 = 0x04

// Layout of the area table of a level.
const (
	AreaTableOffset      uint32 = 0x5f00
	AreaDescriptorLength uint32 = 0x10
)

// MaxLevels is the number of possible level IDs. It is also the maximum number
// of records that will be read from the level table.
const MaxLevels = 0x100

// Sentinel patterns for errors.
const (
	IOError           = "rom: %v"
	ShortRead         = "rom: short read of %d bytes at %08x"
	FileMissing       = "rom: file %s does not exist"
	LevelNotFound     = "level %d does not exist"
	AreaMisconfigured = "area %d in level %d is not set up correctly (only areas with an area table in segment 0x19 are supported)"
	Unresolved        = "painting #%d has no ROM address"
)

// readWords reads count big-endian words starting at address. The address is
// an int64 so that offsets computed from ROM data never wrap.
func readWords(src io.ReaderAt, address int64, count int) ([]uint32, error) {
	b := make([]byte, count*4)
	n, err := src.ReadAt(b, address)

	// ReaderAt may return io.EOF with a complete read if the read ends at the
	// end of the data
	if n < len(b) {
		if err == nil || err == io.EOF {
			return nil, curated.Errorf(ShortRead, len(b), address)
		}
		return nil, curated.Errorf(IOError, err)
	}

	w := make([]uint32, count)
	for i := range w {
		w[i] = endian.Get32(b, i*4)
	}
	return w, nil
}
