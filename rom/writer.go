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
	"github.com/Chlorobite/B3313tools-Painting64/logger"
	"github.com/Chlorobite/B3313tools-Painting64/painting"
)

// PointerTable returns the painting pointer table for the entries. Each word
// is the runtime address of the painting record.
func PointerTable(entries []*painting.Committed) []byte {
	b := make([]byte, len(entries)*4)
	for i, e := range entries {
		endian.Put32(b, i*4, e.RuntimeAddress())
	}
	return b
}

// Write the rendered paintings to their ROM addresses, followed by the
// painting pointer table. Overlapping placements are not detected.
//
// Every painting must have been placed. Nothing is written if any painting has
// not been.
func Write(dst io.WriterAt, entries []*painting.Committed) error {
	for _, e := range entries {
		if !e.Placed() {
			return curated.Errorf(Unresolved, e.Index)
		}
	}

	for _, e := range entries {
		if _, err := dst.WriteAt(e.Binary(), int64(e.ROMAddress)); err != nil {
			return curated.Errorf(IOError, err)
		}
		logger.Logf(logger.Allow, "rom", "painting #%d written to %08x", e.Index, e.ROMAddress)
	}

	if _, err := dst.WriteAt(PointerTable(entries), int64(PointerTableAddress)); err != nil {
		return curated.Errorf(IOError, err)
	}
	logger.Logf(logger.Allow, "rom", "pointer table of %d entries written to %08x", len(entries), PointerTableAddress)

	return nil
}
