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

// Package rom reads and writes the tables of the ROM image that paintings are
// placed into.
//
// Paintings that are placed by level and area rather than by ROM address are
// resolved in two steps. First the level table is scanned to find where the
// data for each level starts. The level table is a list of 12 byte records
// starting at LevelTableAddress, each record being a level ID and a segmented
// address in segment 0x15. The start of the level is found indirectly through
// the segmented address. The list ends at the first record that is not of that
// shape.
//
// Second, the area descriptor is read from the area table of the level. The
// area table is at offset 0x5f00 from the level start and each descriptor is
// 16 bytes: the first and last ROM address of the area followed by two words
// that must be zero. The ROM address of the painting is the start of the area
// plus the segmented address of the painting.
//
// Reading uses io.ReaderAt and writing uses io.WriterAt so that the functions
// work equally well with an *os.File or with an in-memory Buffer.
package rom
