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

// Package preview draws a top-down map of where the paintings are placed. It
// is a quick way of checking a configuration for mistakes before anything is
// written to the ROM.
//
// The map is of the X/Z plane. Each painting is drawn as a line starting at
// its position and running for its size in the direction given by its yaw.
// The painting's index is drawn next to its position. Paintings in the same
// level are drawn in the same colour.
//
// Save() writes the map as a PNG or a WebP file, depending on the extension
// of the filename.
package preview
