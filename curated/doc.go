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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values.
//
// The pattern is what identifies an error. Packages that raise errors the
// caller might want to act upon export the pattern as a string constant:
//
//	const LevelNotFound = "level %d does not exist in the level table"
//
//	err := curated.Errorf(LevelNotFound, 5)
//	if curated.Is(err, LevelNotFound) {
//		...
//	}
//
// The Has() function is similar but checks if the pattern occurs somewhere in
// the error chain. A chain is formed when a curated error is one of the values
// of another curated error:
//
//	e := curated.Errorf(LevelNotFound, 5)
//	f := curated.Errorf("rom: %v", e)
//
//	curated.Has(f, LevelNotFound) // true
//	curated.Is(f, LevelNotFound)  // false
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. We can think of this as the difference between 'expected' and
// 'unexpected' errors.
//
// The Error() implementation normalises the message so that the chain does not
// contain duplicate adjacent parts. Parts are separated by the sub-string ": ".
// For example, wrapping "rom: file missing" inside "rom: %v" produces
//
//	rom: file missing
//
// and not
//
//	rom: rom: file missing
package curated
