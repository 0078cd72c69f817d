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

// Package confirm asks the user simple questions on the console.
//
// Confirm() takes an io.Reader for the answer. Callers will usually give it a
// Keypress instance so that a single key is enough to answer, falling back to
// os.Stdin if the controlling terminal cannot be opened. Tests give it a
// strings.Reader.
package confirm
