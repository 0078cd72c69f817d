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

// Package prefs stores the preferences of Painting64 on disk.
//
// Each preference is a typed value (Bool, String or Int) that is registered
// with a Disk instance under a key. The Disk writes the values to a section of
// an ini file. Other sections of the file, and keys in the section that have
// not been registered, are left as they are when the file is saved.
//
// Typed values can have a hook function called before and after the value
// changes. Returning an error from the pre hook stops the value from changing.
package prefs
