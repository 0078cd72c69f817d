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
	"errors"
	"io/fs"
	"os"

	"github.com/Chlorobite/B3313tools-Painting64/curated"
	"github.com/Chlorobite/B3313tools-Painting64/painting"
)

// Exists returns an error if the ROM file does not exist or is a directory.
func Exists(filename string) error {
	fi, err := os.Stat(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf(FileMissing, filename)
		}
		return curated.Errorf(IOError, err)
	}
	if fi.IsDir() {
		return curated.Errorf(IOError, "not a file: "+filename)
	}
	return nil
}

// ReadLevelTableFile opens the ROM file for reading and scans the level table.
func ReadLevelTableFile(filename string) (*LevelTable, error) {
	if err := Exists(filename); err != nil {
		return nil, err
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(IOError, err)
	}
	defer f.Close()

	return ReadLevelTable(f)
}

// ResolveFile opens the ROM file for reading and resolves the ROM address of
// the entries. The file is closed before the function returns.
func ResolveFile(filename string, entries []*painting.Committed) error {
	if err := Exists(filename); err != nil {
		return err
	}

	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(IOError, err)
	}
	defer f.Close()

	return ResolveAll(f, entries)
}

// WriteFile opens the ROM file for writing and writes the entries and the
// pointer table. The file is not truncated.
func WriteFile(filename string, entries []*painting.Committed) (rerr error) {
	if err := Exists(filename); err != nil {
		return err
	}

	f, err := os.OpenFile(filename, os.O_WRONLY, 0)
	if err != nil {
		return curated.Errorf(IOError, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(IOError, err)
		}
	}()

	return Write(f, entries)
}
