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

package prefs

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/ini.v1"

	"github.com/Chlorobite/B3313tools-Painting64/curated"
	"github.com/Chlorobite/B3313tools-Painting64/logger"
)

// Sentinel error patterns.
const (
	DiskError    = "prefs: disk: %v"
	DuplicateKey = "prefs: key %s has already been added"
)

// Disk represents preference values that are stored in a section of an ini
// file.
type Disk struct {
	filename string
	section  string

	entries map[string]pref

	// keys in the order they were added
	keys []string
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file is not read until Load() is called.
func NewDisk(filename string, section string) *Disk {
	return &Disk{
		filename: filename,
		section:  section,
		entries:  make(map[string]pref),
	}
}

// Add a preference value to the disk under the key.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	dsk.keys = append(dsk.keys, key)
	return nil
}

// Load preference values from disk. A missing file is not an error. Values in
// the file that have not been added to the disk are ignored.
func (dsk *Disk) Load() error {
	if _, err := os.Stat(dsk.filename); errors.Is(err, fs.ErrNotExist) {
		logger.Logf(logger.Allow, "prefs", "%s does not exist. using defaults", dsk.filename)
		return nil
	}

	f, err := ini.Load(dsk.filename)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	sec := f.Section(dsk.section)
	for _, k := range dsk.keys {
		if !sec.HasKey(k) {
			continue
		}
		if err := dsk.entries[k].Set(sec.Key(k).String()); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}

	logger.Logf(logger.Allow, "prefs", "loaded from %s", dsk.filename)

	return nil
}

// Save preference values to disk. The contents of the file that are not
// preference values of this disk are preserved.
func (dsk *Disk) Save() error {
	f, err := ini.LooseLoad(dsk.filename)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	sec := f.Section(dsk.section)
	for _, k := range dsk.keys {
		sec.Key(k).SetValue(dsk.entries[k].String())
	}

	if err := f.SaveTo(dsk.filename); err != nil {
		return curated.Errorf(DiskError, err)
	}

	logger.Logf(logger.Allow, "prefs", "saved to %s", dsk.filename)

	return nil
}
