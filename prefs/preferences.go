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
	"fmt"

	"github.com/Chlorobite/B3313tools-Painting64/curated"
)

// the section of the preferences file used by Painting64
const section = "painting64"

// Default preference values.
const (
	DefaultConfig        = "paintingcfg.txt"
	DefaultConfirm       = true
	DefaultPreviewWidth  = 512
	DefaultPreviewHeight = 512
)

// the smallest and largest preview image
const (
	minPreviewSize = 64
	maxPreviewSize = 8192
)

// Preferences of the Painting64 program.
type Preferences struct {
	dsk *Disk

	// the painting configuration file used when none is given
	Config String

	// ask before writing to the ROM
	Confirm Bool

	// size of the preview image
	PreviewWidth  Int
	PreviewHeight Int
}

func (p *Preferences) String() string {
	return fmt.Sprintf("config=%s confirm=%s preview=%sx%s", p.Config.String(), p.Confirm.String(),
		p.PreviewWidth.String(), p.PreviewHeight.String())
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are set to their defaults and then loaded from the file.
func NewPreferences(filename string) (*Preferences, error) {
	p := &Preferences{
		dsk: NewDisk(filename, section),
	}

	size := func(v Value) error {
		if n := v.(int); n < minPreviewSize || n > maxPreviewSize {
			return curated.Errorf(BadValue, "preview size", fmt.Sprintf("%d is not between %d and %d", n, minPreviewSize, maxPreviewSize))
		}
		return nil
	}
	p.PreviewWidth.SetHookPre(size)
	p.PreviewHeight.SetHookPre(size)

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	for _, e := range []struct {
		key string
		p   pref
	}{
		{key: "config", p: &p.Config},
		{key: "confirm", p: &p.Confirm},
		{key: "preview.width", p: &p.PreviewWidth},
		{key: "preview.height", p: &p.PreviewHeight},
	} {
		if err := p.dsk.Add(e.key, e.p); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	if err := p.Config.Set(DefaultConfig); err != nil {
		return err
	}
	if err := p.Confirm.Set(DefaultConfirm); err != nil {
		return err
	}
	if err := p.PreviewWidth.Set(DefaultPreviewWidth); err != nil {
		return err
	}
	return p.PreviewHeight.Set(DefaultPreviewHeight)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
