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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// the name of the resource directory in the working directory. the name in
// the user config directory does not have the leading dot.
const localResourcePath = ".painting64"

// ResourcePath returns the path to the resource file in the sub-directory of
// the resource directory. Either subPth or file can be empty.
//
// The sub-directory is created if it does not exist. The file is not.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(base, subPth)
	if _, err := os.Stat(dir); err != nil {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return "", err
		}
	}

	return filepath.Join(dir, file), nil
}

func basePath() (string, error) {
	if fi, err := os.Stat(localResourcePath); err == nil && fi.IsDir() {
		return localResourcePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cnf, localResourcePath[1:]), nil
}

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. The file is not tested for.
//
// Format of returned string is:
//
//	prepend_romname_YYYYMMDD_HHMMSS.ext
//
// Where romname is the base name of the ROM file without its extension. If
// there is no ROM name the returned string will be of the format:
//
//	prepend_YYYYMMDD_HHMMSS.ext
func UniqueFilename(prepend string, romFilename string, ext string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	rom := strings.TrimSpace(romFilename)
	if rom != "" {
		rom = filepath.Base(rom)
		rom = strings.TrimSuffix(rom, filepath.Ext(rom))
	}

	var fn string
	if rom != "" {
		fn = fmt.Sprintf("%s_%s_%s", prepend, rom, timestamp)
	} else {
		fn = fmt.Sprintf("%s_%s", prepend, timestamp)
	}

	if ext != "" {
		fn = fmt.Sprintf("%s.%s", fn, strings.TrimPrefix(ext, "."))
	}

	return fn
}
