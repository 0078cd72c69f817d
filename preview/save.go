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

package preview

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"

	"github.com/Chlorobite/B3313tools-Painting64/curated"
	"github.com/Chlorobite/B3313tools-Painting64/logger"
)

// Sentinel error patterns.
const (
	UnsupportedFormat = "preview: unsupported image format (%s)"
	SaveError         = "preview: %v"
)

// Save the image to the named file. The format is chosen by the extension of
// the filename, which must be .png or .webp.
func Save(filename string, img image.Image) (rerr error) {
	var encode func(f *os.File) error

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png":
		encode = func(f *os.File) error {
			return png.Encode(f, img)
		}
	case ".webp":
		encode = func(f *os.File) error {
			return nativewebp.Encode(f, img, nil)
		}
	default:
		return curated.Errorf(UnsupportedFormat, ext)
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(SaveError, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(SaveError, err)
		}
	}()

	if err := encode(f); err != nil {
		return curated.Errorf(SaveError, err)
	}

	logger.Logf(logger.Allow, "preview", "saved to %s", filename)

	return nil
}
