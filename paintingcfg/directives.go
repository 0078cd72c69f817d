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

package paintingcfg

import (
	"strconv"
	"strings"

	"github.com/Chlorobite/B3313tools-Painting64/curated"
)

func (in *Interpreter) directive(ln string) error {
	key, value := split(ln)

	// keys that apply to the session rather than to the open painting
	switch key {
	case "new_painting":
		return in.newPainting()
	case "level_id":
		return parseU8(key, value, &in.defaults.LevelID)
	case "area_id":
		return parseU8(key, value, &in.defaults.AreaID)
	case "base_rom_address":
		return parseU32(key, value, &in.defaults.ROMAddress)
	case "base_segmented_address":
		return parseU32(key, value, &in.defaults.SegmentedAddress)
	}

	p := &in.current

	var err error
	var known bool

	// keys that apply to the open painting. the known flag is set for keys
	// that are recognised even if the value cannot be parsed
	known = true
	switch key {
	case "flip":
		// value is ignored
		p.FlipTextures = true
	case "rom_address":
		err = parseU32(key, value, &p.ROMAddress)
	case "segmented_address":
		err = parseU32(key, value, &p.SegmentedAddress)
	case "texture_segmented_address":
		err = parseU32(key, value, &p.Texture)
	case "texture_segmented_address_half2":
		err = parseU32(key, value, &p.TextureHalf2)
	case "rotation":
		err = parseFloat(key, value, &p.Yaw)
	case "x", "posx", "xpos", "pos_x", "x_pos":
		err = parseFloat(key, value, &p.PosX)
	case "y", "posy", "ypos", "pos_y", "y_pos":
		err = parseFloat(key, value, &p.PosY)
	case "z", "posz", "zpos", "pos_z", "z_pos":
		err = parseFloat(key, value, &p.PosZ)
	case "size", "scale":
		err = parseFloat(key, value, &p.Size)
	case "alpha":
		err = parseU8(key, value, &p.Alpha)
	default:
		known = false
	}

	// unrecognised keys are ignored
	if !known {
		return nil
	}

	// recognised painting keys are an error if no painting is open. note that
	// this check is after the value has been parsed (and possibly stored in
	// the unused current painting) so that a malformed value is reported in
	// preference
	if err == nil && in.state != stateOpen {
		return curated.Errorf(NoPaintingOpen, key)
	}

	return err
}

// normalise converts a hexadecimal literal to decimal text. other values are
// returned unchanged.
func normalise(key string, value string) (string, error) {
	if value == "" {
		return "", curated.Errorf(MissingValue, key)
	}

	if len(value) >= 2 && strings.EqualFold(value[:2], "0x") {
		u, err := strconv.ParseUint(value[2:], 16, 64)
		if err != nil {
			return "", curated.Errorf(MalformedValue, key, value)
		}
		return strconv.FormatUint(u, 10), nil
	}

	return value, nil
}

func parseU8(key string, value string, v *uint8) error {
	value, err := normalise(key, value)
	if err != nil {
		return err
	}
	u, err := strconv.ParseUint(value, 10, 8)
	if err != nil {
		return curated.Errorf(MalformedValue, key, value)
	}
	*v = uint8(u)
	return nil
}

func parseU32(key string, value string, v *uint32) error {
	value, err := normalise(key, value)
	if err != nil {
		return err
	}
	u, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return curated.Errorf(MalformedValue, key, value)
	}
	*v = uint32(u)
	return nil
}

func parseFloat(key string, value string, v *float32) error {
	value, err := normalise(key, value)
	if err != nil {
		return err
	}
	f, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return curated.Errorf(MalformedValue, key, value)
	}
	*v = float32(f)
	return nil
}
