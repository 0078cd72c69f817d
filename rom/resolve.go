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
	"fmt"
	"io"

	"github.com/Chlorobite/B3313tools-Painting64/curated"
	"github.com/Chlorobite/B3313tools-Painting64/logger"
	"github.com/Chlorobite/B3313tools-Painting64/painting"
)

// AreaDescriptor is an entry in the area table of a level.
type AreaDescriptor struct {
	RangeStart uint32
	RangeEnd   uint32

	// both of these values must be zero for the descriptor to be of the
	// expected shape
	Zero1 uint32
	Zero2 uint32
}

func (ad AreaDescriptor) String() string {
	return fmt.Sprintf("%08x to %08x", ad.RangeStart, ad.RangeEnd)
}

// contains returns true if offset from the start of the area is inside the
// area. the descriptor must also be of the correct shape.
func (ad AreaDescriptor) contains(offset uint32) bool {
	if ad.RangeStart == 0 || ad.Zero1 != 0 || ad.Zero2 != 0 {
		return false
	}
	return uint64(ad.RangeEnd) > uint64(ad.RangeStart)+uint64(offset)
}

// ReadAreaDescriptor reads the descriptor for the area from the area table of
// the level starting at levelStart.
func ReadAreaDescriptor(src io.ReaderAt, levelStart uint32, areaID uint8) (AreaDescriptor, error) {
	w, err := readWords(src, int64(levelStart)+int64(AreaTableOffset)+int64(areaID)*int64(AreaDescriptorLength), 4)
	if err != nil {
		return AreaDescriptor{}, err
	}
	return AreaDescriptor{
		RangeStart: w[0],
		RangeEnd:   w[1],
		Zero1:      w[2],
		Zero2:      w[3],
	}, nil
}

// Resolve the ROM address of data at the segmented address in the area of the
// level.
func (lt *LevelTable) Resolve(src io.ReaderAt, levelID uint8, areaID uint8, segmentedAddress uint32) (uint32, error) {
	start, ok := lt.Start(levelID)
	if !ok {
		return 0, curated.Errorf(LevelNotFound, levelID)
	}

	ad, err := ReadAreaDescriptor(src, start, areaID)
	if err != nil {
		return 0, err
	}

	offset := segmentedAddress & painting.SegmentMask
	if !ad.contains(offset) {
		return 0, curated.Errorf(AreaMisconfigured, areaID, levelID)
	}

	return ad.RangeStart + offset, nil
}

// ResolveAll sets the ROM address of every painting that is placed by level
// and area. Paintings with a level ID of zero are not changed.
//
// The level table is only read if at least one painting needs to be resolved.
// If an error is returned then no painting has been changed.
func ResolveAll(src io.ReaderAt, entries []*painting.Committed) error {
	need := false
	for _, e := range entries {
		if e.NeedsResolution() {
			need = true
			break
		}
	}
	if !need {
		return nil
	}

	lt, err := ReadLevelTable(src)
	if err != nil {
		return err
	}

	addresses := make([]uint32, len(entries))
	for i, e := range entries {
		if !e.NeedsResolution() {
			addresses[i] = e.ROMAddress
			continue
		}

		addresses[i], err = lt.Resolve(src, e.LevelID, e.AreaID, e.SegmentedAddress)
		if err != nil {
			return curated.Errorf("painting #%d: %v", e.Index, err)
		}

		logger.Logf(logger.Allow, "rom", "painting #%d resolved to %08x", e.Index, addresses[i])
	}

	for i, e := range entries {
		if e.NeedsResolution() {
			e.Place(addresses[i])
		}
	}

	return nil
}
