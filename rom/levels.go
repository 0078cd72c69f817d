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

	"github.com/Chlorobite/B3313tools-Painting64/logger"
	"github.com/Chlorobite/B3313tools-Painting64/painting"
)

// Level is an entry in the level table.
type Level struct {
	ID    uint8
	Start uint32
}

func (l Level) String() string {
	return fmt.Sprintf("level %d starts at %08x", l.ID, l.Start)
}

// LevelTable maps level IDs to the ROM address at which the level's data
// starts. A start address of zero means the level does not exist.
type LevelTable struct {
	start [MaxLevels]uint32
}

// ReadLevelTable scans the level table of the ROM.
func ReadLevelTable(src io.ReaderAt) (*LevelTable, error) {
	lt := &LevelTable{}

	for i := uint32(0); i < MaxLevels; i++ {
		rec, err := readWords(src, int64(LevelTableAddress+i*LevelTableStride), 2)
		if err != nil {
			return nil, err
		}

		id := rec[0]
		seg := rec[1]

		// end of table
		if id >= MaxLevels || seg&^painting.SegmentMask != levelSegment {
			break
		}

		start, err := readWords(src, int64(LevelScriptBase+(seg&painting.SegmentMask)+levelStartOffset), 1)
		if err != nil {
			return nil, err
		}
		lt.start[id] = start[0]

		logger.Logf(logger.Allow, "rom", "level %d starts at %08x", id, start[0])
	}

	return lt, nil
}

// Start returns the ROM address of the level's data. Returns false if the
// level is not in the table.
func (lt *LevelTable) Start(levelID uint8) (uint32, bool) {
	s := lt.start[levelID]
	return s, s != 0
}

// Levels returns every level in the table in order of level ID.
func (lt *LevelTable) Levels() []Level {
	var l []Level
	for id, s := range lt.start {
		if s != 0 {
			l = append(l, Level{ID: uint8(id), Start: s})
		}
	}
	return l
}
