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

package painting

import (
	"fmt"
	"io"
	"strings"

	"github.com/Chlorobite/B3313tools-Painting64/curated"
	"github.com/Chlorobite/B3313tools-Painting64/logger"
)

// Committed is a painting that has been validated and rendered. The rendered
// binary cannot be changed but the ROMAddress field of the embedded Painting
// is set when the address is resolved.
type Committed struct {
	Painting

	// position in commit order
	Index uint16

	binary [RecordLen]byte

	// the ROM address has been set by Place()
	placed bool
}

// Place sets the ROM address of a painting that is placed by level and area.
func (c *Committed) Place(romAddress uint32) {
	c.ROMAddress = romAddress
	c.placed = true
}

// Placed returns true if the ROM address of the painting is known. This is
// always true for paintings that are not placed by level and area.
func (c *Committed) Placed() bool {
	return !c.NeedsResolution() || c.placed
}

// Binary returns a copy of the rendered record.
func (c *Committed) Binary() []byte {
	b := c.binary
	return b[:]
}

func (c *Committed) String() string {
	if c.NeedsResolution() && c.placed {
		return fmt.Sprintf("#%d %s (rom %08x)", c.Index, c.Painting, c.ROMAddress)
	}
	return fmt.Sprintf("#%d %s", c.Index, c.Painting)
}

// Dump writes the rendered record to io.Writer as big-endian words, eight
// words to a line.
func (c *Committed) Dump(output io.Writer) {
	s := strings.Builder{}
	for i := 0; i < RecordLen; i += 4 {
		s.WriteString(fmt.Sprintf("%02X%02X%02X%02X", c.binary[i], c.binary[i+1], c.binary[i+2], c.binary[i+3]))
		if (i+4)%0x20 == 0 {
			s.WriteString("\n")
		} else {
			s.WriteString(" ")
		}
	}
	io.WriteString(output, s.String())
}

// List is the ordered list of committed paintings.
type List struct {
	template Template
	entries  []*Committed
}

// NewList is the preferred method of initialisation for the List type. Every
// painting committed to the list is rendered from a copy of template.
func NewList(template Template) *List {
	return &List{
		template: template,
		entries:  make([]*Committed, 0, MaxCount),
	}
}

// Commit validates and renders the painting and appends it to the list. The
// painting is given the next index in the commit order.
//
// Nothing is added to the list if an error is returned.
func (l *List) Commit(p Painting) (*Committed, error) {
	if len(l.entries) >= MaxCount {
		return nil, curated.Errorf(MaxCountExceeded, MaxCount)
	}

	idx := uint16(len(l.entries))
	bin, err := Render(l.template, p, idx)
	if err != nil {
		return nil, err
	}

	c := &Committed{
		Painting: p,
		Index:    idx,
		binary:   bin,
	}
	l.entries = append(l.entries, c)

	logger.Logf(logger.Allow, "painting", "committed %s", c)

	return c, nil
}

// Len returns the number of committed paintings.
func (l *List) Len() int {
	return len(l.entries)
}

// Entries returns the committed paintings in commit order. The returned slice
// is a copy but the entries are shared with the list.
func (l *List) Entries() []*Committed {
	e := make([]*Committed, len(l.entries))
	copy(e, l.entries)
	return e
}
