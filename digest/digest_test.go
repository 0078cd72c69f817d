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

package digest_test

import (
	"testing"

	"github.com/Chlorobite/B3313tools-Painting64/digest"
	"github.com/Chlorobite/B3313tools-Painting64/painting"
	"github.com/Chlorobite/B3313tools-Painting64/test"
)

func list(t *testing.T, x ...float32) *painting.List {
	t.Helper()
	l := painting.NewList(painting.DefaultTemplate())
	for i, v := range x {
		p := painting.NewPainting()
		p.ROMAddress = 0x01200000 + uint32(i)*0x80
		p.SegmentedAddress = 0x0e000000 + uint32(i)*0x80
		p.Texture = 0x0e01d000
		p.PosX = v
		_, err := l.Commit(p)
		test.DemandSuccess(t, err)
	}
	return l
}

func TestEmpty(t *testing.T) {
	dig := digest.NewRecords()
	test.ExpectEquality(t, dig.Hash(), "0000000000000000000000000000000000000000")
	test.ExpectEquality(t, digest.Entries(nil).Hash(), dig.Hash())
}

func TestRecords(t *testing.T) {
	a := digest.Entries(list(t, 100, 200).Entries())
	b := digest.Entries(list(t, 100, 200).Entries())
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectEquality(t, len(a.Hash()), 40)

	// a change to any painting changes the digest
	c := digest.Entries(list(t, 100, 201).Entries())
	test.ExpectInequality(t, a.Hash(), c.Hash())

	// order matters
	d := digest.Entries(list(t, 200, 100).Entries())
	test.ExpectInequality(t, a.Hash(), d.Hash())
}

func TestPlacement(t *testing.T) {
	a := list(t, 100).Entries()
	b := list(t, 100).Entries()
	test.ExpectEquality(t, digest.Entries(a).Hash(), digest.Entries(b).Hash())

	// an identical record written to a different part of the ROM
	b[0].Place(0x01300000)
	test.ExpectInequality(t, digest.Entries(a).Hash(), digest.Entries(b).Hash())

	a[0].Place(0x01300000)
	test.ExpectEquality(t, digest.Entries(a).Hash(), digest.Entries(b).Hash())
}

func TestReset(t *testing.T) {
	var dig digest.Digest = digest.Entries(list(t, 100).Entries())
	test.ExpectInequality(t, dig.Hash(), digest.NewRecords().Hash())
	dig.ResetDigest()
	test.ExpectEquality(t, dig.Hash(), digest.NewRecords().Hash())
}
