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

package painting_test

import (
	"testing"

	"github.com/Chlorobite/B3313tools-Painting64/curated"
	"github.com/Chlorobite/B3313tools-Painting64/endian"
	"github.com/Chlorobite/B3313tools-Painting64/painting"
	"github.com/Chlorobite/B3313tools-Painting64/test"
)

func validPainting() painting.Painting {
	p := painting.NewPainting()
	p.ROMAddress = 0x01200000
	p.SegmentedAddress = 0x0e000100
	p.Texture = 0x0e01d000
	return p
}

func word(b []byte, offset int) uint32 {
	return endian.Get32(b, offset)
}

func TestDefaults(t *testing.T) {
	p := painting.NewPainting()
	test.ExpectEquality(t, p.Alpha, uint8(0xff))
	test.ExpectEquality(t, p.Size, float32(614.0))
	test.ExpectEquality(t, p.FlipTextures, false)
}

func TestValidation(t *testing.T) {
	tmpl := painting.DefaultTemplate()

	p := validPainting()
	p.ROMAddress = 0
	_, err := painting.Render(tmpl, p, 0)
	test.ExpectSuccess(t, curated.Is(err, painting.NoPlacement))

	// a level ID is an alternative to the ROM address
	p.LevelID = 5
	_, err = painting.Render(tmpl, p, 0)
	test.ExpectSuccess(t, err)

	p = validPainting()
	p.SegmentedAddress = 0
	_, err = painting.Render(tmpl, p, 0)
	test.ExpectSuccess(t, curated.Is(err, painting.NoSegmentedAddress))

	p = validPainting()
	p.Texture = 0
	_, err = painting.Render(tmpl, p, 0)
	test.ExpectSuccess(t, curated.Is(err, painting.NoTexture))

	// the secondary texture is not a substitute for the primary texture
	p.TextureHalf2 = 0x0e02d000
	_, err = painting.Render(tmpl, p, 0)
	test.ExpectSuccess(t, curated.Is(err, painting.NoTexture))
}

func TestRender(t *testing.T) {
	tmpl := painting.DefaultTemplate()

	p := validPainting()
	p.Pitch = 1.5
	p.Yaw = 90.0
	p.PosX = -2972.5
	p.PosY = 64.0
	p.PosZ = 1362.0
	p.Alpha = 0x80
	p.Size = 300.0

	bin, err := painting.Render(tmpl, p, 7)
	test.DemandSuccess(t, err)
	b := bin[:]

	test.ExpectEquality(t, len(b), painting.RecordLen)
	test.ExpectEquality(t, b[0], uint8(0x00))
	test.ExpectEquality(t, b[1], uint8(0x07))

	test.ExpectEquality(t, word(b, 0x08), endian.FromBE32(endian.BEFloat32(1.5)))
	test.ExpectEquality(t, word(b, 0x0c), uint32(0x42b40000))
	test.ExpectEquality(t, word(b, 0x10), endian.FromBE32(endian.BEFloat32(-2972.5)))
	test.ExpectEquality(t, word(b, 0x14), uint32(0x42800000))
	test.ExpectEquality(t, word(b, 0x18), endian.FromBE32(endian.BEFloat32(1362.0)))
	test.ExpectEquality(t, b[0x70], uint8(0x80))
	test.ExpectEquality(t, word(b, 0x74), endian.FromBE32(endian.BEFloat32(300.0)))

	// fields that are not patched are unchanged from the template
	test.ExpectEquality(t, b[2], tmpl[2])
	test.ExpectEquality(t, word(b, 0x20), word(tmpl[:], 0x20))
	test.ExpectEquality(t, word(b, 0x6c), word(tmpl[:], 0x6c))
	test.ExpectEquality(t, b[0x71], tmpl[0x71])
}

func TestTemplateIsNotAltered(t *testing.T) {
	tmpl := painting.DefaultTemplate()
	pristine := painting.DefaultTemplate()

	p := validPainting()
	p.PosX = 1000.0
	_, err := painting.Render(tmpl, p, 3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tmpl, pristine)

	// rendering the same painting with a different index differs only in the
	// index field
	a, _ := painting.Render(tmpl, p, 0)
	b, _ := painting.Render(tmpl, p, 1)
	test.ExpectInequality(t, a, b)
	a[1] = 1
	test.ExpectEquality(t, a, b)
}

func TestTextureSlots(t *testing.T) {
	tmpl := painting.DefaultTemplate()

	p := validPainting()
	bin, err := painting.Render(tmpl, p, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, word(bin[:], 0x78), uint32(0x0e01d000))
	test.ExpectEquality(t, word(bin[:], 0x7c), uint32(0x0e01e000))

	p.FlipTextures = true
	bin, err = painting.Render(tmpl, p, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, word(bin[:], 0x78), uint32(0x0e01e000))
	test.ExpectEquality(t, word(bin[:], 0x7c), uint32(0x0e01d000))

	// explicit secondary texture
	p.FlipTextures = false
	p.TextureHalf2 = 0x0e050000
	bin, err = painting.Render(tmpl, p, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, word(bin[:], 0x78), uint32(0x0e01d000))
	test.ExpectEquality(t, word(bin[:], 0x7c), uint32(0x0e050000))

	p.FlipTextures = true
	bin, err = painting.Render(tmpl, p, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, word(bin[:], 0x78), uint32(0x0e050000))
	test.ExpectEquality(t, word(bin[:], 0x7c), uint32(0x0e01d000))
}

func TestSelfPointer(t *testing.T) {
	tmpl := painting.DefaultTemplate()

	for _, seg := range []uint32{0x00000080, 0x0e000100, 0x19123456, 0xffffffff} {
		p := validPainting()
		p.SegmentedAddress = seg
		bin, err := painting.Render(tmpl, p, 0)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, word(bin[:], 0x60), 0x80420000+(seg&0x00ffffff)+0x78)
		test.ExpectEquality(t, p.RuntimeAddress(), 0x80420000+(seg&0x00ffffff))
	}
}

func TestCommit(t *testing.T) {
	l := painting.NewList(painting.DefaultTemplate())

	p := validPainting()
	for i := 0; i < painting.MaxCount; i++ {
		c, err := l.Commit(p)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, c.Index, uint16(i))
		test.ExpectEquality(t, c.Binary()[1], uint8(i))
	}
	test.DemandEquality(t, l.Len(), painting.MaxCount)

	// the 129th painting is refused
	c, err := l.Commit(p)
	test.ExpectSuccess(t, curated.Is(err, painting.MaxCountExceeded))
	test.ExpectSuccess(t, c == nil)
	test.ExpectEquality(t, l.Len(), painting.MaxCount)

	// entries are in commit order
	for i, e := range l.Entries() {
		test.ExpectEquality(t, int(e.Index), i)
	}
}

func TestCommitFailure(t *testing.T) {
	l := painting.NewList(painting.DefaultTemplate())

	p := validPainting()
	p.Texture = 0
	_, err := l.Commit(p)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, l.Len(), 0)

	// the index of the next successful commit is not affected by the failure
	c, err := l.Commit(validPainting())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.Index, uint16(0))
}

func TestBinaryIsACopy(t *testing.T) {
	l := painting.NewList(painting.DefaultTemplate())
	c, err := l.Commit(validPainting())
	test.DemandSuccess(t, err)

	b := c.Binary()
	b[0x10] = 0xaa
	test.ExpectInequality(t, c.Binary()[0x10], uint8(0xaa))
}

func TestDump(t *testing.T) {
	l := painting.NewList(painting.DefaultTemplate())
	p := validPainting()
	c, err := l.Commit(p)
	test.DemandSuccess(t, err)

	w := &test.CompareWriter{}
	c.Dump(w)
	test.ExpectSuccess(t, w.Contains("00000200 00000000 00000000 00000000 00000000 00000000 00000000 00000000\n"))
	test.ExpectSuccess(t, w.Contains("FF000000 44198000 0E01D000 0E01E000\n"))
}
