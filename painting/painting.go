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

	"github.com/Chlorobite/B3313tools-Painting64/curated"
	"github.com/Chlorobite/B3313tools-Painting64/endian"
)

// RAMBase is the address of segment 0x0E in the RAM of the running game.
// Painting data is loaded into that segment.
const RAMBase uint32 = 0x80420000

// SegmentMask selects the address-significant part of a segmented address.
// The top byte identifies the segment.
const SegmentMask uint32 = 0x00ffffff

// MaxCount is the maximum number of paintings the pointer table can hold.
const MaxCount = 128

// Sentinel patterns for validation errors raised by Render() and Commit().
const (
	MaxCountExceeded   = "committing painting: max painting count of %d exceeded"
	NoPlacement        = "committing painting: level ID / data ROM address not set"
	NoSegmentedAddress = "committing painting: data segmented address not set"
	NoTexture          = "committing painting: texture segmented address not set"
)

// offsets of fields in the rendered record.
const (
	offsetID          = 0x00
	offsetPitch       = 0x08
	offsetYaw         = 0x0c
	offsetPosX        = 0x10
	offsetPosY        = 0x14
	offsetPosZ        = 0x18
	offsetSelfPointer = 0x60
	offsetAlpha       = 0x70
	offsetSize        = 0x74
	offsetSlotA       = 0x78
	offsetSlotB       = 0x7c
)

// the texture at the second slot is assumed to follow the first texture
// directly when it is not specified.
const textureHalfSize = 0x1000

// Painting is one configured painting. The zero value is not ready for use
// because Alpha and Size have non-zero defaults. Use NewPainting().
type Painting struct {
	// absolute position in the ROM of the record. if LevelID is not zero then
	// this value is overwritten by the resolved address
	ROMAddress uint32

	// address of the record relative to the area that owns it
	SegmentedAddress uint32

	LevelID uint8
	AreaID  uint8

	Texture      uint32
	TextureHalf2 uint32

	// swap the slots that the two texture addresses are written to
	FlipTextures bool

	Pitch float32
	Yaw   float32

	PosX float32
	PosY float32
	PosZ float32

	Alpha uint8
	Size  float32
}

// NewPainting is the preferred method of initialisation for the Painting type.
func NewPainting() Painting {
	return Painting{
		Alpha: 0xff,
		Size:  614.0,
	}
}

// NeedsResolution returns true if the ROM address of the painting must be
// derived from the level and area IDs.
func (p Painting) NeedsResolution() bool {
	return p.LevelID != 0
}

// Validate checks that the painting has the fields required for it to be
// rendered.
func (p Painting) Validate() error {
	if p.ROMAddress == 0 && p.LevelID == 0 {
		return curated.Errorf(NoPlacement)
	}
	if p.SegmentedAddress == 0 {
		return curated.Errorf(NoSegmentedAddress)
	}
	if p.Texture == 0 {
		return curated.Errorf(NoTexture)
	}
	return nil
}

// TextureSlots returns the values to be written to the two texture slots of
// the record. Slot A is at offset 0x78 and slot B is at offset 0x7c.
//
// An unflipped painting has the primary texture in slot A and flip moves it to
// slot B. This order is fixed and is checked by TestTextureSlots.
func (p Painting) TextureSlots() (a uint32, b uint32) {
	secondary := p.TextureHalf2
	if secondary == 0 {
		secondary = p.Texture + textureHalfSize
	}

	if p.FlipTextures {
		return secondary, p.Texture
	}
	return p.Texture, secondary
}

// SelfPointer is the runtime address of the texture slots of the record.
func (p Painting) SelfPointer() uint32 {
	return p.RuntimeAddress() + offsetSlotA
}

// RuntimeAddress is the address of the record in RAM when the game is
// running. This is the value that is stored in the painting pointer table.
func (p Painting) RuntimeAddress() uint32 {
	return RAMBase + (p.SegmentedAddress & SegmentMask)
}

func (p Painting) String() string {
	if p.NeedsResolution() {
		return fmt.Sprintf("level %d area %d seg %08x", p.LevelID, p.AreaID, p.SegmentedAddress)
	}
	return fmt.Sprintf("rom %08x seg %08x", p.ROMAddress, p.SegmentedAddress)
}

// Render patches a copy of the template with the fields of the painting. The
// index is the position of the painting in the commit order.
//
// The template argument is never altered.
func Render(template Template, p Painting, index uint16) ([RecordLen]byte, error) {
	if err := p.Validate(); err != nil {
		return [RecordLen]byte{}, err
	}

	// template is already a copy because it was passed by value
	b := template[:]

	endian.Put16(b, offsetID, index)

	endian.PutFloat32(b, offsetPitch, p.Pitch)
	endian.PutFloat32(b, offsetYaw, p.Yaw)
	endian.PutFloat32(b, offsetPosX, p.PosX)
	endian.PutFloat32(b, offsetPosY, p.PosY)
	endian.PutFloat32(b, offsetPosZ, p.PosZ)
	endian.PutFloat32(b, offsetSize, p.Size)

	b[offsetAlpha] = p.Alpha

	slotA, slotB := p.TextureSlots()
	endian.Put32(b, offsetSlotA, slotA)
	endian.Put32(b, offsetSlotB, slotB)

	endian.Put32(b, offsetSelfPointer, p.SelfPointer())

	return template, nil
}
