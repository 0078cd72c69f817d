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

// RecordLen is the size in bytes of a rendered painting record.
const RecordLen = 0x80

// Template is the binary that every rendered record starts from. Template is
// an array type so passing it around copies it.
type Template [RecordLen]byte

// the sample painting record. fields that are not patched by Render() keep
// these values. words are big-endian
var sampleTemplate = Template{
	0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x42, 0xb4, 0x00, 0x00,
	0xc5, 0x39, 0xf0, 0x00, 0x42, 0x80, 0x00, 0x00, 0x44, 0xaa, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x41, 0xa0, 0x00, 0x00, 0x42, 0xa0, 0x00, 0x00, 0x3f, 0x80, 0x00, 0x00, 0x3f, 0x75, 0xf6, 0xfd,
	0x3f, 0x73, 0xd0, 0x7d, 0x00, 0x00, 0x00, 0x00, 0x3e, 0x75, 0xc2, 0x8f, 0x3e, 0x0f, 0x5c, 0x29,
	0x00, 0x00, 0x00, 0x00, 0x42, 0x20, 0x00, 0x00, 0x41, 0xf0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x56, 0xbe, 0x60, 0x80, 0x56, 0xbe, 0x40,
	0x80, 0x56, 0xfd, 0xa0, 0x00, 0x40, 0x00, 0x20, 0x80, 0x56, 0xbe, 0x60, 0x0a, 0xff, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x44, 0x19, 0x80, 0x00, 0x0e, 0x00, 0xe4, 0x20, 0x0e, 0x00, 0xd4, 0x20,
}

// DefaultTemplate returns a copy of the sample painting record.
func DefaultTemplate() Template {
	return sampleTemplate
}
