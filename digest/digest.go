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

// Package digest produces a cryptographic hash of the rendered paintings. The
// hash can be used to compare the output of one configuration with another. If
// the hash of a new run differs from a previously recorded value then
// something has changed.
package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/Chlorobite/B3313tools-Painting64/endian"
	"github.com/Chlorobite/B3313tools-Painting64/painting"
)

// Digest implementations return a cryptographic hash in response to a Hash()
// request.
type Digest interface {
	Hash() string
	ResetDigest()
}

// Records is a chained digest of rendered painting records and the addresses
// they are found at. The ROM address is where the record is written and the
// runtime address is what is written to the pointer table. A painting that has
// not been placed contributes a ROM address of zero.
type Records struct {
	digest [sha1.Size]byte

	// the previous digest followed by the ROM address, the runtime address
	// and the record
	data []byte
}

// NewRecords is the preferred method of initialisation for the Records type.
func NewRecords() *Records {
	return &Records{
		data: make([]byte, sha1.Size+8+painting.RecordLen),
	}
}

// Hash implements the Digest interface.
func (dig *Records) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Records) ResetDigest() {
	clear(dig.digest[:])
}

// Add the committed painting to the digest.
func (dig *Records) Add(c *painting.Committed) {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the data
	n := copy(dig.data, dig.digest[:])

	endian.Put32(dig.data, n, c.ROMAddress)
	endian.Put32(dig.data, n+4, c.RuntimeAddress())

	copy(dig.data[n+8:], c.Binary())
	dig.digest = sha1.Sum(dig.data)
}

// Entries returns the digest of the committed paintings in order.
func Entries(entries []*painting.Committed) *Records {
	dig := NewRecords()
	for _, e := range entries {
		dig.Add(e)
	}
	return dig
}
