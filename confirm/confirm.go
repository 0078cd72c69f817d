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

package confirm

import (
	"errors"
	"io"
	"strings"

	"github.com/Chlorobite/B3313tools-Painting64/curated"
)

// Sentinel error patterns.
const (
	NoAnswer = "confirm: no answer to %q"
	NoLine   = "confirm: nothing entered for %q"
)

// Confirm writes the prompt to output and reads from input until a yes or no
// answer is given. The answer is a single byte: y or Y for yes and n or N for
// no. Any other byte is ignored.
//
// Returns an error if input ends before an answer is read.
func Confirm(output io.Writer, input io.Reader, prompt string) (bool, error) {
	io.WriteString(output, prompt)

	b := make([]byte, 1)
	for {
		n, err := input.Read(b)
		if n > 0 {
			switch b[0] {
			case 'y', 'Y':
				return true, nil
			case 'n', 'N':
				return false, nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, curated.Errorf(NoAnswer, strings.TrimSpace(prompt))
			}
			return false, err
		}
	}
}

// Line writes the prompt to output and reads a single line from input. The
// line is returned with surrounding space removed.
//
// Input is read one byte at a time so nothing past the end of the line is
// consumed. This matters when the same reader is later used for Confirm().
func Line(output io.Writer, input io.Reader, prompt string) (string, error) {
	io.WriteString(output, prompt)

	var s strings.Builder
	b := make([]byte, 1)
	for {
		n, err := input.Read(b)
		if n > 0 {
			if b[0] == '\n' {
				break
			}
			s.WriteByte(b[0])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", err
		}
	}

	l := strings.TrimSpace(s.String())
	if l == "" {
		return "", curated.Errorf(NoLine, strings.TrimSpace(prompt))
	}
	return l, nil
}
