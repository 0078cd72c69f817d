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
	"github.com/pkg/term"

	"github.com/Chlorobite/B3313tools-Painting64/curated"
)

// TerminalError is the sentinel pattern for errors opening or restoring the
// controlling terminal.
const TerminalError = "confirm: terminal: %v"

// the controlling terminal of the process
const controllingTerminal = "/dev/tty"

// Keypress reads single key presses from the controlling terminal. It
// implements the io.Reader interface and can be used with Confirm().
//
// The terminal is in cbreak mode for the lifetime of the Keypress instance.
// Close() must be called to return it to its previous mode.
type Keypress struct {
	t *term.Term
}

// NewKeypress opens the controlling terminal in cbreak mode.
func NewKeypress() (*Keypress, error) {
	t, err := term.Open(controllingTerminal, term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}
	return &Keypress{t: t}, nil
}

// Read implements the io.Reader interface. At most one key is read for each
// call. The terminal does not echo in cbreak mode so the key is echoed here,
// followed by a newline.
func (k *Keypress) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	n, err := k.t.Read(p[:1])
	if n > 0 {
		_, _ = k.t.Write([]byte{p[0], '\n'})
	}
	return n, err
}

// Close restores the terminal mode and closes the terminal.
func (k *Keypress) Close() error {
	if err := k.t.Restore(); err != nil {
		_ = k.t.Close()
		return curated.Errorf(TerminalError, err)
	}
	if err := k.t.Close(); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}
