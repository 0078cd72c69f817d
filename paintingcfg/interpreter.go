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

package paintingcfg

import (
	"bufio"
	"io"
	"strings"

	"github.com/Chlorobite/B3313tools-Painting64/curated"
	"github.com/Chlorobite/B3313tools-Painting64/logger"
	"github.com/Chlorobite/B3313tools-Painting64/painting"
)

// Stride is the amount the base addresses advance by every time a new painting
// is declared.
const Stride = 0x80

// Sentinel patterns for errors raised by the interpreter. Every error returned
// by Line(), End() and Parse() is a ParseError that wraps the cause.
const (
	ParseError     = "paintingcfg: line %d: %v"
	MalformedValue = "malformed value for %s (%s)"
	MissingValue   = "no value for %s"
	NoPaintingOpen = "%s before the first new_painting"
)

// the interpreter is either waiting for the first new_painting directive or
// it has a painting open that will be committed at the next new_painting
// directive or at the end of input.
type state int

const (
	stateIdle state = iota
	stateOpen
)

// Defaults are the values that a newly declared painting starts with. They
// persist until reassigned.
type Defaults struct {
	ROMAddress       uint32
	SegmentedAddress uint32
	LevelID          uint8
	AreaID           uint8
}

// Interpreter turns configuration lines into committed paintings.
type Interpreter struct {
	list *painting.List

	state   state
	current painting.Painting

	defaults Defaults

	// number of lines processed. this is the 1-based number of the most recent
	// line
	line int
}

// NewInterpreter is the preferred method of initialisation for the
// Interpreter type. Paintings are committed to the list.
func NewInterpreter(list *painting.List) *Interpreter {
	return &Interpreter{
		list: list,
	}
}

// Defaults returns the current session defaults.
func (in *Interpreter) Defaults() Defaults {
	return in.defaults
}

// Open returns true if a painting is waiting to be committed.
func (in *Interpreter) Open() bool {
	return in.state == stateOpen
}

// LineNumber returns the 1-based number of the most recently processed line.
func (in *Interpreter) LineNumber() int {
	return in.line
}

// commit the open painting, if there is one.
func (in *Interpreter) commit() error {
	if in.state != stateOpen {
		return nil
	}
	if _, err := in.list.Commit(in.current); err != nil {
		return err
	}
	in.state = stateIdle
	return nil
}

// newPainting commits any open painting and opens a new one seeded with the
// session defaults.
func (in *Interpreter) newPainting() error {
	if err := in.commit(); err != nil {
		return err
	}

	in.current = painting.NewPainting()
	in.current.ROMAddress = in.defaults.ROMAddress
	in.current.SegmentedAddress = in.defaults.SegmentedAddress
	in.current.LevelID = in.defaults.LevelID
	in.current.AreaID = in.defaults.AreaID
	in.state = stateOpen

	in.defaults.ROMAddress += Stride
	in.defaults.SegmentedAddress += Stride

	logger.Logf(logger.Allow, "paintingcfg", "line %d: new painting (%s)", in.line, in.current)

	return nil
}

// Line processes the next line of configuration.
func (in *Interpreter) Line(ln string) error {
	in.line++
	if err := in.directive(ln); err != nil {
		return curated.Errorf(ParseError, in.line, err)
	}
	return nil
}

// End must be called after the last line. Any open painting is committed.
func (in *Interpreter) End() error {
	if err := in.commit(); err != nil {
		return curated.Errorf(ParseError, in.line, err)
	}
	return nil
}

// Parse every line from io.Reader. Parsing stops at the first error.
func Parse(r io.Reader, list *painting.List) error {
	in := NewInterpreter(list)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := in.Line(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return curated.Errorf(ParseError, in.line, err)
	}

	return in.End()
}

// split a line into a lower-case key and a value. the value is the empty
// string if there is no '=' or nothing after it.
func split(ln string) (key string, value string) {
	key, value, _ = strings.Cut(ln, "=")
	return strings.ToLower(strings.TrimSpace(key)), strings.TrimSpace(value)
}
