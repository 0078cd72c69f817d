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

package modalflag

import (
	"flag"
	"io"
	"strings"
)

// separates modes in the string returned by Path()
const modeSeparator = "/"

// Modes handles command line arguments. The Output field should be set before
// calling Parse() or help messages will not be seen.
type Modes struct {
	// where to print help messages
	Output io.Writer

	// flags for the next call to Parse(). replaced on every call to NewMode()
	flags *flag.FlagSet

	// the arguments given to NewArgs() and the index of the first argument
	// that has not been consumed by Parse()
	args []string
	idx  int

	// modes for the next call to Parse(). the first mode is the default
	subModes []string

	// modes selected by every call to Parse() since NewArgs()
	path []string

	// extra help text for the next call to Parse()
	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the modes selected since NewArgs().
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs starts again with a new list of arguments.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.idx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode clears the flags and sub-modes in preparation for the next call to
// Parse(). Arguments that have been consumed by a previous call to Parse() are
// not seen again.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = md.subModes[:0]
	md.additionalHelp = ""
}

// AdditionalHelp adds text to the help message of the next call to Parse().
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// AddSubModes for the next call to Parse(). The first sub-mode added is the
// default. Sub-modes are case insensitive.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

// Parse the arguments that remain. If sub-modes have been added then the
// selected mode is available with Mode() after Parse() returns.
//
// When sub-modes have been added, flags are left for the next call to Parse()
// unless they are before the mode. A flag that has not been added is then not
// an error because it may be a flag of the default mode.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.idx:])
	if err == flag.ErrHelp {
		hw.help(md.Output, md.Path(), md.subModes, md.additionalHelp)
		return ParseHelp, nil
	}

	if len(md.subModes) == 0 {
		if err != nil {
			return ParseError, err
		}
		return ParseContinue, nil
	}

	// an unrecognised flag when sub-modes are expected means that the default
	// mode has been selected and the flag belongs to it
	mode := md.subModes[0]
	if err == nil {
		// flags before the mode have been consumed
		md.idx = len(md.args) - md.flags.NArg()

		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m
				md.idx++
				break
			}
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are not flags or a selected
// sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that is not a flag or a selected
// sub-mode.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// IsSet returns true if the named flag was given on the command line in the
// most recent call to Parse().
func (md *Modes) IsSet(name string) bool {
	set := false
	md.flags.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
