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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/Chlorobite/B3313tools-Painting64/logger"
	"github.com/Chlorobite/B3313tools-Painting64/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// clear the buffer before continuing, makes comparisons easier to manage
	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "rom", "level 5 at 0x00410000")
	log.Log(logger.Allow, "rom", "level 5 at 0x00410000")
	log.Log(logger.Allow, "rom", "level 5 at 0x00410000")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "rom: level 5 at 0x00410000 (repeat x3)\n")
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Logf(logger.Allow, "painting", "committed #%d", 0)
	log.Logf(logger.Allow, "painting", "committed #%d", 1)
	log.Logf(logger.Allow, "painting", "committed #%d", 2)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "painting: committed #1\npainting: committed #2\n")
}

type prohibitLogging struct{}

func (_ prohibitLogging) AllowLogging() bool {
	return false
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(prohibitLogging{}, "tag", "detail")
	log.Logf(prohibitLogging{}, "tag", "detail %d", 1)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	echo := &test.CompareWriter{}
	log.SetEcho(echo)

	log.Log(logger.Allow, "tag", "one")
	log.Log(logger.Allow, "tag", "one")
	test.ExpectSuccess(t, echo.Compare("tag: one\ntag: one (repeat x2)\n"))

	log.SetEcho(nil)
	log.Log(logger.Allow, "tag", "two")
	test.ExpectSuccess(t, echo.Compare("tag: one\ntag: one (repeat x2)\n"))
}

// the Log() function explicitly handles error and Stringer types
type stringerTest struct{}

func (_ stringerTest) String() string {
	return "stringer test"
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Log(logger.Allow, "tag", stringerTest{})
	log.Log(logger.Allow, "tag", 0x80)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\ntag: stringer test\ntag: 128\n")
}
