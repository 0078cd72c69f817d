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

package prefs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/ini.v1"

	"github.com/Chlorobite/B3313tools-Painting64/curated"
	"github.com/Chlorobite/B3313tools-Painting64/prefs"
	"github.com/Chlorobite/B3313tools-Painting64/test"
)

func tmpPrefFile(t *testing.T, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "preferences.ini")
	if content != "" {
		test.DemandSuccess(t, os.WriteFile(fn, []byte(content), 0600))
	}
	return fn
}

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectEquality(t, v.String(), "true")

	for _, s := range []string{"true", "TRUE", "yes", "1"} {
		test.ExpectSuccess(t, v.Set(false))
		test.ExpectSuccess(t, v.Set(s))
		test.ExpectEquality(t, v.Get().(bool), true, s)
	}

	for _, s := range []string{"false", "no", "foo", ""} {
		test.ExpectSuccess(t, v.Set(true))
		test.ExpectSuccess(t, v.Set(s))
		test.ExpectEquality(t, v.Get().(bool), false, s)
	}

	err := v.Set(1.5)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, prefs.CannotConvert), true)
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectEquality(t, v.String(), "")

	test.ExpectSuccess(t, v.Set("paintingcfg.txt"))
	test.ExpectEquality(t, v.Get().(string), "paintingcfg.txt")

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.String(), "10")
}

func TestInt(t *testing.T) {
	var v prefs.Int

	test.ExpectSuccess(t, v.Set(512))
	test.ExpectEquality(t, v.Get().(int), 512)

	test.ExpectSuccess(t, v.Set(" 256 "))
	test.ExpectEquality(t, v.Get().(int), 256)
	test.ExpectEquality(t, v.String(), "256")

	err := v.Set("wide")
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, prefs.BadValue), true)
	test.ExpectEquality(t, v.Get().(int), 256)

	err = v.Set(true)
	test.ExpectEquality(t, curated.Is(err, prefs.CannotConvert), true)
}

func TestHooks(t *testing.T) {
	var v prefs.Int

	errTooBig := errors.New("too big")

	var pre, post int
	v.SetHookPre(func(value prefs.Value) error {
		pre++
		if value.(int) > 100 {
			return errTooBig
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post++
		return nil
	})

	test.ExpectSuccess(t, v.Set(50))
	test.ExpectEquality(t, pre, 1)
	test.ExpectEquality(t, post, 1)

	// the pre hook prevents the value from changing
	err := v.Set(200)
	test.ExpectEquality(t, errors.Is(err, errTooBig), true)
	test.ExpectEquality(t, v.Get().(int), 50)
	test.ExpectEquality(t, pre, 2)
	test.ExpectEquality(t, post, 1)

	// hooks are called even if the value does not change
	test.ExpectSuccess(t, v.Set(50))
	test.ExpectEquality(t, pre, 3)
	test.ExpectEquality(t, post, 2)
}

func TestDiskDuplicateKey(t *testing.T) {
	dsk := prefs.NewDisk(tmpPrefFile(t, ""), "test")

	var a, b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("a", &a))
	err := dsk.Add("a", &b)
	test.ExpectEquality(t, curated.Is(err, prefs.DuplicateKey), true)
}

func TestDiskMissingFile(t *testing.T) {
	fn := tmpPrefFile(t, "")
	dsk := prefs.NewDisk(fn, "test")

	var v prefs.String
	test.ExpectSuccess(t, v.Set("unchanged"))
	test.ExpectSuccess(t, dsk.Add("v", &v))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.String(), "unchanged")

	// the file is created on saving
	test.ExpectSuccess(t, dsk.Save())
	_, err := os.Stat(fn)
	test.ExpectSuccess(t, err)
}

func TestDiskPreservesOtherValues(t *testing.T) {
	fn := tmpPrefFile(t, "[other]\nfoo = bar\n\n[test]\nunknown = 10\nv = old\n")
	dsk := prefs.NewDisk(fn, "test")

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("v", &v))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.String(), "old")

	test.ExpectSuccess(t, v.Set("new"))
	test.ExpectSuccess(t, dsk.Save())

	f, err := ini.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, f.Section("other").Key("foo").String(), "bar")
	test.ExpectEquality(t, f.Section("test").Key("unknown").String(), "10")
	test.ExpectEquality(t, f.Section("test").Key("v").String(), "new")
}

func TestPreferencesDefaults(t *testing.T) {
	p, err := prefs.NewPreferences(tmpPrefFile(t, ""))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.Config.String(), prefs.DefaultConfig)
	test.ExpectEquality(t, p.Confirm.Get().(bool), prefs.DefaultConfirm)
	test.ExpectEquality(t, p.PreviewWidth.Get().(int), prefs.DefaultPreviewWidth)
	test.ExpectEquality(t, p.PreviewHeight.Get().(int), prefs.DefaultPreviewHeight)
}

func TestPreferencesRoundTrip(t *testing.T) {
	fn := tmpPrefFile(t, "")

	p, err := prefs.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Config.Set("b3313.txt"))
	test.ExpectSuccess(t, p.Confirm.Set(false))
	test.ExpectSuccess(t, p.PreviewWidth.Set(1024))
	test.ExpectSuccess(t, p.Save())

	q, err := prefs.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.String(), "config=b3313.txt confirm=false preview=1024x512")

	test.ExpectSuccess(t, q.SetDefaults())
	test.ExpectEquality(t, q.String(), "config=paintingcfg.txt confirm=true preview=512x512")
}

func TestPreferencesFromFile(t *testing.T) {
	p, err := prefs.NewPreferences(tmpPrefFile(t, "[painting64]\nconfirm = no\npreview.height = 300\n"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.String(), "config=paintingcfg.txt confirm=false preview=512x300")
}

func TestPreferencesPreviewSize(t *testing.T) {
	p, err := prefs.NewPreferences(tmpPrefFile(t, ""))
	test.DemandSuccess(t, err)

	err = p.PreviewWidth.Set(16)
	test.ExpectEquality(t, curated.Is(err, prefs.BadValue), true)
	test.ExpectEquality(t, p.PreviewWidth.Get().(int), prefs.DefaultPreviewWidth)

	// out of range values in the file are an error
	_, err = prefs.NewPreferences(tmpPrefFile(t, "[painting64]\npreview.width = 100000\n"))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Has(err, prefs.BadValue), true)
}
