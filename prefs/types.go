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

package prefs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Chlorobite/B3313tools-Painting64/curated"
)

// Sentinel error patterns.
const (
	CannotConvert = "prefs: cannot convert %T to %s"
	BadValue      = "prefs: %s: %v"
)

// Value represents the actual Go preference value.
type Value any

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
}

// hooks are called either side of a change of value. both are optional.
type hooks struct {
	pre  func(value Value) error
	post func(value Value) error
}

// SetHookPre sets the callback function to be called just before the value
// is updated. The value is not updated if the callback returns an error.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.pre = f
}

// SetHookPost sets the callback function to be called just after the value is
// updated. The callback is called even if the value has not changed.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.post = f
}

// update calls store() between the two hook functions.
func (h *hooks) update(nv Value, store func()) error {
	if h.pre != nil {
		if err := h.pre(nv); err != nil {
			return err
		}
	}
	store()
	if h.post != nil {
		return h.post(nv)
	}
	return nil
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	hooks
	value bool
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.value)
}

// Set new value to Bool type. New value must be of type bool or string. The
// strings "true", "yes" and "1" (case insensitive) are true. Any other string
// is false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "1":
			nv = true
		}
	default:
		return curated.Errorf(CannotConvert, v, "prefs.Bool")
	}
	return p.update(nv, func() { p.value = nv })
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.value
}

// String implements a string type in the prefs system.
type String struct {
	hooks
	value string
}

func (p *String) String() string {
	return p.value
}

// Set new value to String type. Values that are not strings are formatted
// with the %v verb.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)
	return p.update(nv, func() { p.value = nv })
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.value
}

// Int implements an integer type in the prefs system.
type Int struct {
	hooks
	value int
}

func (p *Int) String() string {
	return strconv.Itoa(p.value)
}

// Set new value to Int type. New value can be an int or a string.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int:
		nv = v
	case int32:
		nv = int(v)
	case int64:
		nv = int(v)
	case string:
		var err error
		nv, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return curated.Errorf(BadValue, "prefs.Int", err)
		}
	default:
		return curated.Errorf(CannotConvert, v, "prefs.Int")
	}
	return p.update(nv, func() { p.value = nv })
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return p.value
}
