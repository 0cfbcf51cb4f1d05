// This file is part of Simscript.
//
// Simscript is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Simscript is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Simscript.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Value represents the actual Go preference value.
type Value any

// types support by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
}

// hooks are shared by all preference types. the pre hook can veto a new value
// by returning an error. the post hook is called after the value has changed.
type hooks struct {
	pre  func(value Value) error
	post func(value Value) error
}

// SetHookPre sets the function to be called before the value is changed.
// Returning an error from the hook prevents the change.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.pre = f
}

// SetHookPost sets the function to be called after the value has changed.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.post = f
}

func (h *hooks) store(nv Value, store func()) error {
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
	crit  sync.Mutex
	value bool
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.Get().(bool))
}

// Set new value to Bool type. New value must be of type bool or a string
// accepted by strconv.ParseBool().
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		var err error
		nv, err = strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Bool: %w", v, err)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}

	return p.store(nv, func() {
		p.crit.Lock()
		defer p.crit.Unlock()
		p.value = nv
	})
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.value
}

// String implements a string type in the prefs system.
type String struct {
	hooks
	crit  sync.Mutex
	value string
}

func (p *String) String() string {
	return p.Get().(string)
}

// Set new value to String type. Any value type is accepted and converted with
// the %v verb.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)
	return p.store(nv, func() {
		p.crit.Lock()
		defer p.crit.Unlock()
		p.value = nv
	})
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.value
}

// Float implements a floating point type in the prefs system.
type Float struct {
	hooks
	crit  sync.Mutex
	value float64
}

func (p *Float) String() string {
	return strconv.FormatFloat(p.Get().(float64), 'f', -1, 64)
}

// Set new value to Float type. New value can be any integer or float type or
// a string that can be parsed as a float.
func (p *Float) Set(v Value) error {
	var nv float64
	switch v := v.(type) {
	case float64:
		nv = v
	case float32:
		nv = float64(v)
	case int:
		nv = float64(v)
	case int64:
		nv = float64(v)
	case string:
		var err error
		nv, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Float: %w", v, err)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Float", v)
	}

	return p.store(nv, func() {
		p.crit.Lock()
		defer p.crit.Unlock()
		p.value = nv
	})
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.value
}
