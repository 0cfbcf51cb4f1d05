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

package scripting

import (
	"fmt"
	"strings"
)

// Kind describes how a global binding behaves.
type Kind int

// List of valid Kind values.
const (
	// calls a bridge method
	Forward Kind = iota

	// the same value as another binding
	Alias

	// the disabled notice
	Sentinel

	// loads a script from the script filesystem
	Loader

	// an object installed in the global scope
	Object

	// a register accessor of the form $s0
	RegisterAccessor
)

func (k Kind) String() string {
	switch k {
	case Forward:
		return "forward"
	case Alias:
		return "alias"
	case Sentinel:
		return "sentinel"
	case Loader:
		return "loader"
	case Object:
		return "object"
	case RegisterAccessor:
		return "register"
	}
	return "unknown"
}

// Binding is a single name installed in the global scope of an engine.
type Binding struct {
	Name   string
	Target string
	Kind   Kind
}

func (b Binding) String() string {
	if b.Target == "" {
		return fmt.Sprintf("%s (%s)", b.Name, b.Kind)
	}
	return fmt.Sprintf("%s -> %s (%s)", b.Name, b.Target, b.Kind)
}

// Bindings is the ordered table of names installed by an engine.
type Bindings struct {
	entries []Binding
}

func (bs *Bindings) add(name string, target string, kind Kind) {
	bs.entries = append(bs.entries, Binding{Name: name, Target: target, Kind: kind})
}

// Len returns the number of bindings.
func (bs *Bindings) Len() int {
	return len(bs.entries)
}

// All returns a copy of every binding in the order they were installed.
func (bs *Bindings) All() []Binding {
	return append([]Binding(nil), bs.entries...)
}

// Lookup returns the binding with the given name.
func (bs *Bindings) Lookup(name string) (Binding, bool) {
	for _, b := range bs.entries {
		if b.Name == name {
			return b, true
		}
	}
	return Binding{}, false
}

// Filter returns every binding of the specified kind.
func (bs *Bindings) Filter(kind Kind) []Binding {
	var f []Binding
	for _, b := range bs.entries {
		if b.Kind == kind {
			f = append(f, b)
		}
	}
	return f
}

func (bs *Bindings) String() string {
	var s strings.Builder
	for _, b := range bs.entries {
		s.WriteString(b.String())
		s.WriteString("\n")
	}
	return s.String()
}
