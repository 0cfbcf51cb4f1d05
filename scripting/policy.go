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
	"strings"

	"github.com/jetsetilly/simscript/curated"
)

// LoadPolicy selects the behaviour of the load() and loadWithNewGlobal()
// globals.
type LoadPolicy int

// List of valid LoadPolicy values.
const (
	// load() and loadWithNewGlobal() emit the disabled notice and do nothing
	// else
	LoadDisabled LoadPolicy = iota

	// scripts are loaded from the engine's script filesystem
	LoadEnabled
)

// UnknownLoadPolicy is returned by ParseLoadPolicy() for unrecognised strings.
const UnknownLoadPolicy = "scripting: unknown load policy (%s)"

func (p LoadPolicy) String() string {
	switch p {
	case LoadDisabled:
		return "disabled"
	case LoadEnabled:
		return "enabled"
	}
	return "unknown"
}

// ParseLoadPolicy converts a configuration string to a LoadPolicy. Case and
// surrounding space are ignored.
func ParseLoadPolicy(s string) (LoadPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "disabled":
		return LoadDisabled, nil
	case "enabled":
		return LoadEnabled, nil
	}
	return LoadDisabled, curated.Errorf(UnknownLoadPolicy, s)
}
