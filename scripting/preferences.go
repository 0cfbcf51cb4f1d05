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

	"github.com/jetsetilly/simscript/curated"
	"github.com/jetsetilly/simscript/paths"
	"github.com/jetsetilly/simscript/prefs"
)

// NoPrefsDisk is returned when loading or saving preferences that were not
// created with NewPreferences().
const NoPrefsDisk = "scripting: preferences are not associated with a file"

// Preferences for the scripting engine.
type Preferences struct {
	dsk *prefs.Disk

	// "disabled" or "enabled". see ParseLoadPolicy()
	LoadPolicy prefs.String

	// whether the engine may write to the central logger
	Logging prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return fmt.Sprintf("scripting.loadpolicy :: %s\nscripting.logging :: %s\n", &p.LoadPolicy, &p.Logging)
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	p, err := newPreferences()
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(paths.ResourcePath("", prefs.DefaultPrefsFile))
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("scripting.loadpolicy", &p.LoadPolicy)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("scripting.logging", &p.Logging)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// newPreferences creates preferences with default values and no file.
func newPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.LoadPolicy.SetHookPre(func(v prefs.Value) error {
		_, err := ParseLoadPolicy(v.(string))
		return err
	})

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all scripting preferences to their default values.
func (p *Preferences) SetDefaults() error {
	if err := p.LoadPolicy.Set(LoadDisabled.String()); err != nil {
		return err
	}
	return p.Logging.Set(true)
}

// Policy returns the current value of the LoadPolicy preference.
func (p *Preferences) Policy() LoadPolicy {
	// the pre hook means that the value is always valid
	policy, _ := ParseLoadPolicy(p.LoadPolicy.String())
	return policy
}

// Load scripting preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return curated.Errorf(NoPrefsDisk)
	}
	return p.dsk.Load()
}

// Save scripting preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return curated.Errorf(NoPrefsDisk)
	}
	return p.dsk.Save()
}
