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

package simulation

import (
	"fmt"

	"github.com/jetsetilly/simscript/curated"
	"github.com/jetsetilly/simscript/notifications"
	"github.com/jetsetilly/simscript/paths"
	"github.com/jetsetilly/simscript/prefs"
)

// Preferences for the simulation.
type Preferences struct {
	dsk *prefs.Disk

	// milliseconds between clock ticks
	ClockSpeed prefs.Float
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

func newPreferences(sim *Simulation) (*Preferences, error) {
	p := &Preferences{}

	err := p.ClockSpeed.Set(DefaultClockSpeed)
	if err != nil {
		return nil, err
	}

	// values loaded from disk are validated in the same way as values from a
	// script
	p.ClockSpeed.SetHookPre(func(v prefs.Value) error {
		return validateClockSpeed(v.(float64))
	})

	p.dsk, err = prefs.NewDisk(paths.ResourcePath("", prefs.DefaultPrefsFile))
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("simulation.clockspeed", &p.ClockSpeed)
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

	// only notify changes after the initial load
	p.ClockSpeed.SetHookPost(func(v prefs.Value) error {
		return sim.notify.Notify(notifications.NotifyClockSpeed, fmt.Sprintf("%v", v))
	})

	return p, nil
}

// Load simulation preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save simulation preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// SetDefaults reverts all simulation preferences to their default values.
func (p *Preferences) SetDefaults() error {
	return p.ClockSpeed.Set(DefaultClockSpeed)
}
