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

package scripting_test

import (
	"os"
	"strings"
	"testing"

	"github.com/jetsetilly/simscript/curated"
	"github.com/jetsetilly/simscript/prefs"
	"github.com/jetsetilly/simscript/scripting"
	"github.com/jetsetilly/simscript/test"
)

func TestParseLoadPolicy(t *testing.T) {
	p, err := scripting.ParseLoadPolicy("disabled")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, scripting.LoadDisabled)

	p, err = scripting.ParseLoadPolicy(" Enabled ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, scripting.LoadEnabled)

	_, err = scripting.ParseLoadPolicy("sometimes")
	test.ExpectEquality(t, curated.Is(err, scripting.UnknownLoadPolicy), true)

	test.ExpectEquality(t, scripting.LoadDisabled.String(), "disabled")
	test.ExpectEquality(t, scripting.LoadEnabled.String(), "enabled")
}

func TestPreferencesDefaults(t *testing.T) {
	p := newPreferences(t)
	test.ExpectEquality(t, p.Policy(), scripting.LoadDisabled)
	test.ExpectEquality(t, p.Logging.Get().(bool), true)

	// invalid policies are rejected and the previous value is kept
	err := p.LoadPolicy.Set("sometimes")
	test.ExpectEquality(t, curated.Is(err, scripting.UnknownLoadPolicy), true)
	test.ExpectEquality(t, p.Policy(), scripting.LoadDisabled)

	test.DemandSuccess(t, p.LoadPolicy.Set("enabled"))
	test.DemandSuccess(t, p.Logging.Set(false))
	test.DemandSuccess(t, p.SetDefaults())
	test.ExpectEquality(t, p.Policy(), scripting.LoadDisabled)
	test.ExpectEquality(t, p.Logging.Get().(bool), true)
}

func TestPreferencesDisk(t *testing.T) {
	p := newPreferences(t)
	test.DemandSuccess(t, p.LoadPolicy.Set("enabled"))
	test.DemandSuccess(t, p.Save())

	b, err := os.ReadFile(".simscript/" + prefs.DefaultPrefsFile)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(string(b), "[scripting]"), true)
	test.ExpectEquality(t, strings.Contains(string(b), `loadpolicy = "enabled"`), true)

	// a new instance sees the saved value
	q, err := scripting.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Policy(), scripting.LoadEnabled)

	// an engine takes the policy from its preferences
	eng, err := scripting.NewEngine(scripting.Bridges{}, q, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, eng.Policy(), scripting.LoadEnabled)
}

func TestPreferencesCommandLine(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".simscript", 0o700))

	prefs.PushCommandLineStack("scripting.loadpolicy::enabled")
	p, err := scripting.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Policy(), scripting.LoadEnabled)

	// the command line value has been used
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestPreferencesCommandLineInvalid(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".simscript", 0o700))

	prefs.PushCommandLineStack("scripting.logging::yes")
	_, err := scripting.NewPreferences()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestPreferencesWithoutDisk(t *testing.T) {
	var p scripting.Preferences
	test.ExpectEquality(t, curated.Is(p.Save(), scripting.NoPrefsDisk), true)
	test.ExpectEquality(t, curated.Is(p.Load(), scripting.NoPrefsDisk), true)
}
