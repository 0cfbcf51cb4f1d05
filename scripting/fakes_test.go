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
	"testing"

	"github.com/jetsetilly/simscript/register"
	"github.com/jetsetilly/simscript/scripting"
	"github.com/jetsetilly/simscript/test"
	"github.com/jetsetilly/simscript/visualisation"
)

type fakeDebug struct {
	logs   []string
	alerts []string
}

func (d *fakeDebug) Log(msg string) {
	d.logs = append(d.logs, msg)
}

func (d *fakeDebug) Alert(msg string) {
	d.alerts = append(d.alerts, msg)
}

// fakeSimulation does not implement the RegisterReader interface
type fakeSimulation struct {
	stops  int
	speeds []float64
	err    error
}

func (s *fakeSimulation) Stop() {
	s.stops++
}

func (s *fakeSimulation) SetClockSpeed(speed float64) error {
	s.speeds = append(s.speeds, speed)
	return s.err
}

type fakeRegisterSimulation struct {
	fakeSimulation
	regs    [register.Count]uint32
	readErr error
}

func (s *fakeRegisterSimulation) ReadRegister(r register.Register) (uint32, error) {
	if s.readErr != nil {
		return 0, s.readErr
	}
	return s.regs[r], nil
}

type fakeVisualisation struct {
	names  []string
	handle *visualisation.Handle
	err    error
}

func (v *fakeVisualisation) Load(name string) (*visualisation.Handle, error) {
	v.names = append(v.names, name)
	if v.err != nil {
		return nil, v.err
	}
	return v.handle, nil
}

type fakes struct {
	dbg *fakeDebug
	sim *fakeRegisterSimulation
	vis *fakeVisualisation
}

func (f fakes) bridges() scripting.Bridges {
	return scripting.Bridges{
		Debug:         f.dbg,
		Simulation:    f.sim,
		Visualisation: f.vis,
	}
}

func newFakes() fakes {
	return fakes{
		dbg: &fakeDebug{},
		sim: &fakeRegisterSimulation{},
		vis: &fakeVisualisation{
			handle: &visualisation.Handle{Name: "cache", Description: "cache contents"},
		},
	}
}

// newEngine creates an engine with default preferences and the fake bridges
func newEngine(t *testing.T, f fakes) *scripting.Engine {
	t.Helper()
	eng, err := scripting.NewEngine(f.bridges(), nil, nil)
	test.DemandSuccess(t, err)
	return eng
}

// run evaluates the source and fails the test if there is a problem
func run(t *testing.T, eng *scripting.Engine, src string) any {
	t.Helper()
	v, err := eng.Run("test.js", src)
	test.DemandSuccess(t, err)
	if v == nil {
		return nil
	}
	return v.Export()
}

// newPreferences creates preferences backed by a file in a temporary resource
// directory
func newPreferences(t *testing.T) *scripting.Preferences {
	t.Helper()
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".simscript", 0o700))

	p, err := scripting.NewPreferences()
	test.DemandSuccess(t, err)
	return p
}
