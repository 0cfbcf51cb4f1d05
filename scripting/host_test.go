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
	"testing"
	"time"

	"github.com/jetsetilly/simscript/console"
	"github.com/jetsetilly/simscript/curated"
	"github.com/jetsetilly/simscript/notifications"
	"github.com/jetsetilly/simscript/register"
	"github.com/jetsetilly/simscript/scripting"
	"github.com/jetsetilly/simscript/simulation"
	"github.com/jetsetilly/simscript/terminal/plainterm"
	"github.com/jetsetilly/simscript/test"
	"github.com/jetsetilly/simscript/visualisation"
)

// the engine with the bridges implemented by the host packages
func TestHostBridges(t *testing.T) {
	p := newPreferences(t)

	var rec notifications.Recorder
	tw := &test.Writer{}
	term := &plainterm.PlainTerminal{Output: tw}

	con := console.NewConsole(term, &rec)
	sim, err := simulation.NewSimulation(&rec)
	test.DemandSuccess(t, err)
	vis := visualisation.NewManager(&rec)
	test.DemandSuccess(t, vis.Register("cache", "cache contents"))

	eng, err := scripting.NewEngine(scripting.Bridges{
		Debug:         con,
		Simulation:    sim,
		Visualisation: vis,
	}, p, nil)
	test.DemandSuccess(t, err)
	con.SetPermission(eng)

	run(t, eng, "log('hello'); alert('look out'); load('anything')")
	test.ExpectEquality(t, tw.String(), "hello\n! look out\ndisabled\n")
	test.ExpectEquality(t, rec.Count(notifications.NotifyAlert), 1)

	run(t, eng, "setSpeed(50)")
	test.ExpectEquality(t, sim.ClockSpeed(), 50*time.Millisecond)
	test.ExpectEquality(t, rec.Count(notifications.NotifyClockSpeed), 1)

	_, err = eng.Run("test.js", "setSpeed(0)")
	test.ExpectEquality(t, curated.Has(err, simulation.InvalidClockSpeed), true)
	test.ExpectEquality(t, sim.ClockSpeed(), 50*time.Millisecond)

	test.ExpectEquality(t, run(t, eng, "loadVis('cache').name"), "cache")
	test.DemandEquality(t, vis.Current() != nil, true)
	test.ExpectEquality(t, vis.Current().Name, "cache")

	_, err = eng.Run("test.js", "loadVis('nothing')")
	test.ExpectEquality(t, curated.Has(err, visualisation.UnknownVisualisation), true)

	test.DemandSuccess(t, sim.WriteRegister(register.SP, 0x7fff))
	test.ExpectEquality(t, run(t, eng, "$sp.get()"), any(int64(0x7fff)))
	test.ExpectEquality(t, run(t, eng, "$zero.get()"), any(int64(0)))

	// stop() halts a running clock
	test.DemandSuccess(t, sim.Start(func() error { return nil }))
	run(t, eng, "exit()")
	test.ExpectSuccess(t, sim.Wait())
	test.ExpectEquality(t, sim.Running(), false)
	test.ExpectEquality(t, rec.Count(notifications.NotifySimulationStopped), 1)
}
