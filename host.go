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

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/dop251/goja"

	"github.com/jetsetilly/simscript/console"
	"github.com/jetsetilly/simscript/logger"
	"github.com/jetsetilly/simscript/notifications"
	"github.com/jetsetilly/simscript/scripting"
	"github.com/jetsetilly/simscript/simulation"
	"github.com/jetsetilly/simscript/terminal"
	"github.com/jetsetilly/simscript/visualisation"
)

// the visualisations known to the host
var visualisations = []struct {
	name        string
	description string
}{
	{name: "tower-of-hanoi", description: "tower of hanoi puzzle"},
	{name: "list", description: "list of values with comparisons and swaps"},
	{name: "frame", description: "stack frame of the current subroutine"},
}

// host connects the scripting engine to the bridges and the terminal.
type host struct {
	output terminal.Output

	con *console.Console
	sim *simulation.Simulation
	vis *visualisation.Manager
	eng *scripting.Engine
}

func newHost(output terminal.Output, scripts fs.FS) (*host, error) {
	h := &host{
		output: output,
	}

	var err error

	h.con = console.NewConsole(output, h)

	h.sim, err = simulation.NewSimulation(h)
	if err != nil {
		return nil, err
	}

	h.vis = visualisation.NewManager(h)
	for _, v := range visualisations {
		err = h.vis.Register(v.name, v.description)
		if err != nil {
			return nil, err
		}
	}

	p, err := scripting.NewPreferences()
	if err != nil {
		return nil, err
	}

	h.eng, err = scripting.NewEngine(scripting.Bridges{
		Debug:         h.con,
		Simulation:    h.sim,
		Visualisation: h.vis,
	}, p, scripts)
	if err != nil {
		return nil, err
	}

	// messages from the script are only recorded in the log if the engine
	// allows it
	h.con.SetPermission(h.eng)

	return h, nil
}

// Notify implements the notifications.Notify interface.
func (h *host) Notify(notice notifications.Notice, detail string) error {
	switch notice {
	case notifications.NotifySimulationStopped:
		h.output.TermPrintLine(terminal.StyleFeedback, "simulation stopped")
	case notifications.NotifyClockSpeed:
		h.output.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("clock speed: %sms", detail))
	case notifications.NotifyVisualisationLoaded:
		h.output.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("visualisation: %s", detail))
	}
	logger.Logf(logger.Allow, "host", "%s %s", notice, detail)
	return nil
}

// interrupt the running script and stop the clock
func (h *host) interrupt() {
	h.eng.Interrupt("interrupted")
	h.sim.Stop()
}

// the function called on every clock tick
const tickFunction = "onTick"

// clock starts the simulation clock and calls the tick function on every tick
// until the clock is stopped. the tick function is called on the calling
// goroutine
func (h *host) clock() error {
	if _, ok := goja.AssertFunction(h.eng.Global(tickFunction)); !ok {
		return fmt.Errorf("no %s() function defined", tickFunction)
	}

	ticks := make(chan struct{})
	results := make(chan error)

	err := h.sim.Start(func() error {
		ticks <- struct{}{}
		return <-results
	})
	if err != nil {
		return err
	}

	done := h.sim.Done()

	for {
		select {
		case <-ticks:
			_, err := h.eng.Run(tickFunction, tickFunction+"()")
			results <- err
		case <-done:
			err := h.sim.Wait()

			// interrupting the script is a normal way of ending
			var p *scripting.Problem
			if errors.As(err, &p) && p.Severity == scripting.NonCritical {
				return nil
			}
			return err
		}
	}
}

// scriptName converts a command line argument to a name in the scripts
// filesystem
func scriptName(arg string) (string, error) {
	name := path.Clean(filepath.ToSlash(arg))
	if !fs.ValidPath(name) {
		return "", fmt.Errorf("script must be inside the scripts directory: %s", arg)
	}
	return name, nil
}
