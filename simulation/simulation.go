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

// Package simulation is the host side of the simulation bridge. It keeps the
// clock that drives the processor and the register file that scripts can
// inspect.
//
// The processor itself is not part of this package. The host gives Start() a
// step function, which is called once per clock tick until Stop() is called or
// the step function returns an error.
package simulation

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/jetsetilly/simscript/curated"
	"github.com/jetsetilly/simscript/logger"
	"github.com/jetsetilly/simscript/notifications"
	"github.com/jetsetilly/simscript/register"
)

// DefaultClockSpeed is the number of milliseconds between clock ticks.
const DefaultClockSpeed = 100.0

// Sentinal error patterns.
const (
	InvalidClockSpeed = "simulation: invalid clock speed (%v)"
	AlreadyRunning    = "simulation: already running"
	InvalidRegister   = "simulation: invalid register (%v)"
)

// Simulation implements the simulation bridge.
type Simulation struct {
	Prefs *Preferences

	notify notifications.Notify

	crit sync.Mutex

	// register file. $zero is never written to
	regs [register.Count]uint32

	running bool
	quit    chan struct{}
	done    chan struct{}

	// error returned by the step function
	err error
}

// NewSimulation is the preferred method of initialisation for the Simulation
// type. The notify argument can be nil.
func NewSimulation(notify notifications.Notify) (*Simulation, error) {
	if notify == nil {
		notify = notifications.Discard
	}

	sim := &Simulation{
		notify: notify,
	}

	var err error
	sim.Prefs, err = newPreferences(sim)
	if err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}

	return sim, nil
}

func validateClockSpeed(speed float64) error {
	if math.IsNaN(speed) || math.IsInf(speed, 0) || speed <= 0 {
		return curated.Errorf(InvalidClockSpeed, speed)
	}
	return nil
}

// SetClockSpeed changes the number of milliseconds between clock ticks. The
// new speed takes effect on the next tick.
func (sim *Simulation) SetClockSpeed(speed float64) error {
	return sim.Prefs.ClockSpeed.Set(speed)
}

// ClockSpeed returns the time between clock ticks.
func (sim *Simulation) ClockSpeed() time.Duration {
	ms := sim.Prefs.ClockSpeed.Get().(float64)
	return time.Duration(ms * float64(time.Millisecond))
}

// Start the clock. The step function is called once immediately and then once
// every clock tick. The clock runs in its own goroutine.
func (sim *Simulation) Start(step func() error) error {
	sim.crit.Lock()
	defer sim.crit.Unlock()

	if sim.running {
		return curated.Errorf(AlreadyRunning)
	}

	sim.running = true
	sim.err = nil
	sim.quit = make(chan struct{})
	sim.done = make(chan struct{})

	go sim.run(step, sim.quit, sim.done)

	return nil
}

func (sim *Simulation) run(step func() error, quit chan struct{}, done chan struct{}) {
	defer close(done)

	for {
		select {
		case <-quit:
			return
		default:
		}

		if err := step(); err != nil {
			logger.Logf(logger.Allow, "simulation", "step: %v", err)
			sim.crit.Lock()
			sim.err = err
			sim.crit.Unlock()
			sim.Stop()
			return
		}

		t := time.NewTimer(sim.ClockSpeed())
		select {
		case <-quit:
			t.Stop()
			return
		case <-t.C:
		}
	}
}

// Stop the clock. It is safe to call Stop() when the clock is not running and
// to call it more than once. NotifySimulationStopped is only sent when a
// running clock is stopped.
func (sim *Simulation) Stop() {
	sim.crit.Lock()
	if !sim.running {
		sim.crit.Unlock()
		return
	}
	sim.running = false
	close(sim.quit)
	sim.crit.Unlock()

	err := sim.notify.Notify(notifications.NotifySimulationStopped, "")
	if err != nil {
		logger.Log(logger.Allow, "simulation", err)
	}
}

// Wait blocks until the clock has stopped. Returns the error returned by the
// step function, if any.
func (sim *Simulation) Wait() error {
	sim.crit.Lock()
	done := sim.done
	sim.crit.Unlock()

	if done == nil {
		return nil
	}
	<-done

	sim.crit.Lock()
	defer sim.crit.Unlock()
	return sim.err
}

// Done returns a channel that is closed when the clock stops. Returns nil if
// the clock has never been started.
func (sim *Simulation) Done() <-chan struct{} {
	sim.crit.Lock()
	defer sim.crit.Unlock()
	return sim.done
}

// Running returns true if the clock is running.
func (sim *Simulation) Running() bool {
	sim.crit.Lock()
	defer sim.crit.Unlock()
	return sim.running
}

// ReadRegister returns the current value of the register.
func (sim *Simulation) ReadRegister(r register.Register) (uint32, error) {
	if !r.Valid() {
		return 0, curated.Errorf(InvalidRegister, int(r))
	}
	sim.crit.Lock()
	defer sim.crit.Unlock()
	return sim.regs[r], nil
}

// WriteRegister sets the value of the register. Writes to $zero are ignored.
func (sim *Simulation) WriteRegister(r register.Register, v uint32) error {
	if !r.Valid() {
		return curated.Errorf(InvalidRegister, int(r))
	}
	if r == register.Zero {
		return nil
	}
	sim.crit.Lock()
	defer sim.crit.Unlock()
	sim.regs[r] = v
	return nil
}

// ResetRegisters sets every register to zero.
func (sim *Simulation) ResetRegisters() {
	sim.crit.Lock()
	defer sim.crit.Unlock()
	clear(sim.regs[:])
}
