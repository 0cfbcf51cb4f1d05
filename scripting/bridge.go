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
	"github.com/jetsetilly/simscript/register"
	"github.com/jetsetilly/simscript/visualisation"
)

// Debug is the bridge used by log() and alert().
type Debug interface {
	Log(msg string)
	Alert(msg string)
}

// Simulation is the bridge used by stop() and setSpeed().
type Simulation interface {
	Stop()
	SetClockSpeed(speed float64) error
}

// RegisterReader is optionally implemented by a Simulation bridge. If it is
// then the $<reg> globals are installed.
type RegisterReader interface {
	ReadRegister(r register.Register) (uint32, error)
}

// Visualisation is the bridge used by loadVis().
type Visualisation interface {
	Load(name string) (*visualisation.Handle, error)
}

// Bridges collects the host objects that the engine forwards to. Any field
// can be nil, in which case the corresponding global object is not installed
// and aliases that need it raise a TypeError when called.
type Bridges struct {
	Debug         Debug
	Simulation    Simulation
	Visualisation Visualisation
}
