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

// Package scripting embeds a JavaScript engine (github.com/dop251/goja) and
// installs the global aliases that user scripts rely on. The aliases forward to
// three bridges supplied by the host: debug, simulation and visualisation.
//
//	log(msg)       -> debug.log
//	alert(msg)     -> debug.alert
//	print          -> same function as log
//	stop()         -> simulation.stop
//	exit, quit     -> same function as stop
//	setSpeed(s)    -> simulation.setClockSpeed
//	loadVis(name)  -> visualisation.load
//
// The load() and loadWithNewGlobal() functions are controlled by the
// LoadPolicy preference. By default they are replaced by a sentinel that
// emits "disabled" and does nothing else.
//
// The Register object (and its alias reg) maps register names to ids. When
// the simulation bridge can also read registers, each register has a global
// of the form $s0 with the fields id and get.
//
// The bindings installed by an Engine can be inspected with the Bindings()
// function.
package scripting
