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
	"github.com/dop251/goja"

	"github.com/jetsetilly/simscript/logger"
)

// DisabledNotice is emitted by the disabled sentinel.
const DisabledNotice = "disabled"

// converts a value to text with the default hint, so valueOf() is preferred to
// toString() and symbols raise a TypeError
const textConversion = "(function(m) { return '' + m })"

// text converts the value in the same way as ''+v in the script. exceptions
// raised by the conversion continue in the script
func (eng *Engine) text(v goja.Value) string {
	s, err := eng.concat(goja.Undefined(), v)
	if err != nil {
		panic(err)
	}
	return s.String()
}

// native creates a function value with the given name. the returned value
// should be used for every alias of the function so that the aliases are
// identical in the script
func (eng *Engine) native(name string, f func(goja.FunctionCall) goja.Value) goja.Value {
	fn := eng.vm.ToValue(f)
	if obj, ok := fn.(*goja.Object); ok {
		_ = obj.DefineDataProperty("name", eng.vm.ToValue(name), goja.FLAG_FALSE, goja.FLAG_TRUE, goja.FLAG_FALSE)
	}
	return fn
}

// unavailable raises a TypeError in the script
func (eng *Engine) unavailable(bridge string) {
	panic(eng.vm.NewTypeError("%s bridge is not available", bridge))
}

// throw raises an error from a bridge in the script. the error can be
// retrieved from the resulting Problem with errors.Is() or errors.As()
func (eng *Engine) throw(err error) {
	panic(eng.vm.NewGoError(err))
}

// installer collects the first error from a sequence of global assignments
type installer struct {
	eng *Engine
	err error
}

func (in *installer) set(name string, value any) {
	if in.err != nil {
		return
	}
	in.err = in.eng.vm.Set(name, value)
}

func (in *installer) method(obj *goja.Object, name string, value goja.Value) {
	if in.err != nil {
		return
	}
	in.err = obj.Set(name, value)
}

// install the global bindings. bridge objects are installed first, followed
// by the aliases, the load functions and the register bindings
func (eng *Engine) install() error {
	in := &installer{eng: eng}

	conv, err := eng.vm.RunString(textConversion)
	if err != nil {
		return err
	}
	eng.concat, _ = goja.AssertFunction(conv)

	log := eng.native("log", func(call goja.FunctionCall) goja.Value {
		if eng.bridges.Debug == nil {
			eng.unavailable("debug")
		}
		eng.bridges.Debug.Log(eng.text(call.Argument(0)))
		return goja.Undefined()
	})

	alert := eng.native("alert", func(call goja.FunctionCall) goja.Value {
		if eng.bridges.Debug == nil {
			eng.unavailable("debug")
		}
		eng.bridges.Debug.Alert(eng.text(call.Argument(0)))
		return goja.Undefined()
	})

	// any arguments are ignored
	stop := eng.native("stop", func(_ goja.FunctionCall) goja.Value {
		if eng.bridges.Simulation == nil {
			eng.unavailable("simulation")
		}
		eng.bridges.Simulation.Stop()
		return goja.Undefined()
	})

	setClockSpeed := func(call goja.FunctionCall) goja.Value {
		if eng.bridges.Simulation == nil {
			eng.unavailable("simulation")
		}
		if err := eng.bridges.Simulation.SetClockSpeed(call.Argument(0).ToFloat()); err != nil {
			eng.throw(err)
		}
		return goja.Undefined()
	}

	loadVis := func(call goja.FunctionCall) goja.Value {
		if eng.bridges.Visualisation == nil {
			eng.unavailable("visualisation")
		}
		h, err := eng.bridges.Visualisation.Load(call.Argument(0).String())
		if err != nil {
			eng.throw(err)
		}
		if h == nil {
			return goja.Null()
		}
		return eng.vm.ToValue(h)
	}

	if eng.bridges.Debug != nil {
		obj := eng.vm.NewObject()
		in.method(obj, "log", log)
		in.method(obj, "alert", alert)
		in.set("debug", obj)
		eng.bindings.add("debug", "", Object)
	}

	if eng.bridges.Simulation != nil {
		obj := eng.vm.NewObject()
		in.method(obj, "stop", stop)
		in.method(obj, "setClockSpeed", eng.native("setClockSpeed", setClockSpeed))
		in.set("simulation", obj)
		eng.bindings.add("simulation", "", Object)
	}

	if eng.bridges.Visualisation != nil {
		obj := eng.vm.NewObject()
		in.method(obj, "load", eng.native("load", loadVis))
		in.set("visualisation", obj)
		eng.bindings.add("visualisation", "", Object)
	}

	in.set("log", log)
	eng.bindings.add("log", "debug.log", Forward)
	in.set("alert", alert)
	eng.bindings.add("alert", "debug.alert", Forward)
	in.set("print", log)
	eng.bindings.add("print", "log", Alias)

	in.set("stop", stop)
	eng.bindings.add("stop", "simulation.stop", Forward)
	in.set("exit", stop)
	eng.bindings.add("exit", "stop", Alias)
	in.set("quit", stop)
	eng.bindings.add("quit", "stop", Alias)

	in.set("setSpeed", eng.native("setSpeed", setClockSpeed))
	eng.bindings.add("setSpeed", "simulation.setClockSpeed", Forward)

	in.set("loadVis", eng.native("loadVis", loadVis))
	eng.bindings.add("loadVis", "visualisation.load", Forward)

	eng.installLoaders(in)
	eng.installRegisters(in)

	return in.err
}

// disabled is the sentinel installed in place of the script loading functions
func (eng *Engine) disabled() {
	if eng.bridges.Debug != nil {
		eng.bridges.Debug.Log(DisabledNotice)
	}
	logger.Log(logger.Allow, "scripting", DisabledNotice)
}
