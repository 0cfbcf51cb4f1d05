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
	"io/fs"

	"github.com/dop251/goja"

	"github.com/jetsetilly/simscript/curated"
)

// Sentinal error patterns.
const (
	NoScripts  = "scripting: no script filesystem"
	LoadFailed = "scripting: cannot load %s (%v)"
)

// installLoaders adds load() and loadWithNewGlobal() according to the load
// policy. the _internal object is always present
func (eng *Engine) installLoaders(in *installer) {
	disabled := eng.native("disabled", func(_ goja.FunctionCall) goja.Value {
		eng.disabled()
		return goja.Undefined()
	})

	internal := eng.vm.NewObject()
	in.method(internal, "disabled", disabled)
	in.set("_internal", internal)
	eng.bindings.add("_internal.disabled", "", Sentinel)

	switch eng.policy {
	case LoadEnabled:
		in.set("load", eng.native("load", eng.load))
		eng.bindings.add("load", "scripts", Loader)
		in.set("loadWithNewGlobal", eng.native("loadWithNewGlobal", eng.loadWithNewGlobal))
		eng.bindings.add("loadWithNewGlobal", "scripts", Loader)
	default:
		in.set("load", disabled)
		eng.bindings.add("load", "_internal.disabled", Sentinel)
		in.set("loadWithNewGlobal", disabled)
		eng.bindings.add("loadWithNewGlobal", "_internal.disabled", Sentinel)
	}
}

// readScript returns the contents of the named file in the script filesystem
func (eng *Engine) readScript(name string) (string, error) {
	if eng.scripts == nil {
		return "", curated.Errorf(NoScripts)
	}
	b, err := fs.ReadFile(eng.scripts, name)
	if err != nil {
		return "", curated.Errorf(LoadFailed, name, err)
	}
	return string(b), nil
}

// load evaluates a script in the global scope of the calling script
func (eng *Engine) load(call goja.FunctionCall) goja.Value {
	name := call.Argument(0).String()

	src, err := eng.readScript(name)
	if err != nil {
		eng.throw(err)
	}

	v, err := eng.vm.RunScript(name, src)
	if err != nil {
		// exceptions from the loaded script are raised again in the calling
		// script. interruptions must continue to unwind the runtime
		switch err.(type) {
		case *goja.Exception, *goja.InterruptedError, *goja.StackOverflowError:
			panic(err)
		}
		eng.throw(err)
	}

	return v
}

// loadWithNewGlobal evaluates a script in a new engine with the same bridges,
// preferences and script filesystem. any additional arguments are available
// to the script in the arguments global. the result is exported from the new
// engine and converted for the calling engine
func (eng *Engine) loadWithNewGlobal(call goja.FunctionCall) goja.Value {
	name := call.Argument(0).String()

	src, err := eng.readScript(name)
	if err != nil {
		eng.throw(err)
	}

	child, err := newEngine(eng.bridges, eng.prefs, eng.policy, eng.scripts)
	if err != nil {
		eng.throw(err)
	}

	args := []any{}
	if len(call.Arguments) > 1 {
		for _, a := range call.Arguments[1:] {
			args = append(args, a.Export())
		}
	}
	if err := child.SetArguments(args...); err != nil {
		eng.throw(err)
	}

	eng.crit.Lock()
	eng.child = child
	eng.crit.Unlock()

	defer func() {
		eng.crit.Lock()
		eng.child = nil
		eng.crit.Unlock()
	}()

	v, err := child.vm.RunScript(name, src)
	if err != nil {
		// an interruption continues to unwind this runtime. an exception
		// belongs to the other runtime and cannot be raised directly in this
		// one
		if _, ok := err.(*goja.InterruptedError); ok {
			panic(err)
		}
		eng.throw(err)
	}
	if goja.IsUndefined(v) {
		return goja.Undefined()
	}

	return eng.vm.ToValue(v.Export())
}
