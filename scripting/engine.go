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
	"sync"

	"github.com/dop251/goja"

	"github.com/jetsetilly/simscript/curated"
	"github.com/jetsetilly/simscript/logger"
)

// Engine is a JavaScript runtime with the global bindings installed. An Engine
// must only be used from one goroutine at a time, with the exception of the
// Interrupt() function.
type Engine struct {
	vm       *goja.Runtime
	bridges  Bridges
	prefs    *Preferences
	policy   LoadPolicy
	scripts  fs.FS
	bindings Bindings

	// the ''+v conversion used by log() and alert()
	concat goja.Callable

	crit sync.Mutex

	// whether Run() is in progress. interrupts are ignored otherwise
	running bool

	// the engine created by loadWithNewGlobal(), if it is running
	child *Engine
}

// NewEngine is the preferred method of initialisation for the Engine type.
//
// The prefs argument can be nil, in which case the default preferences are
// used and nothing is read from disk. The load policy is taken from the
// preferences at this point and does not change for the lifetime of the
// engine.
//
// The scripts argument is the filesystem used by load(), loadWithNewGlobal()
// and RunFile(). It can be nil.
func NewEngine(bridges Bridges, prefs *Preferences, scripts fs.FS) (*Engine, error) {
	if prefs == nil {
		var err error
		prefs, err = newPreferences()
		if err != nil {
			return nil, curated.Errorf("scripting: %v", err)
		}
	}

	return newEngine(bridges, prefs, prefs.Policy(), scripts)
}

func newEngine(bridges Bridges, prefs *Preferences, policy LoadPolicy, scripts fs.FS) (*Engine, error) {
	eng := &Engine{
		vm:      goja.New(),
		bridges: bridges,
		prefs:   prefs,
		policy:  policy,
		scripts: scripts,
	}

	// fields of Go values passed to the script (eg. the visualisation handle)
	// are named by their json tag
	eng.vm.SetFieldNameMapper(goja.TagFieldNameMapper("json", true))

	if err := eng.install(); err != nil {
		return nil, curated.Errorf("scripting: %v", err)
	}

	logger.Logf(eng, "scripting", "engine created with %d bindings (load %s)", eng.bindings.Len(), eng.policy)

	return eng, nil
}

// AllowLogging implements the logger.Permission interface.
func (eng *Engine) AllowLogging() bool {
	return eng.prefs.Logging.Get().(bool)
}

// Policy returns the load policy in effect for the engine.
func (eng *Engine) Policy() LoadPolicy {
	return eng.policy
}

// Bindings returns the table of global bindings installed in the engine.
func (eng *Engine) Bindings() *Bindings {
	return &eng.bindings
}

// Global returns the value of the named global. Returns nil if the global does
// not exist.
func (eng *Engine) Global(name string) goja.Value {
	return eng.vm.Get(name)
}

// SetArguments sets the arguments global.
func (eng *Engine) SetArguments(args ...any) error {
	return eng.vm.Set("arguments", args)
}

// Run evaluates the script source in the global scope of the engine. The name
// is used when reporting problems. Any error is of type *Problem.
func (eng *Engine) Run(name string, src string) (goja.Value, error) {
	eng.crit.Lock()
	eng.running = true
	eng.crit.Unlock()

	v, err := eng.vm.RunScript(name, src)

	// an interruption that arrived after the script finished must not affect
	// the next script
	eng.crit.Lock()
	eng.running = false
	eng.vm.ClearInterrupt()
	eng.crit.Unlock()

	if err != nil {
		p := newProblem(err)
		logger.Log(eng, "scripting", p)
		return nil, p
	}

	return v, nil
}

// RunFile reads the named file from the engine's script filesystem and runs
// it. Any error is of type *Problem.
func (eng *Engine) RunFile(name string) (goja.Value, error) {
	src, err := eng.readScript(name)
	if err != nil {
		return nil, newProblem(err)
	}
	return eng.Run(name, src)
}

// Interrupt stops the running script, including any script started by
// loadWithNewGlobal(). It is safe to call from any goroutine. Has no effect if
// Run() is not in progress.
//
// Native functions, including the bridge functions, are not interrupted.
func (eng *Engine) Interrupt(reason string) {
	eng.crit.Lock()
	defer eng.crit.Unlock()
	if eng.running {
		eng.interrupt(reason)
	}
}

// interrupt the engine and any child engine. the critical section must be
// held
func (eng *Engine) interrupt(reason string) {
	if eng.child != nil {
		eng.child.crit.Lock()
		eng.child.interrupt(reason)
		eng.child.crit.Unlock()
	}
	eng.vm.Interrupt(reason)
}
