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

	"github.com/jetsetilly/simscript/register"
)

// installRegisters adds the Register object and its alias reg. the $<reg>
// accessors are only added if the simulation bridge can read registers
func (eng *Engine) installRegisters(in *installer) {
	ids := eng.vm.NewObject()
	for _, r := range register.All() {
		in.method(ids, r.String(), eng.vm.ToValue(int(r)))
	}
	in.set("Register", ids)
	eng.bindings.add("Register", "", Object)
	in.set("reg", ids)
	eng.bindings.add("reg", "Register", Alias)

	rd, ok := eng.bridges.Simulation.(RegisterReader)
	if !ok {
		return
	}

	for _, r := range register.All() {
		acc := eng.vm.NewObject()
		in.method(acc, "id", eng.vm.ToValue(int(r)))
		in.method(acc, "get", eng.native("get", func(_ goja.FunctionCall) goja.Value {
			v, err := rd.ReadRegister(r)
			if err != nil {
				eng.throw(err)
			}
			return eng.vm.ToValue(v)
		}))

		name := "$" + r.String()
		in.set(name, acc)
		eng.bindings.add(name, "Register."+r.String(), RegisterAccessor)
	}
}
