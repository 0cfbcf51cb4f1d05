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

package register_test

import (
	"testing"

	"github.com/jetsetilly/simscript/curated"
	"github.com/jetsetilly/simscript/register"
	"github.com/jetsetilly/simscript/test"
)

func TestOrder(t *testing.T) {
	all := register.All()
	test.DemandEquality(t, len(all), 32)
	test.ExpectEquality(t, all[0].String(), "zero")
	test.ExpectEquality(t, all[16].String(), "s0")
	test.ExpectEquality(t, all[31].String(), "ra")
	test.ExpectEquality(t, register.S0, register.Register(16))
	test.ExpectEquality(t, register.RA, register.Register(31))

	for i, r := range all {
		test.ExpectEquality(t, int(r), i)
	}
}

func TestParse(t *testing.T) {
	for _, s := range []string{"s0", "$s0", "16", "$16", "S0", " $s0 "} {
		r, err := register.Parse(s)
		test.ExpectSuccess(t, err, s)
		test.ExpectEquality(t, r, register.S0, s)
	}

	r, err := register.Parse("s8")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, register.FP)

	r, err = register.Parse("$zero")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, register.Zero)

	for _, s := range []string{"s9", "32", "$-1", "", "pc"} {
		_, err := register.Parse(s)
		test.ExpectEquality(t, curated.Is(err, register.UnknownRegister), true, s)
	}
}

func TestInvalidString(t *testing.T) {
	test.ExpectEquality(t, register.Register(40).String(), "r40")
	test.ExpectEquality(t, register.Register(40).Valid(), false)
}
