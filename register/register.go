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

// Package register names the 32 general purpose registers of the MIPS
// processor. A Register is the hardware number of the register, which is also
// the value scripts see for Register.<name>.
package register

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/simscript/curated"
)

// Register is the hardware number of a MIPS general purpose register.
type Register int

// List of valid Register values in hardware order.
const (
	Zero Register = iota
	AT
	V0
	V1
	A0
	A1
	A2
	A3
	T0
	T1
	T2
	T3
	T4
	T5
	T6
	T7
	S0
	S1
	S2
	S3
	S4
	S5
	S6
	S7
	T8
	T9
	K0
	K1
	GP
	SP
	FP
	RA

	// Count is the number of registers
	Count int = iota
)

var names = [Count]string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

// Sentinal error patterns.
const (
	UnknownRegister = "register: unknown register (%s)"
)

func (r Register) String() string {
	if !r.Valid() {
		return "r" + strconv.Itoa(int(r))
	}
	return names[r]
}

// Valid returns true if the register is one of the 32 general purpose
// registers.
func (r Register) Valid() bool {
	return r >= 0 && int(r) < Count
}

// Parse a register name or number. The dollar prefix used by assemblers is
// optional, so "s0", "$s0", "16" and "$16" all give the same register.
// Register names are case insensitive.
func Parse(s string) (Register, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	n = strings.TrimPrefix(n, "$")

	if v, err := strconv.Atoi(n); err == nil {
		r := Register(v)
		if !r.Valid() {
			return 0, curated.Errorf(UnknownRegister, s)
		}
		return r, nil
	}

	// s8 is the other name for the frame pointer
	if n == "s8" {
		return FP, nil
	}

	for i, m := range names {
		if m == n {
			return Register(i), nil
		}
	}

	return 0, curated.Errorf(UnknownRegister, s)
}

// All returns every register in hardware order.
func All() []Register {
	r := make([]Register, Count)
	for i := range r {
		r[i] = Register(i)
	}
	return r
}
