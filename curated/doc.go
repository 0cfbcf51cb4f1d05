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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// pattern and placeholder values in the same way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Is() checks the outermost
// error and Has() searches the chain of curated errors:
//
//	e := curated.Errorf("simulation: invalid clock speed (%v)", s)
//	f := curated.Errorf("scripting: %v", e)
//
//	curated.Is(e, "simulation: invalid clock speed (%v)")  // true
//	curated.Is(f, "simulation: invalid clock speed (%v)")  // false
//	curated.Has(f, "simulation: invalid clock speed (%v)") // true
//
// Patterns that callers test for should be exported as string constants by
// the package that creates the error.
//
// The Error() implementation normalises the message by removing duplicate
// adjacent parts, so that wrapping an error in the same context twice does
// not produce "scripting: scripting: ...". Parts are separated by ": ".
//
// Any error values given to Errorf() are reported by Unwrap(), so the
// standard errors.Is() and errors.As() functions see through curated errors.
// This is important for the scripting package, which must hand bridge errors
// back to the host unchanged.
package curated
