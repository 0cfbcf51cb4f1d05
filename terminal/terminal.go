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

// Package terminal defines the operations required for command-line
// interaction with scripts. The plainterm and colorterm packages provide
// implementations.
package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit. The most likely treatment is to print different styles
// in different colours.
type Style int

// List of terminal styles.
const (
	// the result of evaluating a statement
	StyleFeedback Style = iota

	// output from log() and print()
	StyleLog

	// output from alert()
	StyleAlert

	// errors from the scripting engine or the host
	StyleError

	// input from the user being echoed back to the user. echoed input has
	// been "normalised" (eg. capitalised, leading space removed, etc.)
	StyleEcho
)

func (s Style) String() string {
	switch s {
	case StyleFeedback:
		return "feedback"
	case StyleLog:
		return "log"
	case StyleAlert:
		return "alert"
	case StyleError:
		return "error"
	case StyleEcho:
		return "echo"
	}
	return "unknown style"
}

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns a single line of input, without the line terminator.
	// The prompt is shown to the user if the input is interactive. Returns
	// io.EOF when no more input is available and UserInterrupt if the user
	// abandons the line.
	TermRead(prompt string) (string, error)

	// IsInteractive() should return true for implementations that require
	// user interaction.
	IsInteractive() bool
}

// Sentinal error patterns.
const (
	UserInterrupt = "terminal: user interrupt"
)

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the REPL's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to it's original state, if possible.
	CleanUp()

	// Silence all output except error messages.
	Silence(silenced bool)
}
