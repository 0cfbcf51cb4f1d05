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

package repl

import (
	"errors"
	"fmt"
	"io"

	"github.com/dop251/goja"

	"github.com/jetsetilly/simscript/curated"
	"github.com/jetsetilly/simscript/scripting"
	"github.com/jetsetilly/simscript/terminal"
)

// Runner evaluates script source. The scripting.Engine type implements this
// interface.
type Runner interface {
	Run(name string, src string) (goja.Value, error)
}

// prompts for new and continued input
const (
	promptNew      = ">> "
	promptContinue = ".. "
)

// the name given to input from the terminal when reporting problems
const inputName = "<repl>"

// Loop reads statements from the terminal and evaluates them until the
// terminal reports the end of input. Values other than undefined are printed
// with StyleFeedback and problems with StyleError.
//
// An interrupt from the terminal discards incomplete input and the loop
// continues.
func Loop(term terminal.Terminal, runner Runner) error {
	var q Queue

	for {
		prompt := promptNew
		if q.More() {
			prompt = promptContinue
		}

		input, err := term.TermRead(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if curated.Is(err, terminal.UserInterrupt) {
				q.Reset()
				term.TermPrintLine(terminal.StyleFeedback, "interrupted")
				continue // for loop
			}
			return fmt.Errorf("repl: %w", err)
		}

		term.TermPrintLine(terminal.StyleEcho, input)

		statement, ok := q.Push(input)
		if !ok {
			continue // for loop
		}

		v, err := runner.Run(inputName, statement)
		if err != nil {
			var p *scripting.Problem
			if errors.As(err, &p) && p.Severity == scripting.NonCritical {
				term.TermPrintLine(terminal.StyleFeedback, p.Message)
			} else {
				term.TermPrintLine(terminal.StyleError, err.Error())
			}
			continue // for loop
		}

		if v != nil && !goja.IsUndefined(v) {
			term.TermPrintLine(terminal.StyleFeedback, v.String())
		}
	}
}
