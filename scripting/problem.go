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
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dop251/goja"
)

// Severity of a Problem.
type Severity int

// List of valid Severity values.
const (
	NonCritical Severity = iota
	Critical
)

func (s Severity) String() string {
	switch s {
	case NonCritical:
		return "non-critical"
	case Critical:
		return "critical"
	}
	return "unknown"
}

// NoLineNum is used for the Line and Column fields of a Problem when the
// position of the problem is not known.
const NoLineNum = -1

// Problem is the error returned by the Run() and RunFile() functions.
type Problem struct {
	Message  string
	Severity Severity
	Line     int
	Column   int

	// the Go error that caused the problem, if there is one. for exceptions
	// raised by a bridge this is the error returned by the bridge
	Err error
}

func (p *Problem) Error() string {
	if p.Line == NoLineNum {
		return p.Message
	}
	if p.Column == NoLineNum {
		return fmt.Sprintf("line %d: %s", p.Line, p.Message)
	}
	return fmt.Sprintf("line %d:%d: %s", p.Line, p.Column, p.Message)
}

func (p *Problem) Unwrap() error {
	return p.Err
}

// syntax errors from the parser and from the compiler give the position in
// the message
var (
	parserPosition   = regexp.MustCompile(`Line (\d+):(\d+)`)
	compilerPosition = regexp.MustCompile(` at [^ ]*:(\d+):(\d+)`)
)

const syntaxError = "SyntaxError: "

func newProblem(err error) *Problem {
	p := &Problem{
		Message:  err.Error(),
		Severity: Critical,
		Line:     NoLineNum,
		Column:   NoLineNum,
	}

	var stack []goja.StackFrame

	switch ex := err.(type) {
	case *goja.InterruptedError:
		p.Severity = NonCritical
		p.Message = fmt.Sprintf("interrupted: %v", ex.Value())
		p.Err = ex
		stack = ex.Stack()
	case *goja.Exception:
		if v := ex.Value(); v != nil {
			p.Message = v.String()
		}
		p.Err = ex.Unwrap()
		stack = ex.Stack()
	default:
		p.Err = err
	}

	// syntax errors raised by the parser have no stack. the position is in
	// the message
	if strings.HasPrefix(p.Message, syntaxError) {
		p.Message = syntaxError + strings.TrimPrefix(p.Message[len(syntaxError):], syntaxError)
		for _, re := range []*regexp.Regexp{parserPosition, compilerPosition} {
			if m := re.FindStringSubmatch(p.Message); m != nil {
				p.Line, _ = strconv.Atoi(m[1])
				p.Column, _ = strconv.Atoi(m[2])
				return p
			}
		}
	}

	// the first frame with a position is the innermost script frame. native
	// functions have no position
	for i := range stack {
		pos := stack[i].Position()
		if pos.Line > 0 {
			p.Line = pos.Line
			p.Column = pos.Column
			break
		}
	}

	return p
}
