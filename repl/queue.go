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
	"strings"
)

// Queue gathers lines of input until the brackets in the input are balanced.
// Brackets inside strings and comments are not counted.
type Queue struct {
	lines []string
}

// More returns true if there is input waiting to be completed.
func (q *Queue) More() bool {
	return len(q.lines) > 0
}

// Reset discards any incomplete input.
func (q *Queue) Reset() {
	q.lines = q.lines[:0]
}

// Push a line of input into the queue. Returns the complete statement and
// true if the line completes a statement. Blank lines are ignored unless
// they are part of an incomplete statement.
func (q *Queue) Push(line string) (string, bool) {
	line = strings.TrimRight(line, "\r\n")

	if len(q.lines) == 0 && strings.TrimSpace(line) == "" {
		return "", false
	}

	q.lines = append(q.lines, line)
	statement := strings.Join(q.lines, "\n")

	if !complete(statement) {
		return "", false
	}

	q.Reset()
	return statement, true
}

// complete returns false if the statement has unclosed brackets, an open
// template literal or an open block comment. unbalanced closing brackets
// count as complete so that the engine can report the error
func complete(statement string) bool {
	var depth int
	var quote rune
	var escape bool
	var lineComment bool
	var blockComment bool

	r := []rune(statement)
	for i := 0; i < len(r); i++ {
		c := r[i]

		switch {
		case lineComment:
			if c == '\n' {
				lineComment = false
			}

		case blockComment:
			if c == '*' && i+1 < len(r) && r[i+1] == '/' {
				blockComment = false
				i++
			}

		case quote != 0:
			switch {
			case escape:
				escape = false
			case c == '\\':
				escape = true
			case c == quote:
				quote = 0
			case c == '\n' && quote != '`':
				// single and double quoted strings end at the end of the
				// line. the engine will report the error
				quote = 0
			}

		default:
			switch c {
			case '\'', '"', '`':
				quote = c
			case '/':
				if i+1 < len(r) {
					switch r[i+1] {
					case '/':
						lineComment = true
						i++
					case '*':
						blockComment = true
						i++
					}
				}
			case '(', '[', '{':
				depth++
			case ')', ']', '}':
				depth--
			}
		}
	}

	return depth <= 0 && !blockComment && quote != '`'
}
