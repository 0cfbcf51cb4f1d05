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

package colorterm

import (
	"fmt"
	"io"
	"slices"
	"unicode"

	"github.com/jetsetilly/simscript/curated"
	tm "github.com/jetsetilly/simscript/terminal"
)

// lineEditor reads runes from a terminal in cbreak mode and builds a line of
// input. the whole line is redrawn after every key.
type lineEditor struct {
	reader io.RuneReader
	output io.Writer

	history [][]rune
}

func newLineEditor(reader io.RuneReader, output io.Writer) *lineEditor {
	return &lineEditor{
		reader: reader,
		output: output,
	}
}

func (ed *lineEditor) redraw(prompt string, input []rune, cursor int) {
	fmt.Fprintf(ed.output, "\r%s%s%s", clearLine, prompt, string(input))
	fmt.Fprintf(ed.output, "\r")
	if n := len([]rune(prompt)) + cursor; n > 0 {
		fmt.Fprintf(ed.output, cursorForward, n)
	}
}

func (ed *lineEditor) read(prompt string) (string, error) {
	var input []rune
	var cursor int

	// index into history. equal to len(history) when editing a new line
	hist := len(ed.history)

	// the new line is kept while browsing history
	var pending []rune

	for {
		ed.redraw(prompt, input, cursor)

		r, _, err := ed.reader.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case keyInterrupt:
			io.WriteString(ed.output, "\n")
			return "", curated.Errorf(tm.UserInterrupt)

		case keyEndOfFile:
			if len(input) == 0 {
				io.WriteString(ed.output, "\n")
				return "", io.EOF
			}

		case keyCarriageReturn, keyLineFeed:
			io.WriteString(ed.output, "\n")
			if len(input) > 0 {
				last := len(ed.history) - 1
				if last < 0 || !slices.Equal(ed.history[last], input) {
					ed.history = append(ed.history, slices.Clone(input))
				}
			}
			return string(input), nil

		case keyBackspace, keyDelete:
			if cursor > 0 {
				input = slices.Delete(input, cursor-1, cursor)
				cursor--
				hist = len(ed.history)
			}

		case keyEsc:
			r, _, err := ed.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != escCursor {
				continue // for loop
			}
			r, _, err = ed.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case cursorUp:
				if hist > 0 {
					if hist == len(ed.history) {
						pending = slices.Clone(input)
					}
					hist--
					input = slices.Clone(ed.history[hist])
					cursor = len(input)
				}
			case cursorDown:
				if hist < len(ed.history) {
					hist++
					if hist == len(ed.history) {
						input = pending
					} else {
						input = slices.Clone(ed.history[hist])
					}
					cursor = len(input)
				}
			case cursorForwardK:
				if cursor < len(input) {
					cursor++
				}
			case cursorBackward:
				if cursor > 0 {
					cursor--
				}
			}

		default:
			if unicode.IsPrint(r) {
				input = slices.Insert(input, cursor, r)
				cursor++
				hist = len(ed.history)
			}
		}
	}
}
