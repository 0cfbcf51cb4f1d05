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
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/simscript/curated"
	tm "github.com/jetsetilly/simscript/terminal"
	"github.com/jetsetilly/simscript/test"
)

func TestEditorLine(t *testing.T) {
	ed := newLineEditor(strings.NewReader("stop()\r"), io.Discard)
	s, err := ed.read("> ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "stop()")
}

func TestEditorBackspaceAndCursor(t *testing.T) {
	// type "lgo", move back to the start of "go", delete the 'l' and insert "lo"
	input := "lgo" + "\033[D\033[D" + "\x7f" + "lo" + "\033[C" + "\033[C" + "('x')\r"
	ed := newLineEditor(strings.NewReader(input), io.Discard)
	s, err := ed.read("> ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "logo('x')")
}

func TestEditorHistory(t *testing.T) {
	input := "one\r" + "two\r" + "two\r" + "\033[A\033[A\r" + "new\033[A\033[B\r"
	ed := newLineEditor(strings.NewReader(input), io.Discard)

	for _, expected := range []string{"one", "two", "two", "one", "new"} {
		s, err := ed.read("> ")
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, s, expected)
	}

	// consecutive duplicates are not stored twice
	test.ExpectEquality(t, len(ed.history), 4)
}

func TestEditorInterruptAndEOF(t *testing.T) {
	ed := newLineEditor(strings.NewReader("abc\x03\x04"), io.Discard)

	_, err := ed.read("> ")
	test.ExpectEquality(t, curated.Is(err, tm.UserInterrupt), true)

	_, err = ed.read("> ")
	test.ExpectEquality(t, err, io.EOF)
}

func TestStylePen(t *testing.T) {
	test.ExpectEquality(t, stylePen(tm.StyleError), "\033[91m")
	test.ExpectEquality(t, stylePen(tm.StyleAlert), "\033[1;93m")
	test.ExpectEquality(t, stylePen(tm.StyleEcho), normalPen)
}
