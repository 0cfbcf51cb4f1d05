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

// Package plainterm implements the Terminal interface for the REPL. It is a
// simple as possible implementation and reads whole lines from the input.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/jetsetilly/simscript/terminal"
)

// PlainTerminal is the default, most basic terminal interface. It keeps the
// terminal in whatever mode it is already in and reads whole lines from the
// input.
type PlainTerminal struct {
	// Input and Output default to os.Stdin and os.Stdout if they are nil
	// when Initialise() is called
	Input  io.Reader
	Output io.Writer

	crit     sync.Mutex
	reader   *bufio.Reader
	realIn   bool
	silenced bool
}

// Initialise perfoms any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	if pt.Input == nil {
		pt.Input = os.Stdin
	}
	if pt.Output == nil {
		pt.Output = os.Stdout
	}

	if f, ok := pt.Input.(*os.File); ok {
		pt.realIn = term.IsTerminal(int(f.Fd()))
	}

	pt.reader = bufio.NewReader(pt.Input)
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.crit.Lock()
	defer pt.crit.Unlock()
	pt.silenced = silenced
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.realIn
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	pt.crit.Lock()
	defer pt.crit.Unlock()

	if pt.silenced && style != terminal.StyleError {
		return
	}

	switch style {
	case terminal.StyleEcho:
		// we don't need to echo user input for this type of terminal
		return
	case terminal.StyleError:
		s = fmt.Sprintf("* %s", s)
	case terminal.StyleAlert:
		s = fmt.Sprintf("! %s", s)
	}

	io.WriteString(pt.Output, s)
	io.WriteString(pt.Output, "\n")
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt string) (string, error) {
	if pt.realIn {
		io.WriteString(pt.Output, prompt)
	}

	s, err := pt.reader.ReadString('\n')
	if err != nil {
		// a final line without a line terminator is still a line
		if err == io.EOF && s != "" {
			return strings.TrimRight(s, "\r"), nil
		}
		return "", err
	}

	return strings.TrimRight(s, "\r\n"), nil
}
