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

// Package colorterm implements the Terminal interface for the REPL. It opens
// the controlling terminal with github.com/pkg/term, puts it into cbreak mode
// and provides line editing with command history. Output is coloured
// according to the terminal.Style.
package colorterm

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"github.com/pkg/term"

	tm "github.com/jetsetilly/simscript/terminal"
)

// the controlling terminal
const tty = "/dev/tty"

// ColorTerminal implements the terminal.Terminal interface.
type ColorTerminal struct {
	crit sync.Mutex

	t      *term.Term
	output io.Writer
	editor *lineEditor

	silenced bool
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	var err error

	ct.t, err = term.Open(tty)
	if err != nil {
		return fmt.Errorf("colorterm: %w", err)
	}

	err = ct.t.SetCbreak()
	if err != nil {
		ct.t.Close()
		return fmt.Errorf("colorterm: %w", err)
	}

	ct.output = ct.t
	ct.editor = newLineEditor(bufio.NewReader(ct.t), ct.t)

	return nil
}

// CleanUp restores the terminal to the state it was in before Initialise().
func (ct *ColorTerminal) CleanUp() {
	if ct.t == nil {
		return
	}
	io.WriteString(ct.t, normalPen)
	_ = ct.t.Restore()
	_ = ct.t.Close()
	ct.t = nil
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.crit.Lock()
	defer ct.crit.Unlock()
	ct.silenced = silenced
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	return ct.editor.read(prompt)
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style tm.Style, s string) {
	ct.crit.Lock()
	defer ct.crit.Unlock()

	if ct.silenced && style != tm.StyleError {
		return
	}

	// echoed input is already on screen
	if style == tm.StyleEcho {
		return
	}

	io.WriteString(ct.output, "\r")
	io.WriteString(ct.output, stylePen(style))
	if style == tm.StyleError {
		io.WriteString(ct.output, "* ")
	}
	io.WriteString(ct.output, s)
	io.WriteString(ct.output, normalPen)
	io.WriteString(ct.output, "\n")
}

func stylePen(style tm.Style) string {
	switch style {
	case tm.StyleFeedback:
		return pen(colWhite, false, attrDim)
	case tm.StyleLog:
		return pen(colCyan, false, 0)
	case tm.StyleAlert:
		return pen(colYellow, true, attrBold)
	case tm.StyleError:
		return pen(colRed, true, 0)
	}
	return normalPen
}
