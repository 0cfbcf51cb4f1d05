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
	"strings"
)

const (
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
)

const (
	targetPen       = 3
	targetBrightPen = 9
)

const (
	attrBold = 1
	attrDim  = 2
)

// pen returns the ANSI sequence for the colour and attribute. an attribute of
// zero means no attribute.
func pen(col int, bright bool, attr int) string {
	s := strings.Builder{}
	s.WriteString("\033[")
	if attr > 0 {
		s.WriteString(fmt.Sprintf("%d;", attr))
	}
	target := targetPen
	if bright {
		target = targetBrightPen
	}
	s.WriteString(fmt.Sprintf("%d%dm", target, col))
	return s.String()
}

const (
	normalPen     = "\033[0m"
	clearLine     = "\033[2K"
	cursorForward = "\033[%dC"
)

// keys and escape sequences recognised by the line editor
const (
	keyInterrupt      = 3
	keyEndOfFile      = 4
	keyBackspace      = 8
	keyLineFeed       = 10
	keyCarriageReturn = 13
	keyEsc            = 27
	keyDelete         = 127

	escCursor      = '['
	cursorUp       = 'A'
	cursorDown     = 'B'
	cursorForwardK = 'C'
	cursorBackward = 'D'
)
