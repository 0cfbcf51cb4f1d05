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

// Package console is the host side of the debug bridge. Messages from log()
// and alert() are printed to a terminal. Log messages are also recorded in the
// central logger and alerts are sent to the host as notifications.
package console

import (
	"sync"

	"github.com/jetsetilly/simscript/logger"
	"github.com/jetsetilly/simscript/notifications"
	"github.com/jetsetilly/simscript/terminal"
)

// Console implements the debug bridge.
type Console struct {
	output terminal.Output
	notify notifications.Notify

	crit sync.Mutex
	perm logger.Permission
}

// NewConsole is the preferred method of initialisation for the Console type.
// The notify argument can be nil.
func NewConsole(output terminal.Output, notify notifications.Notify) *Console {
	if notify == nil {
		notify = notifications.Discard
	}
	return &Console{
		output: output,
		notify: notify,
		perm:   logger.Allow,
	}
}

// SetPermission changes the permission used when recording log messages in
// the central logger. A scripting engine is a suitable Permission.
func (con *Console) SetPermission(perm logger.Permission) {
	con.crit.Lock()
	defer con.crit.Unlock()
	con.perm = perm
}

// Log implements the debug bridge.
func (con *Console) Log(msg string) {
	con.crit.Lock()
	perm := con.perm
	con.crit.Unlock()

	con.output.TermPrintLine(terminal.StyleLog, msg)
	logger.Log(perm, "script", msg)
}

// Alert implements the debug bridge.
func (con *Console) Alert(msg string) {
	con.output.TermPrintLine(terminal.StyleAlert, msg)
	if err := con.notify.Notify(notifications.NotifyAlert, msg); err != nil {
		logger.Log(logger.Allow, "console", err)
	}
}
