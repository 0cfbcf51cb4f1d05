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

package console_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/simscript/console"
	"github.com/jetsetilly/simscript/logger"
	"github.com/jetsetilly/simscript/notifications"
	"github.com/jetsetilly/simscript/terminal"
	"github.com/jetsetilly/simscript/test"
)

type mockOutput struct {
	lines []string
}

func (m *mockOutput) TermPrintLine(style terminal.Style, s string) {
	m.lines = append(m.lines, fmt.Sprintf("%s: %s", style, s))
}

type deny struct{}

func (_ deny) AllowLogging() bool {
	return false
}

func TestLog(t *testing.T) {
	logger.Clear()

	var out mockOutput
	con := console.NewConsole(&out, nil)
	con.Log("hello")

	test.DemandEquality(t, len(out.lines), 1)
	test.ExpectEquality(t, out.lines[0], "log: hello")

	tw := &test.Writer{}
	logger.Tail(tw, 1)
	test.ExpectEquality(t, tw.String(), "script: hello\n")

	// logging to the central logger can be prevented but the message is
	// still printed
	logger.Clear()
	con.SetPermission(deny{})
	con.Log("quiet")
	test.ExpectEquality(t, len(out.lines), 2)

	tw.Clear()
	logger.Write(tw)
	test.ExpectEquality(t, strings.Contains(tw.String(), "quiet"), false)
}

func TestAlert(t *testing.T) {
	var out mockOutput
	var rec notifications.Recorder
	con := console.NewConsole(&out, &rec)
	con.Alert("look out")

	test.DemandEquality(t, len(out.lines), 1)
	test.ExpectEquality(t, out.lines[0], "alert: look out")

	sent := rec.Sent()
	test.DemandEquality(t, len(sent), 1)
	test.ExpectEquality(t, sent[0], notifications.Sent{Notice: notifications.NotifyAlert, Detail: "look out"})
}
