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

// Package notifications allow the simulation and its collaborators to tell
// the host about events the host may want to show the user. For example, the
// simulation sends NotifySimulationStopped when a script calls stop().
//
// Notifications are advisory. A host that has no interest in an event can
// return nil from Notify() and do nothing.
package notifications

import "sync"

// Notice describes events that somehow change the presentation of the
// simulation. The detail string that accompanies a notice is free form and may
// be empty.
type Notice string

// List of defined notifications.
const (
	// a script has raised an alert
	NotifyAlert Notice = "NotifyAlert"

	// the simulation clock has stopped
	NotifySimulationStopped Notice = "NotifySimulationStopped"

	// the clock speed has changed. detail is the new speed in milliseconds
	NotifyClockSpeed Notice = "NotifyClockSpeed"

	// a visualisation has been loaded. detail is the visualisation name
	NotifyVisualisationLoaded Notice = "NotifyVisualisationLoaded"
)

// Notify is used for direct communication between the simulation and the
// host.
type Notify interface {
	Notify(notice Notice, detail string) error
}

// Discard is an implementation of Notify that ignores every notice.
var Discard Notify = discard{}

type discard struct{}

func (_ discard) Notify(_ Notice, _ string) error {
	return nil
}

// Sent is a single notification as recorded by Recorder.
type Sent struct {
	Notice Notice
	Detail string
}

// Recorder is an implementation of Notify that remembers every notice in the
// order it was received. Useful for testing and for hosts that want to poll
// for events rather than react to them.
type Recorder struct {
	crit sync.Mutex
	sent []Sent
}

// Notify implements the Notify interface.
func (r *Recorder) Notify(notice Notice, detail string) error {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.sent = append(r.sent, Sent{Notice: notice, Detail: detail})
	return nil
}

// Sent returns a copy of the notices received so far.
func (r *Recorder) Sent() []Sent {
	r.crit.Lock()
	defer r.crit.Unlock()
	s := make([]Sent, len(r.sent))
	copy(s, r.sent)
	return s
}

// Count returns the number of times the notice has been received.
func (r *Recorder) Count(notice Notice) int {
	r.crit.Lock()
	defer r.crit.Unlock()
	var n int
	for _, s := range r.sent {
		if s.Notice == notice {
			n++
		}
	}
	return n
}
