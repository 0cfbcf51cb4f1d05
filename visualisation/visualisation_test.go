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

package visualisation_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/jetsetilly/simscript/curated"
	"github.com/jetsetilly/simscript/notifications"
	"github.com/jetsetilly/simscript/test"
	"github.com/jetsetilly/simscript/visualisation"
)

func TestLoad(t *testing.T) {
	var rec notifications.Recorder
	mgr := visualisation.NewManager(&rec)

	test.ExpectSuccess(t, mgr.Register("tower-of-hanoi", "animated tower of hanoi"))
	test.ExpectSuccess(t, mgr.Register("List", "list of values"))

	err := mgr.Register("list", "again")
	test.ExpectEquality(t, curated.Is(err, visualisation.DuplicateName), true)

	test.ExpectEquality(t, len(mgr.Names()), 2)
	test.ExpectEquality(t, mgr.Names()[0], "list")

	test.ExpectEquality(t, mgr.Current() == nil, true)

	h, err := mgr.Load("Tower-Of-Hanoi")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Name, "tower-of-hanoi")
	test.ExpectEquality(t, h.Description, "animated tower of hanoi")
	test.ExpectInequality(t, h.ID, uuid.Nil)
	test.ExpectEquality(t, mgr.Current(), h)

	sent := rec.Sent()
	test.DemandEquality(t, len(sent), 1)
	test.ExpectEquality(t, sent[0].Notice, notifications.NotifyVisualisationLoaded)
	test.ExpectEquality(t, sent[0].Detail, "tower-of-hanoi")

	// a second load of the same visualisation is a new handle
	h2, err := mgr.Load("tower-of-hanoi")
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, h2.ID, h.ID)
	test.ExpectEquality(t, mgr.Current(), h2)
}

func TestUnknown(t *testing.T) {
	mgr := visualisation.NewManager(nil)

	h, err := mgr.Load("missing")
	test.ExpectEquality(t, curated.Is(err, visualisation.UnknownVisualisation), true)
	test.ExpectEquality(t, h == nil, true)
	test.ExpectEquality(t, mgr.Current() == nil, true)
}
