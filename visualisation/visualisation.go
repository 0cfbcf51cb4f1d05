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

// Package visualisation is the host side of the visualisation bridge. The
// Manager knows which visualisations the host can show and records which one
// was loaded most recently. Drawing the visualisation is the host's job.
package visualisation

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jetsetilly/simscript/curated"
	"github.com/jetsetilly/simscript/logger"
	"github.com/jetsetilly/simscript/notifications"
)

// Sentinal error patterns.
const (
	UnknownVisualisation = "visualisation: unknown visualisation (%s)"
	DuplicateName        = "visualisation: %s already registered"
)

// Handle is returned to the script by loadVis(). Each call to Load() gives a
// new Handle with a new ID, even for the same visualisation.
type Handle struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

func (h *Handle) String() string {
	return fmt.Sprintf("%s [%s]", h.Name, h.ID)
}

// Manager implements the visualisation bridge.
type Manager struct {
	notify notifications.Notify

	crit    sync.Mutex
	known   map[string]string
	current *Handle
}

// NewManager is the preferred method of initialisation for the Manager type.
// The notify argument can be nil.
func NewManager(notify notifications.Notify) *Manager {
	if notify == nil {
		notify = notifications.Discard
	}
	return &Manager{
		notify: notify,
		known:  make(map[string]string),
	}
}

// Register a visualisation name with a short description. Names are case
// insensitive.
func (mgr *Manager) Register(name string, description string) error {
	mgr.crit.Lock()
	defer mgr.crit.Unlock()

	n := strings.ToLower(strings.TrimSpace(name))
	if _, ok := mgr.known[n]; ok {
		return curated.Errorf(DuplicateName, name)
	}
	mgr.known[n] = description
	return nil
}

// Names returns the registered visualisation names in alphabetical order.
func (mgr *Manager) Names() []string {
	mgr.crit.Lock()
	defer mgr.crit.Unlock()

	names := make([]string, 0, len(mgr.known))
	for n := range mgr.known {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Load the named visualisation. The handle becomes the current visualisation.
func (mgr *Manager) Load(name string) (*Handle, error) {
	n := strings.ToLower(strings.TrimSpace(name))

	mgr.crit.Lock()
	desc, ok := mgr.known[n]
	if !ok {
		mgr.crit.Unlock()
		return nil, curated.Errorf(UnknownVisualisation, name)
	}
	h := &Handle{
		ID:          uuid.New(),
		Name:        n,
		Description: desc,
	}
	mgr.current = h
	mgr.crit.Unlock()

	logger.Logf(logger.Allow, "visualisation", "loaded %s", h)

	if err := mgr.notify.Notify(notifications.NotifyVisualisationLoaded, n); err != nil {
		return h, err
	}

	return h, nil
}

// Current returns the most recently loaded visualisation. Returns nil if no
// visualisation has been loaded.
func (mgr *Manager) Current() *Handle {
	mgr.crit.Lock()
	defer mgr.crit.Unlock()
	return mgr.current
}
