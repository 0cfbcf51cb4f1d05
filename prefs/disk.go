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

package prefs

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/simscript/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences.toml"

// WarningBoilerPlate is written to the top of every preferences file.
const WarningBoilerPlate = "# Simscript preferences file. edit with care"

// Sentinal error patterns.
const (
	NoPrefsFile = "prefs: no prefs file (%v)"
)

const keySeparator = "."

type format int

const (
	formatTOML format = iota
	formatYAML
)

func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	}
	return formatTOML
}

// Disk represents preference values as stored on disk. Keys are dotted
// strings. Each part of the key before the last one is a table in the stored
// file.
type Disk struct {
	path    string
	format  format
	entries map[string]pref
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file format is TOML unless the path has a .yaml or .yml extension.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: no path for prefs file")
	}
	return &Disk{
		path:    path,
		format:  detectFormat(path),
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is the string that is written to the file.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.HasPrefix(key, keySeparator) || strings.HasSuffix(key, keySeparator) {
		return fmt.Errorf("prefs: illegal key %q", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key %q already added", key)
	}
	dsk.entries[key] = p
	return nil
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Load preference values from disk. Values on the command line stack take
// priority over values in the file and are applied even if the file does not
// exist.
//
// A missing file is reported with the NoPrefsFile error, which most callers
// will want to ignore.
func (dsk *Disk) Load() error {
	var fileErr error

	data, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		fileErr = err
	}

	flat := make(map[string]Value)
	flatten(data, "", flat)

	for k, p := range dsk.entries {
		if v, ok := flat[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return fileErr
}

// Save current preference values to disk. Keys in the file that have not been
// added to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	data, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		data = make(map[string]any)
	}

	for k, p := range dsk.entries {
		insert(data, strings.Split(k, keySeparator), p.Get())
	}

	var b bytes.Buffer
	b.WriteString(WarningBoilerPlate)
	b.WriteString("\n")

	switch dsk.format {
	case formatYAML:
		enc := yaml.NewEncoder(&b)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	default:
		if err := toml.NewEncoder(&b).Encode(data); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(dsk.path), 0700); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	if err := os.WriteFile(dsk.path, b.Bytes(), 0600); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// read file into a nested map. every table in the file is a map[string]any
func (dsk *Disk) read() (map[string]any, error) {
	b, err := os.ReadFile(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}

	data := make(map[string]any)

	switch dsk.format {
	case formatYAML:
		if err := yaml.Unmarshal(b, &data); err != nil {
			return nil, fmt.Errorf("prefs: %s: %w", dsk.path, err)
		}

		// an empty yaml document leaves the map nil
		if data == nil {
			data = make(map[string]any)
		}
	default:
		if _, err := toml.Decode(string(b), &data); err != nil {
			return nil, fmt.Errorf("prefs: %s: %w", dsk.path, err)
		}
	}

	return data, nil
}

func flatten(data map[string]any, prefix string, flat map[string]Value) {
	for k, v := range data {
		key := k
		if prefix != "" {
			key = prefix + keySeparator + k
		}
		if m, ok := v.(map[string]any); ok {
			flatten(m, key, flat)
			continue
		}
		flat[key] = v
	}
}

func insert(data map[string]any, key []string, v Value) {
	if len(key) == 1 {
		data[key[0]] = v
		return
	}

	m, ok := data[key[0]].(map[string]any)
	if !ok {
		// a scalar in the way of a table is replaced
		m = make(map[string]any)
		data[key[0]] = m
	}
	insert(m, key[1:], v)
}
