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

// Package paths contains functions to prepare paths for Simscript resources.
//
// The ResourcePath() function returns the correct path to the resource
// directory/file specified in the arguments. It takes into account the
// presence of a local .simscript directory. If one exists in the current
// working directory it is used. Otherwise the resource path is inside the
// user's configuration directory.
//
// ResourcePath() does not create any directories. Callers that write to the
// path should use MakeResourcePath().
package paths

import (
	"os"
	"path/filepath"
)

const baseResourcePath = ".simscript"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the OS/build specific base path. Empty resource
// elements are ignored.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, getBasePath())
	p = append(p, resource...)
	return filepath.Join(p...)
}

// MakeResourcePath is the same as ResourcePath() except that the directory
// part of the resource is created if it does not exist.
func MakeResourcePath(resource ...string) (string, error) {
	pth := ResourcePath(resource...)
	if err := os.MkdirAll(filepath.Dir(pth), 0700); err != nil {
		return "", err
	}
	return pth, nil
}

func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}

	// no leading dot for directories inside the user config directory
	return filepath.Join(cnf, baseResourcePath[1:])
}
