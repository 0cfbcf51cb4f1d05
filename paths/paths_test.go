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

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/simscript/paths"
	"github.com/jetsetilly/simscript/test"
)

func TestPaths(t *testing.T) {
	// a local .simscript directory takes priority over the user config dir
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".simscript", 0700))

	test.ExpectEquality(t, paths.ResourcePath("foo/bar", "baz"), filepath.Join(".simscript", "foo", "bar", "baz"))
	test.ExpectEquality(t, paths.ResourcePath("foo/bar", ""), filepath.Join(".simscript", "foo", "bar"))
	test.ExpectEquality(t, paths.ResourcePath("", "baz"), filepath.Join(".simscript", "baz"))
	test.ExpectEquality(t, paths.ResourcePath("", ""), ".simscript")
}

func TestMakeResourcePath(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".simscript", 0700))

	pth, err := paths.MakeResourcePath("scripts", "init.js")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".simscript", "scripts", "init.js"))

	_, err = os.Stat(filepath.Join(".simscript", "scripts"))
	test.ExpectSuccess(t, err)
}
