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

// Package prefs facilitates the storing of preference values on disk.
//
// Preference values are typed (Bool, String, Float) and safe for concurrent
// use. Each type can have a pre hook, which can veto a new value, and a post
// hook, which is told of the new value after it has been stored.
//
// The Disk type associates preference values with dotted keys and loads or
// saves them as a file. TOML is the default format. A file with a .yaml or
// .yml extension is stored as YAML. In both cases the dotted key is stored as
// nested tables. For example, the key "scripting.loadpolicy" is stored in
// TOML as:
//
//	[scripting]
//	loadpolicy = "disabled"
//
// More than one Disk can share a file. Saving preserves the keys that belong
// to other Disk instances.
//
// Values can be overridden from the command line with PushCommandLineStack().
package prefs
