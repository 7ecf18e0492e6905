// This file is part of VGABall.
//
// VGABall is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// VGABall is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VGABall.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md := Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Modes are added with the AddSubModes() function before parsing. The first
// mode in the list is the default, used when the first non-flag argument does
// not name a mode:
//
//	md := Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "jump")
//	_, _ = md.Parse()
//
//	switch md.Mode() {
//	case "RUN":
//	case "JUMP":
//	}
//
// Once a mode has been selected, NewMode() begins a fresh flag set for that
// mode's own flags. Flags must be added (with AddBool(), AddString(), etc.)
// before the call to Parse(). Mode comparisons are case insensitive; Mode()
// always returns the upper-case form.
package modalflag
