// This file is part of Pokeycore.
//
// Pokeycore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Pokeycore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Pokeycore.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Most importantly, Parse() returns a ParseResult that must
// be checked:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	verbose := md.AddBool("v", false, "verbose output")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		// help message has already been printed
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	}
//
// Modes are added with AddSubModes(). The first sub-mode is the default mode,
// which is selected if the first argument after the flags is not a listed
// sub-mode. After Parse() the selected mode is available with Mode().
//
//	md.NewMode()
//	md.AddSubModes("TABLE", "INIT", "VERIFY")
//	p, err = md.Parse()
//	...
//	switch md.Mode() {
//	case "TABLE":
//		...
//	}
//
// A call to NewMode() before each mode's Parse() starts a new set of flags.
// The Path() function returns the list of modes selected so far, separated by
// a slash. This is useful for help and error messages.
package modalflag
