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

// Package prefs facilitates the storage of preferences on disk. The Disk type
// associates preference values with keys and handles the loading and saving of
// those values.
//
// The preference types (Bool, Int, Float and String) are safe to access from
// more than one goroutine. Hooks can be attached to each value so that the
// program can react to, or veto, a change of value.
//
// Preferences can also be specified on the command line as a string of
// key/value pairs:
//
//	"pokey.playRate::60; pokey.audctl::1"
//
// Command line preferences are pushed onto a stack with PushCommandLineStack()
// and are consumed by Disk.Load(), which gives them priority over the values
// found in the preferences file.
package prefs
