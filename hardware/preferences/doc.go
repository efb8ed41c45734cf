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

// Package preferences holds the build time configuration of the chip as
// preference values. Values are stored on disk and can be overridden from the
// command line with the -prefs flag. For example:
//
//	-prefs "pokey.playRate::4000; pokey.audctl::0x01"
//
// The Config() function converts the preferences into a startup.Config ready
// for use with startup.Initialise().
package preferences
