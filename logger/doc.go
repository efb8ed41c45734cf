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

// Package logger is the central log repository for pokeycore. There is a
// single central log that can be accessed through the package level functions
// and any number of independent logs created with NewLogger(). Independent
// logs are useful for testing.
//
// Log entries are made up of a tag and a detail. The tag identifies the part of
// the program making the entry (eg. "startup", "pitch") and the detail is the
// message. Consecutive entries that are identical are collapsed into a single
// entry with a repeat count.
//
// Every logging request must supply a Permission. The Allow permission can be
// used when logging should always happen.
package logger
