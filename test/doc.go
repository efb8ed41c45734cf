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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a test error but allow the test to continue.
// The Demand*() functions meanwhile, are fatal to the test and should be used
// when the value being tested is required for further testing. For example,
// the length of two slices should be demanded to be equal before iterating
// over them in unison.
//
// A success value depends on the type of the value being tested:
//
//	bool -> true
//	error -> nil
//	nil -> always a success
//
// The nil type is considered a success because of how errors usually work (nil
// to indicate no error).
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output for comparison.
package test
