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

// Package temperament holds the equal temperament formula behind the pitch
// table. It has no dependencies on the pitch package so that the table
// generator can be run even when the stored table is missing or broken.
package temperament

import "math"

// The equal temperament tuning of the stored pitch table.
const (
	NotesPerOctave = 12
	UnityNote      = 24
	NumNotes       = 62
)

// Value returns the 8.8 fixed point multiplier for note n:
//
//	round(256 * 2^((n - unity) / notesPerOctave))
//
// with halves rounded up. The result is not clamped and may be larger than
// 16 bits.
func Value(n int, unity int, notesPerOctave int) float64 {
	return math.Floor(256.0*math.Pow(2, float64(n-unity)/float64(notesPerOctave)) + 0.5)
}

// Fits returns false if a table of size notes would have an entry too large
// for a 16 bit multiplier. Eight octaves above unity is exactly 0x10000, so
// the highest entry must be less than that.
func Fits(size int, unity int, notesPerOctave int) bool {
	top := size - 1 - unity
	if top < 0 {
		return true
	}
	return top/8 < notesPerOctave
}
