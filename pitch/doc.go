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

// Package pitch converts note indexes into frequency multipliers for the
// POKEY voices.
//
// Multipliers are 8.8 fixed point values. The high byte is the integer part
// and the low byte is the fractional part in 256ths. The table covers five
// octaves plus one note, from a quarter of the base pitch at note 0 to a little
// under eight and a half times the base pitch at note 61. Note 24 is the unity
// note, where an instrument plays at the pitch it was recorded at.
//
// The table is generated from the equal temperament formula:
//
//	Multiplier(n) = round(256 * 2^((n - 24) / 12))
//
// with halves rounded up. The stored table in table.go is created by the
// program in the generator directory and Verify() checks that the stored
// values have not drifted from the formula.
//
// Out of range note indexes are always an error. They are never wrapped or
// truncated because doing so would silently play the wrong pitch.
package pitch
