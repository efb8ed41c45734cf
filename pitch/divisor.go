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

package pitch

import "math"

// Divisor returns the AUDF value that plays at m times the frequency of the
// base AUDF value. The period of a channel is AUDF+1 so the result is:
//
//	(base + 1) / m - 1
//
// rounded to the nearest value. The result is clamped to the range of the
// register and the boolean is false if clamping was necessary.
func Divisor(base uint8, m Multiplier) (uint8, bool) {
	if m == 0 {
		return math.MaxUint8, false
	}

	p := (uint32(base)+1)<<8 + uint32(m)/2
	p /= uint32(m)

	switch {
	case p == 0:
		return 0, false
	case p-1 > math.MaxUint8:
		return math.MaxUint8, false
	}

	return uint8(p - 1), true
}
