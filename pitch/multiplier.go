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

import "fmt"

// Multiplier is an 8.8 fixed point frequency multiplier.
type Multiplier uint16

// Unity is the multiplier that leaves a pitch unchanged.
const Unity Multiplier = 0x0100

// NewMultiplier creates a Multiplier from the byte pair as it is stored in
// the table. The fraction byte comes first.
func NewMultiplier(fraction uint8, integer uint8) Multiplier {
	return Multiplier(integer)<<8 | Multiplier(fraction)
}

// Integer returns the integer part of the multiplier.
func (m Multiplier) Integer() uint8 {
	return uint8(m >> 8)
}

// Fraction returns the fractional part of the multiplier in 256ths.
func (m Multiplier) Fraction() uint8 {
	return uint8(m)
}

// Float returns the multiplier as a floating point number.
func (m Multiplier) Float() float64 {
	return float64(m) / 256.0
}

func (m Multiplier) String() string {
	return fmt.Sprintf("%.4fx", m.Float())
}

// Scale multiplies v by the multiplier. The multiplication is performed with
// 32 bits so that no 16 bit value and multiplier can overflow before the
// fraction is discarded.
func (m Multiplier) Scale(v uint16) uint32 {
	return uint32(v) * uint32(m) >> 8
}
