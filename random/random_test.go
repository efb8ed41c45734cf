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

package random_test

import (
	"testing"

	"github.com/jetsetilly/pokeycore/random"
	"github.com/jetsetilly/pokeycore/test"
)

func TestRandom(t *testing.T) {
	a := random.NewRandom(100)
	b := random.NewRandom(100)
	a.ZeroSeed = true
	b.ZeroSeed = true

	var seq []int
	for i := 1; i < 256; i++ {
		v := a.IntN(i)
		test.ExpectEquality(t, v, b.IntN(i))
		test.ExpectSuccess(t, v >= 0 && v < i)
		seq = append(seq, v)
	}

	a.Reset()
	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.IntN(i), seq[i-1])
	}
}
