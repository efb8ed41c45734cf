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

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers
var baseSeed uint64

// initialise base seed
func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Random is a random number generator for the simulated chip.
type Random struct {
	seed uint64
	rnd  *rand.Rand

	// use zero seed rather than the random base seed. this is only really
	// useful for instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(seed uint64) *Random {
	return &Random{
		seed: seed,
	}
}

// new RNG from the standard library. the generator is created on first use
// so that ZeroSeed can be set after NewRandom()
func (rnd *Random) rand() *rand.Rand {
	if rnd.rnd == nil {
		if rnd.ZeroSeed {
			rnd.rnd = rand.New(rand.NewPCG(rnd.seed, rnd.seed))
		} else {
			rnd.rnd = rand.New(rand.NewPCG(baseSeed+rnd.seed, rnd.seed))
		}
	}
	return rnd.rnd
}

// IntN returns a random number in the range 0 to n-1.
func (rnd *Random) IntN(n int) int {
	return rnd.rand().IntN(n)
}

// Reset the sequence to its beginning.
func (rnd *Random) Reset() {
	rnd.rnd = nil
}
