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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/pokeycore/digest"
	"github.com/jetsetilly/pokeycore/hardware/pokey"
	"github.com/jetsetilly/pokeycore/hardware/startup"
	"github.com/jetsetilly/pokeycore/logger"
	"github.com/jetsetilly/pokeycore/random"
	"github.com/jetsetilly/pokeycore/test"
)

// run the chip from a random power-on state and return the digest of its
// output
func run(seed uint64, cfg startup.Config) string {
	rnd := random.NewRandom(seed)
	rnd.ZeroSeed = true

	pk := pokey.NewPokey()
	pk.Randomise(rnd)
	startup.Initialise(logger.Allow, pk, cfg, nil)

	pk.Write(pokey.AUDF1, 0x40)
	pk.Write(pokey.AUDC1, uint8(pokey.NewAUDC(pokey.DistPoly5Poly17, 10)))

	dig := digest.NewAudio()
	for range 100000 {
		pk.Step()
		dig.SetAudio(pk.Volume())
	}
	return dig.String()
}

func TestDeterministicOutput(t *testing.T) {
	cfg := startup.DefaultConfig()

	// initialisation mode resets the polynomial counters so the output does
	// not depend on the power-on state
	a := run(1, cfg)
	b := run(2, cfg)
	test.ExpectEquality(t, a, b)

	// a different AUDCTL value changes the noise
	cfg.AUDCTL = pokey.AUDCTLPoly9
	c := run(1, cfg)
	test.ExpectInequality(t, a, c)
}

func TestReset(t *testing.T) {
	dig := digest.NewAudio()
	empty := dig.String()
	test.ExpectEquality(t, empty, "0000000000000000000000000000000000000000")

	dig.SetAudio(10)
	d := dig.String()
	test.ExpectInequality(t, d, empty)

	dig.ResetDigest()
	test.ExpectEquality(t, dig.String(), empty)
	dig.SetAudio(10)
	test.ExpectEquality(t, dig.String(), d)
}
