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

package pokey

import (
	"testing"

	"github.com/jetsetilly/pokeycore/test"
)

func TestPolynomialsLength(t *testing.T) {
	// from 'Altirra Reference", page 110:
	//
	// "As maximal-length generators, each N-bit generator has a period of 2N – 1, so the 4-bit
	// generator repeats every 15 bits, and the 9 bit generator every 511 bits."
	test.ExpectEquality(t, len(poly4bit), 15)
	test.ExpectEquality(t, len(poly5bit), 31)
	test.ExpectEquality(t, len(poly9bit), 511)
	test.ExpectEquality(t, len(poly17bit), 131071)
}

func TestPolynomialsBiasCheck(t *testing.T) {
	// from 'Altirra Reference', page 110:
	//
	// "This also means the generator patterns are slightly biased with one more 0 bit than 1 bit."
	biasCheck := func(b []uint8) bool {
		var ct int
		for _, v := range b {
			if v == 0 {
				ct++
			}
		}
		return ct == (len(b)/2)+1
	}

	test.ExpectSuccess(t, biasCheck(poly4bit), "poly4")
	test.ExpectSuccess(t, biasCheck(poly5bit), "poly5")
	test.ExpectSuccess(t, biasCheck(poly9bit), "poly9")
	test.ExpectSuccess(t, biasCheck(poly17bit), "poly17")
}

func TestRandomInitialisation(t *testing.T) {
	// from 'Altirra Reference", page 111:
	//
	// "if 9-bit mode is selected, executing STA SKCTL + LDA RANDOM
	// back-to-back will give A=$1F, which is four bits after the all ones
	// state."
	var p polynomials
	p.reset()
	p.prefer9bit = true
	test.ExpectEquality(t, p.rnd, 0xff)

	p.step()
	p.step()
	p.step()

	// only three steps when it should really be four. the fourth step is the
	// cycle used by the STA instruction to write SKCTL
	test.ExpectEquality(t, p.rnd, 0x1f)
}

func TestInitialisationModeHoldsCounters(t *testing.T) {
	pk := NewPokey()
	test.ExpectSuccess(t, pk.InitState())

	pk.Write(AUDF1, 0x00)
	pk.Write(AUDC1, uint8(NewAUDC(DistPure, 15)))
	for range 1000 {
		pk.Step()
	}

	// the 64kHz clock is held in reset so the channel never underflows
	test.ExpectEquality(t, pk.channel[0].pulse, 0)
	test.ExpectEquality(t, pk.noise.ct17bit, 0)

	v, ok := pk.Access(false, Origin+0x0a, 0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 0xff)
}

// count the number of times the waveform of a channel changes
func countTransitions(pk *Pokey, ch int, cycles int) int {
	var n int
	last := pk.channel[ch].pulse
	for range cycles {
		pk.Step()
		if pk.channel[ch].pulse != last {
			n++
			last = pk.channel[ch].pulse
		}
	}
	return n
}

func TestPureTonePeriod(t *testing.T) {
	pk := NewPokey()
	pk.Write(AUDCTL, 0x00)
	pk.Write(AUDF1, 9)
	pk.Write(AUDC1, uint8(NewAUDC(DistPure, 8)))
	pk.Write(SKCTL, SKCTLNormal)

	// a pure tone toggles once every period. with the 64kHz clock and an
	// AUDF value of 9, the period is 10*28 machine cycles
	n := countTransitions(pk, 0, 10*Div64kHz*100)
	test.ExpectEquality(t, n, 100)
}

func TestFastClockPeriod(t *testing.T) {
	pk := NewPokey()
	pk.Write(AUDCTL, AUDCTLFast1)
	pk.Write(AUDF1, 6)
	pk.Write(AUDC1, uint8(NewAUDC(DistPure, 8)))
	pk.Write(SKCTL, SKCTLNormal)

	// period of N+4 cycles
	n := countTransitions(pk, 0, 10*100)
	test.ExpectEquality(t, n, 100)
}

func TestSixteenBitPeriod(t *testing.T) {
	pk := NewPokey()
	pk.Write(AUDCTL, AUDCTLJoin12|AUDCTLFast1)
	pk.Write(AUDF1, 0x01)
	pk.Write(AUDF2, 0x01)
	pk.Write(AUDC2, uint8(NewAUDC(DistPure, 8)))
	pk.Write(SKCTL, SKCTLNormal)

	// period of N+7 cycles for a 16bit timer at 1.79MHz. N = 0x0101
	period := 0x0101 + 7
	n := countTransitions(pk, 1, period*10)
	test.ExpectEquality(t, n, 10)
}

func TestNoiseZeroIsNotSilent(t *testing.T) {
	test.ExpectSuccess(t, AUDCSilent.IsSilent())
	test.ExpectFailure(t, AUDCNoiseZero.IsSilent())

	pk := NewPokey()
	pk.Write(AUDC1, uint8(AUDCNoiseZero))
	pk.Write(AUDC2, uint8(AUDCSilent))
	pk.Write(SKCTL, SKCTLNormal)

	// the noise circuitry is running for the all-zero value
	n := countTransitions(pk, 0, 10000)
	test.ExpectInequality(t, n, 0)

	// volume-only mode is a constant level regardless of the waveform
	for range 10000 {
		pk.Step()
		test.DemandEquality(t, pk.channel[1].volume(), 0)
	}
}

func TestVolumeOnlyLevel(t *testing.T) {
	pk := NewPokey()
	pk.Write(AUDC1, uint8(VolumeOnly|0x05))
	pk.Write(AUDC2, uint8(VolumeOnly|0x07))
	pk.Write(SKCTL, SKCTLNormal)
	for range 1000 {
		pk.Step()
		test.DemandEquality(t, pk.Volume(), 12)
	}
}

func TestTimerInterrupt(t *testing.T) {
	pk := NewPokey()
	pk.Write(AUDF1, 0)
	pk.Write(SKCTL, SKCTLNormal)

	// interrupt not enabled
	pk.WaitScanlines(1)
	test.ExpectEquality(t, pk.IRQ(), 0)

	pk.Write(IRQEN, IRQTimer1)
	pk.WaitScanlines(1)
	test.ExpectEquality(t, pk.IRQ(), IRQTimer1)

	v, ok := pk.Access(false, IRQEN.Address(), 0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, ^IRQTimer1)

	// disabling the interrupt clears the pending bit
	pk.Write(IRQEN, 0x00)
	test.ExpectEquality(t, pk.IRQ(), 0)
}

func TestAccess(t *testing.T) {
	pk := NewPokey()

	_, ok := pk.Access(true, 0xd100, 0x10)
	test.ExpectFailure(t, ok)

	_, ok = pk.Access(true, AUDC3.Address(), uint8(AUDCSilent))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, pk.State().AUDC[2], AUDCSilent)

	_, ok = pk.Access(true, 0xd20f, SKCTLNormal)
	test.ExpectSuccess(t, ok)
	test.ExpectFailure(t, pk.InitState())
}
