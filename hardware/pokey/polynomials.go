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

// polynomial bit sequences. each sequence is the output of a maximal length
// linear feedback shift register so the length of each is (1<<n)-1
var poly4bit []uint8
var poly5bit []uint8
var poly9bit []uint8
var poly17bit []uint8

// generate the output sequence of an LFSR. the taps argument is the function
// that produces the next register value from the current value. the output
// is taken from the bit indicated by the out argument
func generatePoly(n int, out uint, taps func(b uint32) uint32) []uint8 {
	seq := make([]uint8, (1<<n)-1)
	var b uint32
	for i := range seq {
		b = taps(b)
		seq[i] = uint8((b >> out) & 0x01)
	}
	return seq
}

func init() {
	// sequences as used by the Altirra emulator
	poly4bit = generatePoly(4, 0, func(b uint32) uint32 {
		return (b >> 1) + (^((b << 2) ^ (b << 3)) & 0x08)
	})
	poly5bit = generatePoly(5, 0, func(b uint32) uint32 {
		return (b >> 1) + (^((b << 2) ^ (b << 4)) & 0x10)
	})
	poly9bit = generatePoly(9, 0, func(b uint32) uint32 {
		return (b >> 1) + (^((b << 8) ^ (b << 3)) & 0x100)
	})
	poly17bit = generatePoly(17, 8, func(b uint32) uint32 {
		return (b >> 1) + (^((b << 16) ^ (b << 11)) & 0x10000)
	})
}

type polynomials struct {
	ct4bit  int
	ct5bit  int
	ct9bit  int
	ct17bit int

	// use the 9bit polynomial instead of the 17bit. set via AUDCTL
	prefer9bit bool

	// value of the RANDOM register. bits are shifted in from the 9bit or 17bit
	// polynomial
	rnd uint8
}

// reset the polynomial counters to the state they are held in during SKCTL
// initialisation mode
func (p *polynomials) reset() {
	p.ct4bit = 0
	p.ct5bit = 0
	p.ct9bit = 0
	p.ct17bit = 0
	p.rnd = 0xff
}

func (p *polynomials) step() {
	p.ct4bit = (p.ct4bit + 1) % len(poly4bit)
	p.ct5bit = (p.ct5bit + 1) % len(poly5bit)
	p.ct9bit = (p.ct9bit + 1) % len(poly9bit)
	p.ct17bit = (p.ct17bit + 1) % len(poly17bit)

	p.rnd >>= 1
	if p.prefer9bit {
		p.rnd |= poly9bit[p.ct9bit] << 7
	} else {
		p.rnd |= poly17bit[p.ct17bit] << 7
	}
}

func (p *polynomials) noise() uint8 {
	if p.prefer9bit {
		return poly9bit[p.ct9bit]
	}
	return poly17bit[p.ct17bit]
}
