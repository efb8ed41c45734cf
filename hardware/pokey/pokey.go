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
	"fmt"
	"strings"
)

// State is a snapshot of the POKEY write registers. It is comparable and can
// be used to check that two chips have been left in the same state.
type State struct {
	AUDF   [NumVoices]uint8
	AUDC   [NumVoices]AUDC
	AUDCTL uint8
	SKCTL  uint8
	IRQEN  uint8
}

func (st State) String() string {
	s := strings.Builder{}
	for i := range NumVoices {
		s.WriteString(fmt.Sprintf("AUDF%d=%02x AUDC%d=%02x ", i+1, st.AUDF[i], i+1, uint8(st.AUDC[i])))
	}
	s.WriteString(fmt.Sprintf("AUDCTL=%02x SKCTL=%02x IRQEN=%02x", st.AUDCTL, st.SKCTL, st.IRQEN))
	return s.String()
}

// Pokey is a simulation of the POKEY audio circuitry and of the timer
// interrupts. It implements the Bus and Waiter interfaces.
//
// The simulation is stepped once per machine cycle with the Step() function.
type Pokey struct {
	channel [NumVoices]channel
	noise   polynomials

	audctl uint8
	skctl  uint8
	irqen  uint8

	// pending timer interrupts. bits correspond to the IRQEN bits
	irqst uint8

	// the 15kHz and 64kHz clocks are derived from this prescaler. it is held
	// at zero in initialisation mode
	prescaler int

	// true while SKCTL is in initialisation mode
	initState bool
}

// NewPokey is the preferred method of initialisation for the Pokey type. The
// chip begins in the state it would be in if all registers had been written
// with zero.
func NewPokey() *Pokey {
	pk := &Pokey{}
	for i := range pk.channel {
		pk.channel[i].num = i
	}
	pk.Write(SKCTL, SKCTLInit)
	pk.Write(AUDCTL, 0x00)
	return pk
}

func (pk *Pokey) String() string {
	s := strings.Builder{}
	for i := range pk.channel {
		s.WriteString(pk.channel[i].String())
		s.WriteString("\n")
	}
	s.WriteString(fmt.Sprintf("AUDCTL=%02x SKCTL=%02x IRQEN=%02x IRQST=%02x", pk.audctl, pk.skctl, pk.irqen, pk.irqst))
	if pk.initState {
		s.WriteString(" [init]")
	}
	return s.String()
}

// Source of random numbers. Satisfied by random.Random and by *rand.Rand from
// the math/rand/v2 package.
type Source interface {
	IntN(n int) int
}

// Randomise the register contents, simulating the undefined state of the
// chip at power-on.
func (pk *Pokey) Randomise(rnd Source) {
	for i := range NumVoices {
		pk.Write(AUDFx(i), uint8(rnd.IntN(256)))
		pk.Write(AUDCx(i), uint8(rnd.IntN(256)))
	}
	pk.Write(AUDCTL, uint8(rnd.IntN(256)))
	pk.Write(SKCTL, uint8(rnd.IntN(256)))
	pk.Write(IRQEN, uint8(rnd.IntN(256)))
	pk.irqst = uint8(rnd.IntN(256)) & pk.irqen
}

// State returns a snapshot of the write registers.
func (pk *Pokey) State() State {
	var st State
	for i := range pk.channel {
		st.AUDF[i] = pk.channel[i].audf
		st.AUDC[i] = pk.channel[i].audc
	}
	st.AUDCTL = pk.audctl
	st.SKCTL = pk.skctl
	st.IRQEN = pk.irqen
	return st
}

// InitState returns true if the chip is in SKCTL initialisation mode.
func (pk *Pokey) InitState() bool {
	return pk.initState
}

// IRQ returns the pending timer interrupts.
func (pk *Pokey) IRQ() uint8 {
	return pk.irqst
}

// Write implements the Bus interface.
func (pk *Pokey) Write(reg Register, data uint8) {
	switch {
	case reg.IsAUDF():
		// the counter continues as normal even though the frequency has
		// changed
		pk.channel[reg.Voice()].audf = data
	case reg.IsAUDC():
		pk.channel[reg.Voice()].audc = AUDC(data)
	case reg == AUDCTL:
		pk.audctl = data
		pk.noise.prefer9bit = data&AUDCTLPoly9 == AUDCTLPoly9
		if data&AUDCTLHighPass1 == 0x00 {
			pk.channel[0].filter = 0x01
		}
		if data&AUDCTLHighPass2 == 0x00 {
			pk.channel[1].filter = 0x01
		}
	case reg == SKCTL:
		pk.skctl = data
		pk.initState = data&0x03 == 0x00
		if pk.initState {
			pk.noise.reset()
			pk.prescaler = 0
		}
	case reg == IRQEN:
		// from 'Altirra Reference', page 124: clearing a bit in IRQEN also
		// clears the corresponding bit in IRQST
		pk.irqen = data
		pk.irqst &= data
	}
}

// Access the chip through the Atari 8-bit memory map. Returns false if the
// address is not a POKEY address.
func (pk *Pokey) Access(write bool, address uint16, data uint8) (uint8, bool) {
	if address < Origin || address > Origin+0x0f {
		return 0, false
	}
	reg := Register(address - Origin)

	if write {
		pk.Write(reg, data)
		return 0, true
	}

	switch reg {
	case 0x0a: // RANDOM
		if pk.initState {
			return 0xff, true
		}
		return pk.noise.rnd, true
	case 0x0e: // IRQST. bits are active low
		return ^pk.irqst, true
	}

	return 0xff, true
}

// WaitScanlines implements the Waiter interface. The chip is stepped for the
// number of machine cycles in a scanline.
func (pk *Pokey) WaitScanlines(n int) {
	for range n * CyclesPerScanline {
		pk.Step()
	}
}

// Step the chip by one machine cycle.
func (pk *Pokey) Step() {
	var clk bool
	if !pk.initState {
		pk.noise.step()
		pk.prescaler++
		if pk.audctl&AUDCTL15kHz == AUDCTL15kHz {
			clk = pk.prescaler%Div15kHz == 0
		} else {
			clk = pk.prescaler%Div64kHz == 0
		}
	}

	clk1 := clk || pk.audctl&AUDCTLFast1 == AUDCTLFast1
	clk3 := clk || pk.audctl&AUDCTLFast3 == AUDCTLFast3

	if pk.audctl&AUDCTLJoin12 == AUDCTLJoin12 {
		// from 'Altirra Reference', page 104
		//
		// "Linking occurs prior to the audio circuitry and thus the waveform
		// settings for the low channel have no effect on the clocking of the
		// high channel."
		if clk1 {
			pk.tick(1, pk.period16(0, AUDCTLFast1))
		}
	} else {
		if clk1 {
			pk.tick(0, pk.period(0, AUDCTLFast1))
		}
		if clk {
			pk.tick(1, pk.period(1, 0))
		}
	}

	if pk.audctl&AUDCTLJoin34 == AUDCTLJoin34 {
		if clk3 {
			pk.tick(3, pk.period16(2, AUDCTLFast3))
		}
	} else {
		if clk3 {
			pk.tick(2, pk.period(2, AUDCTLFast3))
		}
		if clk {
			pk.tick(3, pk.period(3, 0))
		}
	}
}

// from 'Altirra Reference', page 104
//
// "For timers running at 1.8MHz with AUDFx = N, the period of the timer is N+4
// cycles... For timers using the 15KHz or 64KHz clock, the period is (N+1)"
func (pk *Pokey) period(ch int, fast uint8) int {
	if fast != 0 && pk.audctl&fast == fast {
		return int(pk.channel[ch].audf) + 4
	}
	return int(pk.channel[ch].audf) + 1
}

// period of a 16bit timer. the low channel is given as the argument. linked
// timers running at 1.79MHz have a period of N+7 cycles
func (pk *Pokey) period16(low int, fast uint8) int {
	n := int(pk.channel[low+1].audf)<<8 | int(pk.channel[low].audf)
	if pk.audctl&fast == fast {
		return n + 7
	}
	return n + 1
}

func (pk *Pokey) tick(ch int, period int) {
	c := &pk.channel[ch]
	c.counter--
	if c.counter > 0 {
		return
	}
	c.counter = period

	// the filter on the filtered channel is clocked when the filtering
	// channel underflows
	switch ch {
	case 2:
		if pk.audctl&AUDCTLHighPass1 == AUDCTLHighPass1 {
			pk.channel[0].filter = pk.channel[0].pulse
		}
	case 3:
		if pk.audctl&AUDCTLHighPass2 == AUDCTLHighPass2 {
			pk.channel[1].filter = pk.channel[1].pulse
		}
	}

	// timers 1, 2 and 4 raise interrupts
	var irq uint8
	switch ch {
	case 0:
		irq = IRQTimer1
	case 1:
		irq = IRQTimer2
	case 3:
		irq = IRQTimer4
	}
	pk.irqst |= irq & pk.irqen

	if !pk.initState {
		c.underflow(&pk.noise)
	}
}

// Volume returns the combined volume of all four channels. The range of the
// value is 0 to 60.
func (pk *Pokey) Volume() uint8 {
	var v uint8
	for i := range pk.channel {
		v += pk.channel[i].volume()
	}
	return v
}
