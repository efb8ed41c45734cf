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

import "fmt"

// Origin is the address of the POKEY in the Atari 8-bit memory map.
const Origin = 0xd200

// NumVoices is the number of audio channels in the POKEY.
const NumVoices = 4

// Register is the offset of a POKEY write register from the chip's origin.
type Register uint8

// List of write registers used by pokeycore.
const (
	AUDF1  Register = 0x00
	AUDC1  Register = 0x01
	AUDF2  Register = 0x02
	AUDC2  Register = 0x03
	AUDF3  Register = 0x04
	AUDC3  Register = 0x05
	AUDF4  Register = 0x06
	AUDC4  Register = 0x07
	AUDCTL Register = 0x08
	IRQEN  Register = 0x0e
	SKCTL  Register = 0x0f
)

var registerNames = map[Register]string{
	AUDF1:  "AUDF1",
	AUDC1:  "AUDC1",
	AUDF2:  "AUDF2",
	AUDC2:  "AUDC2",
	AUDF3:  "AUDF3",
	AUDC3:  "AUDC3",
	AUDF4:  "AUDF4",
	AUDC4:  "AUDC4",
	AUDCTL: "AUDCTL",
	IRQEN:  "IRQEN",
	SKCTL:  "SKCTL",
}

func (r Register) String() string {
	if n, ok := registerNames[r]; ok {
		return n
	}
	return fmt.Sprintf("POKEY+%02x", uint8(r))
}

// Address returns the absolute address of the register in the Atari 8-bit
// memory map.
func (r Register) Address() uint16 {
	return Origin + uint16(r)
}

// AUDFx returns the frequency register for the voice. Voices are numbered from
// zero.
func AUDFx(voice int) Register {
	return AUDF1 + Register(voice*2)
}

// AUDCx returns the control register for the voice. Voices are numbered from
// zero.
func AUDCx(voice int) Register {
	return AUDC1 + Register(voice*2)
}

// IsAUDC returns true if the register is one of the four AUDCx registers.
func (r Register) IsAUDC() bool {
	return r <= AUDC4 && r&0x01 == 0x01
}

// IsAUDF returns true if the register is one of the four AUDFx registers.
func (r Register) IsAUDF() bool {
	return r <= AUDF4 && r&0x01 == 0x00
}

// Voice returns the voice number for AUDCx and AUDFx registers. The result is
// meaningless for other registers.
func (r Register) Voice() int {
	return int(r) >> 1
}

// SKCTL values. The low two bits control initialisation mode. when both bits
// are zero the polynomial counters and the 15kHz/64kHz clock prescalers are
// held in reset.
//
// from 'Altirra Reference', page 111:
//
// "When exiting initialization mode, the polynomial counters begin counting
// immediately"
const (
	SKCTLInit uint8 = 0x00

	// keyboard debounce and keyboard scan enabled. the serial clock bits (4 to
	// 6) are left at zero, meaning the serial clocks run from the timers
	SKCTLNormal uint8 = 0x03
)

// IRQEN bits.
const (
	IRQTimer1            uint8 = 0x01
	IRQTimer2            uint8 = 0x02
	IRQTimer4            uint8 = 0x04
	IRQSerialOutComplete uint8 = 0x08
	IRQSerialOutNeeded   uint8 = 0x10
	IRQSerialInReady     uint8 = 0x20
	IRQKeyboard          uint8 = 0x40
	IRQBreak             uint8 = 0x80
)

// AUDCTL bits.
const (
	AUDCTL15kHz     uint8 = 0x01
	AUDCTLHighPass2 uint8 = 0x02 // channel 2 filtered by channel 4
	AUDCTLHighPass1 uint8 = 0x04 // channel 1 filtered by channel 3
	AUDCTLJoin34    uint8 = 0x08
	AUDCTLJoin12    uint8 = 0x10
	AUDCTLFast3     uint8 = 0x20 // channel 3 clocked at 1.79MHz
	AUDCTLFast1     uint8 = 0x40 // channel 1 clocked at 1.79MHz
	AUDCTLPoly9     uint8 = 0x80
)

// Clock frequencies (NTSC). The 64kHz and 15kHz clocks are derived from the
// machine clock by dividing by 28 and 114 respectively.
const (
	ClockMachine = 1789773.0
	Div64kHz     = 28
	Div15kHz     = 114
	Clock64kHz   = ClockMachine / Div64kHz
	Clock15kHz   = ClockMachine / Div15kHz
)

// CyclesPerScanline is the number of machine cycles in one scanline. It is
// the same as the 15kHz divider.
const CyclesPerScanline = Div15kHz
