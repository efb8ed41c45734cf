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

// AUDC is a value written to one of the AUDCx registers. The upper three bits
// select the distortion, bit four selects volume-only mode and the lower four
// bits are the volume.
type AUDC uint8

// Distortion values. These occupy the upper three bits of an AUDC value.
//
// from 'Altirra Reference', page 105. bit 7 clear gates the channel output
// with the 5-bit polynomial. bit 5 set selects a pure tone. otherwise bit 6
// selects the 4-bit polynomial over the 17-bit (or 9-bit) polynomial
const (
	DistPoly5Poly17 AUDC = 0x00
	DistPoly5       AUDC = 0x20
	DistPoly5Poly4  AUDC = 0x40
	DistPoly17      AUDC = 0x80
	DistPure        AUDC = 0xa0
	DistPoly4       AUDC = 0xc0
)

// VolumeOnly is the bit that forces the channel output to the volume level
// regardless of the waveform.
const VolumeOnly AUDC = 0x10

const (
	// AUDCSilent is volume-only mode with a volume of zero. This is the
	// correct way of silencing a voice.
	AUDCSilent = VolumeOnly

	// AUDCNoiseZero is the all-zero AUDC value. It is NOT silence. It selects
	// the 5-bit/17-bit polynomial noise distortion at volume zero and the
	// noise circuitry continues to run.
	AUDCNoiseZero AUDC = 0x00
)

// NewAUDC returns an AUDC value for the distortion and volume. The volume is
// masked to four bits.
func NewAUDC(dist AUDC, volume uint8) AUDC {
	return (dist & 0xe0) | AUDC(volume&0x0f)
}

// Volume returns the volume nibble.
func (c AUDC) Volume() uint8 {
	return uint8(c & 0x0f)
}

// Distortion returns the distortion bits.
func (c AUDC) Distortion() AUDC {
	return c & 0xe0
}

// IsVolumeOnly returns true if volume-only mode is selected.
func (c AUDC) IsVolumeOnly() bool {
	return c&VolumeOnly == VolumeOnly
}

// IsSilent returns true if the value is volume-only mode with zero volume.
func (c AUDC) IsSilent() bool {
	return c.IsVolumeOnly() && c.Volume() == 0
}

// IsPure returns true if the distortion selects a pure tone.
func (c AUDC) IsPure() bool {
	return c&0x20 == 0x20
}

// IsPoly4 returns true if the distortion selects the 4-bit polynomial.
func (c AUDC) IsPoly4() bool {
	return c&0x60 == 0x40
}

// IsPoly5Gated returns true if the output is gated by the 5-bit polynomial.
func (c AUDC) IsPoly5Gated() bool {
	return c&0x80 == 0x00
}

func (c AUDC) String() string {
	if c.IsSilent() {
		return "silent"
	}
	if c.IsVolumeOnly() {
		return fmt.Sprintf("volume-only %d", c.Volume())
	}

	var d string
	switch c.Distortion() {
	case DistPoly5Poly17:
		d = "poly5+poly17"
	case DistPoly5, DistPoly5 | 0x40:
		d = "poly5"
	case DistPoly5Poly4:
		d = "poly5+poly4"
	case DistPoly17:
		d = "poly17"
	case DistPure, DistPure | 0x40:
		d = "pure"
	case DistPoly4:
		d = "poly4"
	}

	return fmt.Sprintf("%s %d", d, c.Volume())
}
