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

type channel struct {
	num int

	audf uint8
	audc AUDC

	// countdown to the next underflow. reloaded with the channel's period
	counter int

	// the waveform bit. has no effect on output if the channel is in
	// volume-only mode
	pulse uint8

	// the high-pass flip-flop. from 'Altirra Reference', page 107:
	//
	// "When the high-pass filter is disabled, the high-pass flip-flop is forced
	// to a 1, but the XOR still takes place."
	filter uint8
}

func (ch *channel) String() string {
	return fmt.Sprintf("Ch%d: AUDF=%02x AUDC=%02x (%s)", ch.num+1, ch.audf, uint8(ch.audc), ch.audc)
}

// underflow updates the waveform bit. called whenever the channel's counter
// reaches zero
func (ch *channel) underflow(p *polynomials) {
	if ch.audc.IsPoly5Gated() && poly5bit[p.ct5bit] != 0x01 {
		return
	}

	switch {
	case ch.audc.IsPure():
		ch.pulse ^= 0x01
	case ch.audc.IsPoly4():
		ch.pulse = poly4bit[p.ct4bit]
	default:
		ch.pulse = p.noise()
	}
}

// from 'Altirra Reference', page 105:
//
// "Bit 4 enables volume-only mode. When set, the waveform output is overridden
// and hardwired on at the output."
func (ch *channel) volume() uint8 {
	if ch.audc.IsVolumeOnly() {
		return ch.audc.Volume()
	}
	return ((ch.pulse ^ ch.filter) & 0x01) * ch.audc.Volume()
}
