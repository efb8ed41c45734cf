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

package wavwriter

import (
	"time"

	"github.com/jetsetilly/pokeycore/curated"
	"github.com/jetsetilly/pokeycore/hardware/pokey"
	"github.com/jetsetilly/pokeycore/logger"
	"github.com/jetsetilly/pokeycore/pitch"
)

// Instrument is a voice setting to be auditioned.
type Instrument struct {
	// the AUDF value that plays the instrument at its recorded pitch
	AUDF uint8

	// the note at which the instrument was recorded
	Base pitch.Note

	// distortion and volume for the voice
	AUDC pokey.AUDC
}

// Audition plays the instrument on the first voice of the chip for every note
// in the list. The bus must be connected to the same chip as the one being
// recorded. Notes that can not be played because the divisor does not fit in
// the AUDF register are still recorded, at the clamped divisor, and logged.
func (aw *WavWriter) Audition(bus pokey.Bus, pk *pokey.Pokey, ins Instrument, notes []pitch.Note, length time.Duration) error {
	if ins.AUDC.IsVolumeOnly() {
		return curated.Errorf("wavwriter: %v", "instrument is volume-only")
	}

	samples := int(length.Seconds() * float64(aw.sampleRate))
	for _, n := range notes {
		if !n.InRange() {
			return curated.Errorf(pitch.OutOfRange, int(n))
		}

		m, idx, clamped := pitch.Effective(n, ins.Base)
		if clamped {
			logger.Logf(aw.env, "wavwriter", "note %s clamped to table index %d", n, idx)
		}

		audf, ok := pitch.Divisor(ins.AUDF, m)
		if !ok {
			logger.Logf(aw.env, "wavwriter", "note %s out of range for AUDF %02x", n, ins.AUDF)
		}

		bus.Write(pokey.AUDF1, audf)
		bus.Write(pokey.AUDC1, uint8(ins.AUDC))
		aw.Record(pk, samples)

		// a short gap between notes
		bus.Write(pokey.AUDC1, uint8(pokey.AUDCSilent))
		aw.Record(pk, samples/10)
	}

	return nil
}
