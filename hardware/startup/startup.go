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

package startup

import (
	"github.com/jetsetilly/pokeycore/hardware/pokey"
	"github.com/jetsetilly/pokeycore/logger"
)

// State is the playback state that is reset when the chip is initialised.
type State struct {
	// position of the sample decoder. samples are packed two to a byte
	NibbleCursor uint8
}

// Reset the state to its initial value.
func (st *State) Reset() {
	st.NibbleCursor = 0
}

// Initialise the chip. See the package documentation for the order in which
// the registers are written. The state argument can be nil.
//
// Calling Initialise() more than once leaves the chip in the same state as
// calling it once.
func Initialise(env logger.Permission, bus pokey.Bus, cfg Config, state *State) {
	bus.Write(pokey.IRQEN, 0x00)
	bus.Write(pokey.SKCTL, pokey.SKCTLInit)

	for i := range pokey.NumVoices {
		bus.Write(pokey.AUDCx(i), uint8(pokey.AUDCSilent))
	}

	audf := cfg.Divisor()
	for i := range pokey.NumVoices {
		bus.Write(pokey.AUDFx(i), audf)
	}

	if state != nil {
		state.Reset()
	}

	// initialisation mode does not clear AUDCTL so the write can only be
	// skipped if the chip is known to hold zero already
	if cfg.AUDCTL != 0x00 || !cfg.SkipZeroAUDCTL {
		bus.Write(pokey.AUDCTL, cfg.AUDCTL)
	}

	bus.Write(pokey.SKCTL, pokey.SKCTLNormal)

	if cfg.SettleScanlines > 0 {
		if w, ok := bus.(pokey.Waiter); ok {
			w.WaitScanlines(cfg.SettleScanlines)
		} else {
			logger.Logf(env, "startup", "bus cannot wait. settle delay of %d scanlines ignored", cfg.SettleScanlines)
		}
	}

	bus.Write(pokey.IRQEN, cfg.IRQMask)

	logger.Logf(env, "startup", "chip initialised: %s", cfg)
}
