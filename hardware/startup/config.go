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
	"fmt"
	"math"

	"github.com/jetsetilly/pokeycore/curated"
	"github.com/jetsetilly/pokeycore/hardware/pokey"
)

// Sentinel error patterns.
const (
	BadPlayRate    = "startup: play rate must be positive: %v"
	FastModeAUDCTL = "startup: fast mode requires AUDCTL bit 6: %02x"
	BadAUDF        = "startup: AUDF value out of range: %d"
	BadSettle      = "startup: settle delay cannot be negative: %d"
)

// DeriveAUDF is the AUDF value in the Config type that indicates the divisor
// should be derived from the play rate.
const DeriveAUDF = -1

// Config is the build time configuration of the chip.
type Config struct {
	// the rate in Hz at which the playback timer should fire
	PlayRate float64

	// channel 1 is clocked at 1.79MHz rather than the 64kHz (or 15kHz) clock.
	// the AUDCTL value must select this mode with bit 6
	FastMode bool

	// value written to AUDCTL
	AUDCTL uint8

	// value written to IRQEN once the chip is ready
	IRQMask uint8

	// the divisor written to every AUDFx register. a value of DeriveAUDF
	// means the value is derived from the play rate
	AUDF int

	// number of scanlines to wait after leaving initialisation mode and
	// before enabling interrupts. only applies to buses that implement the
	// pokey.Waiter interface
	SettleScanlines int

	// skip the AUDCTL write if the value is zero
	SkipZeroAUDCTL bool
}

// DefaultConfig returns a Config with the default values.
func DefaultConfig() Config {
	return Config{
		PlayRate: 8000,
		IRQMask:  pokey.IRQTimer1,
		AUDF:     DeriveAUDF,
	}
}

func (cfg Config) String() string {
	return fmt.Sprintf("rate=%.1fHz fast=%v AUDCTL=%02x IRQEN=%02x AUDF=%02x",
		cfg.PlayRate, cfg.FastMode, cfg.AUDCTL, cfg.IRQMask, cfg.Divisor())
}

// Validate returns an error if the configuration can't be used to initialise
// the chip.
func (cfg Config) Validate() error {
	if cfg.AUDF < DeriveAUDF || cfg.AUDF > math.MaxUint8 {
		return curated.Errorf(BadAUDF, cfg.AUDF)
	}
	if cfg.AUDF == DeriveAUDF && (cfg.PlayRate <= 0 || math.IsNaN(cfg.PlayRate) || math.IsInf(cfg.PlayRate, 0)) {
		return curated.Errorf(BadPlayRate, cfg.PlayRate)
	}
	if cfg.FastMode && cfg.AUDCTL&pokey.AUDCTLFast1 != pokey.AUDCTLFast1 {
		return curated.Errorf(FastModeAUDCTL, cfg.AUDCTL)
	}
	if cfg.SettleScanlines < 0 {
		return curated.Errorf(BadSettle, cfg.SettleScanlines)
	}
	return nil
}

// Clock returns the frequency of the clock driving channel 1.
func (cfg Config) Clock() float64 {
	if cfg.FastMode {
		return pokey.ClockMachine
	}
	if cfg.AUDCTL&pokey.AUDCTL15kHz == pokey.AUDCTL15kHz {
		return pokey.Clock15kHz
	}
	return pokey.Clock64kHz
}

// Divisor returns the value written to the AUDFx registers. If the AUDF field
// is DeriveAUDF then the value is calculated from the play rate and clamped to
// the range of the register.
//
// from 'Altirra Reference', page 104. the period of a 1.79MHz timer is N+4
// cycles and the period of a 64kHz or 15kHz timer is N+1
func (cfg Config) Divisor() uint8 {
	if cfg.AUDF > DeriveAUDF && cfg.AUDF <= math.MaxUint8 {
		return uint8(cfg.AUDF)
	}
	if cfg.PlayRate <= 0 || math.IsNaN(cfg.PlayRate) || math.IsInf(cfg.PlayRate, 0) {
		return math.MaxUint8
	}

	adj := 1.0
	if cfg.FastMode {
		adj = 4.0
	}

	n := math.Floor(cfg.Clock()/cfg.PlayRate+0.5) - adj
	return uint8(max(0, min(n, math.MaxUint8)))
}

// Rate returns the actual rate at which the playback timer fires with the
// divisor returned by Divisor(). It will usually differ slightly from the
// requested play rate.
func (cfg Config) Rate() float64 {
	adj := 1.0
	if cfg.FastMode {
		adj = 4.0
	}
	return cfg.Clock() / (float64(cfg.Divisor()) + adj)
}
