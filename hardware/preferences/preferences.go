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

package preferences

import (
	"fmt"
	"math"

	"github.com/jetsetilly/pokeycore/hardware/startup"
	"github.com/jetsetilly/pokeycore/prefs"
	"github.com/jetsetilly/pokeycore/resources"
)

// Preferences for the POKEY at startup.
type Preferences struct {
	dsk *prefs.Disk

	// the rate in Hz at which the playback timer fires
	PlayRate prefs.Float

	// clock channel 1 at 1.79MHz. the AUDCTL value must also select this
	FastMode prefs.Bool

	AUDCTL  prefs.Int
	IRQMask prefs.Int

	// the value written to every AUDFx register. a value of -1 means the
	// value is derived from the play rate
	AUDF prefs.Int

	// scanlines to wait before enabling interrupts
	SettleScanlines prefs.Int

	// skip the AUDCTL write during startup if the value is zero
	SkipZeroAUDCTL prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.PlayRate.SetHookPre(func(v prefs.Value) error {
		if f := v.(float64); f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("play rate must be positive")
		}
		return nil
	})
	p.AUDCTL.SetHookPre(byteRange("AUDCTL", 0))
	p.IRQMask.SetHookPre(byteRange("IRQ mask", 0))
	p.AUDF.SetHookPre(byteRange("AUDF", startup.DeriveAUDF))
	p.SettleScanlines.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("settle delay cannot be negative")
		}
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("pokey.playRate", &p.PlayRate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("pokey.fastMode", &p.FastMode)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("pokey.audctl", &p.AUDCTL)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("pokey.irqMask", &p.IRQMask)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("pokey.audf1", &p.AUDF)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("pokey.settleScanlines", &p.SettleScanlines)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("pokey.skipZeroAUDCTL", &p.SkipZeroAUDCTL)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// returns a hook function that rejects values that do not fit in a register
func byteRange(name string, lo int) func(prefs.Value) error {
	return func(v prefs.Value) error {
		if n := v.(int); n < lo || n > math.MaxUint8 {
			return fmt.Errorf("%s value out of range: %d", name, n)
		}
		return nil
	}
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	def := startup.DefaultConfig()
	p.PlayRate.Set(def.PlayRate)
	p.FastMode.Set(def.FastMode)
	p.AUDCTL.Set(int(def.AUDCTL))
	p.IRQMask.Set(int(def.IRQMask))
	p.AUDF.Set(def.AUDF)
	p.SettleScanlines.Set(def.SettleScanlines)
	p.SkipZeroAUDCTL.Set(def.SkipZeroAUDCTL)
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Config returns the preferences as a startup.Config.
func (p *Preferences) Config() startup.Config {
	return startup.Config{
		PlayRate:        p.PlayRate.Get().(float64),
		FastMode:        p.FastMode.Get().(bool),
		AUDCTL:          uint8(p.AUDCTL.Get().(int)),
		IRQMask:         uint8(p.IRQMask.Get().(int)),
		AUDF:            p.AUDF.Get().(int),
		SettleScanlines: p.SettleScanlines.Get().(int),
		SkipZeroAUDCTL:  p.SkipZeroAUDCTL.Get().(bool),
	}
}
