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
	"path/filepath"
	"testing"

	"github.com/jetsetilly/pokeycore/hardware/startup"
	"github.com/jetsetilly/pokeycore/prefs"
	"github.com/jetsetilly/pokeycore/test"
)

func TestDefaults(t *testing.T) {
	p, err := newPreferences(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Config(), startup.DefaultConfig())
	test.ExpectSuccess(t, p.Config().Validate())
}

func TestSaveAndLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.PlayRate.Set(4000.0))
	test.ExpectSuccess(t, p.AUDCTL.Set("0x41"))
	test.ExpectSuccess(t, p.FastMode.Set(true))
	test.ExpectSuccess(t, p.SettleScanlines.Set(2))
	test.DemandSuccess(t, p.Save())

	q, err := newPreferences(pth)
	test.DemandSuccess(t, err)

	cfg := q.Config()
	test.ExpectEquality(t, cfg.PlayRate, 4000.0)
	test.ExpectEquality(t, cfg.AUDCTL, 0x41)
	test.ExpectSuccess(t, cfg.FastMode)
	test.ExpectEquality(t, cfg.SettleScanlines, 2)
	test.ExpectEquality(t, cfg.AUDF, startup.DeriveAUDF)
	test.ExpectSuccess(t, cfg.Validate())
}

func TestCommandLine(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	prefs.PushCommandLineStack("pokey.audf1::0x20; pokey.irqMask::0x05")
	defer prefs.PopCommandLineStack()

	p, err := newPreferences(pth)
	test.DemandSuccess(t, err)

	cfg := p.Config()
	test.ExpectEquality(t, cfg.AUDF, 0x20)
	test.ExpectEquality(t, cfg.Divisor(), 0x20)
	test.ExpectEquality(t, cfg.IRQMask, 0x05)
}

func TestRanges(t *testing.T) {
	p, err := newPreferences(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.AUDCTL.Set(256))
	test.ExpectFailure(t, p.AUDCTL.Set(-1))
	test.ExpectFailure(t, p.IRQMask.Set("0x100"))
	test.ExpectFailure(t, p.AUDF.Set(-2))
	test.ExpectSuccess(t, p.AUDF.Set(-1))
	test.ExpectSuccess(t, p.AUDF.Set(255))
	test.ExpectFailure(t, p.PlayRate.Set(0.0))
	test.ExpectFailure(t, p.PlayRate.Set("-50"))
	test.ExpectFailure(t, p.SettleScanlines.Set(-1))

	// rejected values leave the preference unchanged
	test.ExpectEquality(t, p.Config().AUDCTL, 0)
	test.ExpectEquality(t, p.Config().PlayRate, startup.DefaultConfig().PlayRate)
}
