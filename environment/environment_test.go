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

package environment_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/pokeycore/environment"
	"github.com/jetsetilly/pokeycore/hardware/pokey"
	"github.com/jetsetilly/pokeycore/hardware/startup"
	"github.com/jetsetilly/pokeycore/logger"
	"github.com/jetsetilly/pokeycore/test"
)

func newEnv(t *testing.T, label environment.Label) *environment.Environment {
	t.Helper()

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	env, err := environment.NewEnvironment(label, 10, nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	return env
}

func TestLogging(t *testing.T) {
	logger.Clear()

	mainEnv := newEnv(t, environment.MainEmulation)
	test.ExpectSuccess(t, mainEnv.AllowLogging())
	cfg, err := mainEnv.Config()
	test.DemandSuccess(t, err)
	startup.Initialise(mainEnv, pokey.NewPokey(), cfg, nil)

	w := &test.CompareWriter{}
	logger.Write(w)
	test.ExpectInequality(t, w.String(), "")

	// other environments do not log
	logger.Clear()
	other := newEnv(t, "audition")
	test.ExpectFailure(t, other.AllowLogging())
	startup.Initialise(other, pokey.NewPokey(), cfg, nil)

	w.Clear()
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestNormalise(t *testing.T) {
	a := newEnv(t, environment.MainEmulation)
	b := newEnv(t, environment.MainEmulation)

	pa := pokey.NewPokey()
	pa.Randomise(a.Random)
	pb := pokey.NewPokey()
	pb.Randomise(b.Random)
	test.ExpectEquality(t, pa.State(), pb.State())

	cfg, err := a.Config()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cfg, startup.DefaultConfig())
}
