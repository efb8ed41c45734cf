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

// Package environment provides the context for a simulated chip. It bundles
// together the preferences, the source of random numbers and the logging
// permission.
package environment

import (
	"github.com/jetsetilly/pokeycore/hardware/preferences"
	"github.com/jetsetilly/pokeycore/hardware/startup"
	"github.com/jetsetilly/pokeycore/random"
)

// Label is used to name the environment
type Label string

// MainEmulation is the label of the environment that is allowed to log.
const MainEmulation = Label("")

// Environment is used to provide context for a simulated chip. Particularly
// useful when more than one chip is being simulated
type Environment struct {
	Label Label

	// any randomisation required by the simulation should be retreived
	// through this structure
	Random *random.Random

	// the chip preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the Environment type.
//
// The prefs argument can be nil, in which case a new Preferences instance
// will be created. Providing a non-nil value allows the preferences of more
// than one simulation to be synchronised.
func NewEnvironment(label Label, seed uint64, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label:  label,
		Random: random.NewRandom(seed),
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// Normalise ensures the environment is in an known default state. Useful for
// regression testing where the initial state must be the same for every run of
// the test.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
	env.Random.Reset()
	env.Prefs.SetDefaults()
}

// Config returns the startup configuration from the preferences. The
// configuration is validated.
func (env *Environment) Config() (startup.Config, error) {
	cfg := env.Prefs.Config()
	return cfg, cfg.Validate()
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return env.IsEmulation(MainEmulation)
}

// IsEmulation checks the emulation label and returns true if it matches
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}
