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

package pitchcheck

import (
	"fmt"
	"math"

	"github.com/jetsetilly/pokeycore/curated"
)

// Frequency returns the fundamental frequency of the recording in Hz.
func (rec Recording) Frequency() (float64, error) {
	if len(rec.Data) < 2 || rec.SampleRate <= 0 {
		return 0, curated.Errorf(NoTone)
	}

	// the output of the POKEY is never negative so the crossings are
	// measured around the mean
	var mean float64
	for _, v := range rec.Data {
		mean += float64(v)
	}
	mean /= float64(len(rec.Data))

	var first, last float64
	var crossings int

	prev := float64(rec.Data[0]) - mean
	for i := 1; i < len(rec.Data); i++ {
		v := float64(rec.Data[i]) - mean
		if prev < 0 && v >= 0 {
			t := float64(i-1) + (-prev / (v - prev))
			if crossings == 0 {
				first = t
			}
			last = t
			crossings++
		}
		prev = v
	}

	if crossings < 2 || last <= first {
		return 0, curated.Errorf(NoTone)
	}

	return float64(crossings-1) * rec.SampleRate / (last - first), nil
}

// Expected returns the frequency of a pure tone for the AUDF value with a
// channel clocked by the 64kHz or 15kHz clock. The waveform changes once per
// period so a full cycle takes two periods.
func Expected(clock float64, audf uint8) float64 {
	return clock / (2 * (float64(audf) + 1))
}

// Cents returns the difference between two frequencies in cents. A positive
// value means the measured frequency is sharp.
func Cents(measured float64, expected float64) float64 {
	return 1200 * math.Log2(measured/expected)
}

// Result of a comparison.
type Result struct {
	Measured float64
	Expected float64
	Cents    float64
}

func (r Result) String() string {
	return fmt.Sprintf("measured %.2fHz expected %.2fHz (%+.2f cents)", r.Measured, r.Expected, r.Cents)
}

// Check the recording against the expected frequency for the AUDF value. The
// clock should be pokey.Clock64kHz or pokey.Clock15kHz.
func Check(rec Recording, clock float64, audf uint8) (Result, error) {
	var r Result
	var err error

	r.Measured, err = rec.Frequency()
	if err != nil {
		return r, err
	}
	r.Expected = Expected(clock, audf)
	r.Cents = Cents(r.Measured, r.Expected)

	return r, nil
}
