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

package pitchcheck_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/pokeycore/curated"
	"github.com/jetsetilly/pokeycore/hardware/pokey"
	"github.com/jetsetilly/pokeycore/hardware/startup"
	"github.com/jetsetilly/pokeycore/logger"
	"github.com/jetsetilly/pokeycore/pitch"
	"github.com/jetsetilly/pokeycore/pitchcheck"
	"github.com/jetsetilly/pokeycore/test"
	"github.com/jetsetilly/pokeycore/wavwriter"
)

func TestSineFrequency(t *testing.T) {
	rec := pitchcheck.Recording{
		SampleRate: 44100,
		Data:       make([]float32, 44100),
	}
	for i := range rec.Data {
		rec.Data[i] = float32(math.Sin(2 * math.Pi * 440 * float64(i) / rec.SampleRate))
	}

	f, err := rec.Frequency()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, math.Abs(f-440) < 0.1, f)
}

func TestNoTone(t *testing.T) {
	rec := pitchcheck.Recording{
		SampleRate: 44100,
		Data:       make([]float32, 1000),
	}
	_, err := rec.Frequency()
	test.ExpectSuccess(t, curated.Is(err, pitchcheck.NoTone))

	_, err = pitchcheck.Recording{}.Frequency()
	test.ExpectSuccess(t, curated.Is(err, pitchcheck.NoTone))
}

func TestCents(t *testing.T) {
	test.ExpectEquality(t, pitchcheck.Cents(880, 440), 1200.0)
	test.ExpectEquality(t, pitchcheck.Cents(440, 880), -1200.0)
	test.ExpectEquality(t, pitchcheck.Expected(1000, 4), 100.0)
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := pitchcheck.Load(logger.Allow, "recording.ogg")
	test.ExpectSuccess(t, curated.Is(err, pitchcheck.UnsupportedFormat))

	_, err = pitchcheck.Load(logger.Allow, filepath.Join(t.TempDir(), "missing.wav"))
	test.ExpectSuccess(t, curated.Is(err, pitchcheck.DecodeError))
}

func TestMP3(t *testing.T) {
	rec, err := pitchcheck.Load(logger.Allow, filepath.Join("testdata", "silence.mp3"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rec.SampleRate, 44100.0)
	test.ExpectSuccess(t, len(rec.Data) > 0)

	_, err = rec.Frequency()
	test.ExpectSuccess(t, curated.Is(err, pitchcheck.NoTone))
}

func TestMP3Corrupt(t *testing.T) {
	junk := bytes.Repeat([]byte("not an mp3 file "), 64)

	_, err := pitchcheck.DecodeMP3(logger.Allow, bytes.NewReader(junk))
	test.ExpectSuccess(t, curated.Is(err, pitchcheck.DecodeError))

	filename := filepath.Join(t.TempDir(), "junk.mp3")
	test.DemandSuccess(t, os.WriteFile(filename, junk, 0o644))
	_, err = pitchcheck.Load(logger.Allow, filename)
	test.ExpectSuccess(t, curated.Is(err, pitchcheck.DecodeError))
}

// renders a single pure tone from the simulated chip and checks that the
// measured pitch is correct
func TestSimulatedTone(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "tone.wav")

	pk := pokey.NewPokey()
	startup.Initialise(logger.Allow, pk, startup.DefaultConfig(), nil)

	aw, err := wavwriter.New(logger.Allow, filename, wavwriter.SampleFreq)
	test.DemandSuccess(t, err)

	pk.Write(pokey.AUDF1, 49)
	pk.Write(pokey.AUDC1, uint8(pokey.NewAUDC(pokey.DistPure, 15)))
	aw.Record(pk, wavwriter.SampleFreq)
	test.DemandSuccess(t, aw.EndMixing())

	rec, err := pitchcheck.Load(logger.Allow, filename)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rec.SampleRate, float64(wavwriter.SampleFreq))
	test.ExpectEquality(t, len(rec.Data), wavwriter.SampleFreq)

	r, err := pitchcheck.Check(rec, pokey.Clock64kHz, 49)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, math.Abs(r.Cents) < 5, r)
}

// an instrument played an octave above its recorded pitch
func TestAuditionOctave(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "audition.wav")

	pk := pokey.NewPokey()
	startup.Initialise(logger.Allow, pk, startup.DefaultConfig(), nil)

	aw, err := wavwriter.New(logger.Allow, filename, wavwriter.SampleFreq)
	test.DemandSuccess(t, err)

	ins := wavwriter.Instrument{
		AUDF: 49,
		Base: pitch.UnityNote,
		AUDC: pokey.NewAUDC(pokey.DistPure, 15),
	}
	err = aw.Audition(pk, pk, ins, []pitch.Note{pitch.UnityNote + 12}, time.Second)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, aw.EndMixing())

	rec, err := pitchcheck.Load(logger.Allow, filename)
	test.DemandSuccess(t, err)

	// an AUDF value of 49 is a period of 50. an octave higher is a period
	// of 25 and therefore an AUDF value of 24
	r, err := pitchcheck.Check(rec, pokey.Clock64kHz, 24)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, math.Abs(r.Cents) < 5, r)

	// and the frequency has doubled
	low := pitchcheck.Expected(pokey.Clock64kHz, 49)
	test.ExpectSuccess(t, math.Abs(pitchcheck.Cents(r.Measured, low)-1200) < 5, r)
}
