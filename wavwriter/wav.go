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
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/pokeycore/curated"
	"github.com/jetsetilly/pokeycore/digest"
	"github.com/jetsetilly/pokeycore/hardware/pokey"
	"github.com/jetsetilly/pokeycore/logger"
)

// SampleFreq is the default sample rate of the WAV file.
const SampleFreq = 44100

// the maximum volume output by the simulated chip.
const maxVolume = 60

// WavWriter samples the output of the simulated POKEY.
type WavWriter struct {
	env        logger.Permission
	filename   string
	sampleRate int
	buffer     []int

	// digest of every level output by the chip during recording
	dig *digest.Audio

	// number of machine cycles owed to the chip. the number of cycles per
	// sample is not a whole number
	owed float64
}

// New is the preferred method of initialisation for the WavWriter type.
func New(env logger.Permission, filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf("wavwriter: %v", "sample rate must be positive")
	}

	aw := &WavWriter{
		env:        env,
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0, sampleRate),
		dig:        digest.NewAudio(),
	}

	return aw, nil
}

// Record steps the chip for the number of machine cycles in the number of
// samples. Each sample is the average output level of the chip over the
// cycles since the previous sample.
func (aw *WavWriter) Record(pk *pokey.Pokey, samples int) {
	cycles := pokey.ClockMachine / float64(aw.sampleRate)

	for range samples {
		aw.owed += cycles

		var sum, n int
		for aw.owed >= 1.0 {
			pk.Step()
			v := pk.Volume()
			aw.dig.SetAudio(v)
			sum += int(v)
			n++
			aw.owed--
		}

		var v int
		if n > 0 {
			v = sum * 32767 / (n * maxVolume)
		}
		aw.buffer = append(aw.buffer, v)
	}
}

// Len returns the number of samples recorded so far.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// Digest returns the digest of the chip output. Two recordings with the same
// digest are identical.
func (aw *WavWriter) Digest() string {
	return aw.dig.String()
}

// Reset discards the recorded samples.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
	aw.owed = 0
	aw.dig.ResetDigest()
}

// EndMixing writes the recorded samples to disk as a mono 16bit WAV file.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, 16, 1, 1)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: 16,
	}

	logger.Logf(aw.env, "wavwriter", "writing %d samples to %s", len(aw.buffer), aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	// closing the encoder writes the WAV header
	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
