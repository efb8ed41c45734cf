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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/pokeycore/curated"
	"github.com/jetsetilly/pokeycore/logger"
)

// Sentinel error patterns.
const (
	UnsupportedFormat = "pitchcheck: unsupported file format: %s"
	DecodeError       = "pitchcheck: %s: %v"
	NoTone            = "pitchcheck: no tone found"
)

const logTag = "pitchcheck"

// Recording is mono PCM data. Stereo recordings are reduced to the left
// channel.
type Recording struct {
	SampleRate float64
	Data       []float32
}

// Load a WAV or MP3 file. The format is chosen by the file extension.
func Load(env logger.Permission, filename string) (Recording, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".wav" && ext != ".mp3" {
		return Recording{}, curated.Errorf(UnsupportedFormat, filepath.Ext(filename))
	}

	f, err := os.Open(filename)
	if err != nil {
		return Recording{}, curated.Errorf(DecodeError, "file", err)
	}
	defer f.Close()

	if ext == ".mp3" {
		return DecodeMP3(env, f)
	}
	return DecodeWAV(env, f)
}

// DecodeWAV decodes WAV data.
func DecodeWAV(env logger.Permission, r io.ReadSeeker) (Recording, error) {
	var rec Recording

	dec := wav.NewDecoder(r)
	if dec == nil {
		return rec, curated.Errorf(DecodeError, "wav", "error decoding")
	}
	if !dec.IsValidFile() {
		return rec, curated.Errorf(DecodeError, "wav", "not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return rec, curated.Errorf(DecodeError, "wav", err)
	}
	floatBuf := buf.AsFloat32Buffer()

	// copy first channel only of data stream
	chans := max(1, int(dec.NumChans))
	rec.Data = make([]float32, 0, len(floatBuf.Data)/chans)
	for i := 0; i < len(floatBuf.Data); i += chans {
		rec.Data = append(rec.Data, floatBuf.Data[i])
	}
	rec.SampleRate = float64(dec.SampleRate)

	logger.Logf(env, logTag, "wav: %d samples at %.0fHz", len(rec.Data), rec.SampleRate)

	return rec, nil
}

// DecodeMP3 decodes MP3 data.
func DecodeMP3(env logger.Permission, r io.Reader) (Recording, error) {
	var rec Recording

	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return rec, curated.Errorf(DecodeError, "mp3", err)
	}

	// according to the go-mp3 docs:
	//
	// "The stream is always formatted as 16bit (little endian) 2 channels even if
	// the source is single channel MP3. Thus, a sample always consists of 4
	// bytes.".
	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)

		// left channel only. the chunk length is always a multiple of four
		for i := 0; i+1 < n; i += 4 {
			v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			rec.Data = append(rec.Data, float32(v))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return rec, curated.Errorf(DecodeError, "mp3", err)
		}
	}
	rec.SampleRate = float64(dec.SampleRate())

	logger.Logf(env, logTag, "mp3: %d samples at %.0fHz", len(rec.Data), rec.SampleRate)

	return rec, nil
}
