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

package pitch

import (
	"fmt"
	"math"
	"strings"

	"github.com/jetsetilly/pokeycore/curated"
	"github.com/jetsetilly/pokeycore/pitch/temperament"
)

// Sentinel error patterns.
const (
	BadTuning = "pitch: bad tuning: %s"
	Overflow  = "pitch: note %d overflows the multiplier"
	Drift     = "pitch: stored table differs from formula at note %d: %04x != %04x"
)

// MaxTableSize is the largest table that Generate() will create. A 16 bit
// multiplier has no more distinct values than this.
const MaxTableSize = math.MaxUint16 + 1

// Tuning describes a table of notes with equally spaced pitches.
type Tuning struct {
	// number of notes in the octave
	NotesPerOctave int

	// the index of the note with a multiplier of one
	UnityNote int

	// number of entries in the table
	Size int
}

// EqualTemperament is the tuning of the stored pitch table.
var EqualTemperament = Tuning{
	NotesPerOctave: NotesPerOctave,
	UnityNote:      int(UnityNote),
	Size:           NumNotes,
}

func (t Tuning) String() string {
	return fmt.Sprintf("%d notes per octave, unity at %d, %d notes", t.NotesPerOctave, t.UnityNote, t.Size)
}

// Table is a list of multipliers indexed by note.
type Table []Multiplier

func (tab Table) String() string {
	s := strings.Builder{}
	for i, m := range tab {
		s.WriteString(fmt.Sprintf("%2d %-5s $%04x %s\n", i, Note(i), uint16(m), m))
	}
	return s.String()
}

// Generate a table from the formula. Each entry is:
//
//	round(256 * 2^((n - unity) / notesPerOctave))
//
// with halves rounded up.
func Generate(t Tuning) (Table, error) {
	if t.NotesPerOctave <= 0 {
		return nil, curated.Errorf(BadTuning, "notes per octave must be positive")
	}
	if t.Size <= 0 {
		return nil, curated.Errorf(BadTuning, "table must have at least one note")
	}
	if t.UnityNote < 0 || t.UnityNote >= t.Size {
		return nil, curated.Errorf(BadTuning, "unity note must be in the table")
	}
	if !temperament.Fits(t.Size, t.UnityNote, t.NotesPerOctave) {
		return nil, curated.Errorf(Overflow, t.UnityNote+8*t.NotesPerOctave)
	}
	if t.Size > MaxTableSize {
		return nil, curated.Errorf(BadTuning, fmt.Sprintf("table cannot have more than %d notes", MaxTableSize))
	}

	tab := make(Table, t.Size)
	for n := range tab {
		v := temperament.Value(n, t.UnityNote, t.NotesPerOctave)
		if v > math.MaxUint16 {
			return nil, curated.Errorf(Overflow, n)
		}
		tab[n] = Multiplier(v)
	}

	return tab, nil
}

// Stored returns a copy of the stored table.
func Stored() Table {
	tab := make(Table, len(stored))
	for n, b := range stored {
		tab[n] = NewMultiplier(b[0], b[1])
	}
	return tab
}

// Verify that the stored table is exactly the same as the table generated by
// the equal temperament formula.
func Verify() error {
	gen, err := Generate(EqualTemperament)
	if err != nil {
		return err
	}

	st := Stored()
	if len(st) != len(gen) {
		return curated.Errorf(BadTuning, fmt.Sprintf("stored table has %d notes", len(st)))
	}

	for n := range gen {
		if st[n] != gen[n] {
			return curated.Errorf(Drift, n, uint16(st[n]), uint16(gen[n]))
		}
	}

	return nil
}
