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

	"github.com/jetsetilly/pokeycore/pitch/temperament"
)

// Note is an index into the pitch table.
type Note int

// The range of the pitch table. Note 24 plays at the base pitch of an
// instrument, note 0 is two octaves lower and note 60 is three octaves higher.
const (
	NumNotes  = temperament.NumNotes
	MinNote   = Note(0)
	MaxNote   = Note(NumNotes - 1)
	UnityNote = Note(temperament.UnityNote)
)

// NotesPerOctave in the equal temperament tuning.
const NotesPerOctave = temperament.NotesPerOctave

var noteNames = [NotesPerOctave]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// InRange returns true if the note is an index in the pitch table.
func (n Note) InRange() bool {
	return n >= MinNote && n <= MaxNote
}

// Interval returns the signed number of semitones from the unity note.
func (n Note) Interval() int {
	return int(n - UnityNote)
}

// String returns the name of the note relative to the unity note, which is
// named C-2. An instrument recorded at C therefore plays at the named note.
// Notes out of range are shown as a bare number.
func (n Note) String() string {
	if !n.InRange() {
		return fmt.Sprintf("note %d", int(n))
	}
	return fmt.Sprintf("%s-%d", noteNames[int(n)%NotesPerOctave], int(n)/NotesPerOctave)
}
