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
	"github.com/jetsetilly/pokeycore/curated"
)

// Sentinel error patterns.
const (
	OutOfRange = "pitch: note index out of range: %d"
)

// Lookup returns the multiplier for the note. An out of range note is an
// error.
func Lookup(n Note) (Multiplier, error) {
	if !n.InRange() {
		return 0, curated.Errorf(OutOfRange, int(n))
	}
	return NewMultiplier(stored[n][0], stored[n][1]), nil
}

// MustLookup is the same as Lookup() but panics if the note is out of range.
// It should only be used by callers that have already clamped the note.
func MustLookup(n Note) Multiplier {
	m, err := Lookup(n)
	if err != nil {
		panic(err)
	}
	return m
}

// Clamp the note to the range of the pitch table. Returns true if the note
// had to be changed.
func Clamp(n Note) (Note, bool) {
	switch {
	case n < MinNote:
		return MinNote, true
	case n > MaxNote:
		return MaxNote, true
	}
	return n, false
}

// Effective returns the multiplier to use for a note played by an instrument
// whose recorded pitch is the base note. The table index is calculated as:
//
//	export - base + UnityNote
//
// and clamped to the range of the table. The index is returned along with a
// boolean that is true if clamping was necessary.
func Effective(export Note, base Note) (Multiplier, Note, bool) {
	n, clamped := Clamp(export - base + UnityNote)
	return MustLookup(n), n, clamped
}
