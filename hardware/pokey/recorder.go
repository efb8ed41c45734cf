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

package pokey

import (
	"fmt"
	"strings"
)

// Write is a single register write recorded by the Recorder.
type Write struct {
	Reg  Register
	Data uint8
}

func (w Write) String() string {
	if w.Reg.IsAUDC() {
		return fmt.Sprintf("%-6s <- %02x (%s)", w.Reg, w.Data, AUDC(w.Data))
	}
	return fmt.Sprintf("%-6s <- %02x", w.Reg, w.Data)
}

// Recorder implements the Bus interface and keeps a list of every write made
// to it. Writes are forwarded to another Bus if one is supplied.
type Recorder struct {
	next   Bus
	Writes []Write

	// number of scanlines waited for, in the order they happened relative to
	// the writes. the key is the number of writes that had been made when the
	// wait happened
	Waits map[int]int
}

// NewRecorder is the preferred method of initialisation for the Recorder type.
// The next argument can be nil. The zero value is also usable and forwards
// nothing.
func NewRecorder(next Bus) *Recorder {
	return &Recorder{
		next:  next,
		Waits: make(map[int]int),
	}
}

// Write implements the Bus interface.
func (rec *Recorder) Write(reg Register, data uint8) {
	rec.Writes = append(rec.Writes, Write{Reg: reg, Data: data})
	if rec.next != nil {
		rec.next.Write(reg, data)
	}
}

// WaitScanlines implements the Waiter interface. The wait is forwarded if the
// next Bus also implements Waiter.
func (rec *Recorder) WaitScanlines(n int) {
	if rec.Waits == nil {
		rec.Waits = make(map[int]int)
	}
	rec.Waits[len(rec.Writes)] += n
	if w, ok := rec.next.(Waiter); ok {
		w.WaitScanlines(n)
	}
}

// Reset forgets all recorded writes and waits.
func (rec *Recorder) Reset() {
	rec.Writes = rec.Writes[:0]
	clear(rec.Waits)
}

// Index returns the position of the first write that satisfies the filter
// function. Returns -1 if no write is found.
func (rec *Recorder) Index(filter func(Write) bool) int {
	for i, w := range rec.Writes {
		if filter(w) {
			return i
		}
	}
	return -1
}

// LastIndex returns the position of the last write that satisfies the filter
// function. Returns -1 if no write is found.
func (rec *Recorder) LastIndex(filter func(Write) bool) int {
	for i := len(rec.Writes) - 1; i >= 0; i-- {
		if filter(rec.Writes[i]) {
			return i
		}
	}
	return -1
}

func (rec *Recorder) String() string {
	s := strings.Builder{}
	for i, w := range rec.Writes {
		if n, ok := rec.Waits[i]; ok {
			s.WriteString(fmt.Sprintf("wait %d scanlines\n", n))
		}
		s.WriteString(w.String())
		s.WriteString("\n")
	}
	if n, ok := rec.Waits[len(rec.Writes)]; ok {
		s.WriteString(fmt.Sprintf("wait %d scanlines\n", n))
	}
	return s.String()
}
