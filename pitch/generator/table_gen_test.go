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

package main

import (
	"strings"
	"testing"

	"github.com/jetsetilly/pokeycore/test"
)

func TestGenerate(t *testing.T) {
	s, err := generate()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(s, "// generated code - do not change"))
	test.ExpectSuccess(t, strings.Contains(s, "{0x40, 0x00}, // 0 0.2500x"))
	test.ExpectSuccess(t, strings.Contains(s, "{0x00, 0x01}, // 24 1.0000x"))
	test.ExpectSuccess(t, strings.Contains(s, "{0x7a, 0x08}, // 61 8.4766x"))
	test.ExpectEquality(t, strings.Count(s, "}, //"), 62)
}
