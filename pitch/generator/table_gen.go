//go:generate go run table_gen.go

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
	"fmt"
	"go/format"
	"os"
	"strings"

	"github.com/jetsetilly/pokeycore/pitch/temperament"
)

const generatedGoFile = "../table.go"

const leadingBoilerPlate = "// generated code - do not change\n\n" +
	"package pitch\n\n" +
	"// stored multipliers for the equal temperament tuning. each entry is a\n" +
	"// byte pair with the fraction byte first\n" +
	"var stored = [...][2]uint8{\n"

const trailingBoilerPlate = "}\n"

// the generator does not import the pitch package because the pitch package
// cannot be built without the file being generated
func generate() (string, error) {
	if !temperament.Fits(temperament.NumNotes, temperament.UnityNote, temperament.NotesPerOctave) {
		return "", fmt.Errorf("table does not fit in 16 bits")
	}

	s := strings.Builder{}
	s.WriteString(leadingBoilerPlate)
	for n := range temperament.NumNotes {
		v := uint16(temperament.Value(n, temperament.UnityNote, temperament.NotesPerOctave))
		s.WriteString(fmt.Sprintf("{0x%02x, 0x%02x}, // %d %.4fx\n", uint8(v), uint8(v>>8), n, float64(v)/256.0))
	}
	s.WriteString(trailingBoilerPlate)

	// format the generated code
	b, err := format.Source([]byte(s.String()))
	if err != nil {
		return "", fmt.Errorf("error formatting generated code (%s)", err)
	}

	return string(b), nil
}

func main() {
	output, err := generate()
	if err != nil {
		fmt.Printf("error during pitch table generation: %s\n", err)
		os.Exit(10)
	}

	f, err := os.Create(generatedGoFile)
	if err != nil {
		fmt.Printf("error during pitch table generation: %s\n", err)
		os.Exit(10)
	}
	defer f.Close()

	_, err = f.WriteString(output)
	if err != nil {
		fmt.Printf("error during pitch table generation: %s\n", err)
		os.Exit(10)
	}
}
