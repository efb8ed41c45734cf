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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/pokeycore/curated"
	"github.com/jetsetilly/pokeycore/prefs"
	"github.com/jetsetilly/pokeycore/test"
)

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestNumbers(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var i prefs.Int
	var f prefs.Float
	test.ExpectSuccess(t, dsk.Add("int", &i))
	test.ExpectSuccess(t, dsk.Add("float", &f))

	test.ExpectSuccess(t, i.Set("0x10"))
	test.ExpectEquality(t, i.Get().(int), 16)
	test.ExpectFailure(t, i.Set("sixteen"))
	test.ExpectFailure(t, i.Set(1.5))

	test.ExpectSuccess(t, f.Set(50.0))
	test.ExpectFailure(t, f.Set("fifty"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "float :: 50\nint :: 16\n")

	// change values and reload from disk
	test.ExpectSuccess(t, i.Set(1))
	test.ExpectSuccess(t, f.Set(1.0))
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, i.Get().(int), 16)
	test.ExpectEquality(t, f.Get().(float64), 50.0)
}

func TestDuplicateKey(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	var a, b prefs.Int
	test.ExpectSuccess(t, dsk.Add("a", &a))
	err = dsk.Add("a", &b)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))
}

func TestCommandLinePriority(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var i prefs.Int
	test.ExpectSuccess(t, dsk.Add("int", &i))
	test.ExpectSuccess(t, i.Set(1))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("int::2")
	defer prefs.PopCommandLineStack()

	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, i.Get().(int), 2)
}

func TestHooks(t *testing.T) {
	var i prefs.Int
	i.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})

	var post int
	i.SetHookPost(func(v prefs.Value) error {
		post = v.(int)
		return nil
	})

	test.ExpectSuccess(t, i.Set(10))
	test.ExpectEquality(t, post, 10)

	// pre hook vetoes the change
	test.ExpectFailure(t, i.Set(-1))
	test.ExpectEquality(t, i.Get().(int), 10)
}
