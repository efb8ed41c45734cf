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
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/pokeycore/environment"
	"github.com/jetsetilly/pokeycore/hardware/pokey"
	"github.com/jetsetilly/pokeycore/hardware/preferences"
	"github.com/jetsetilly/pokeycore/hardware/startup"
	"github.com/jetsetilly/pokeycore/logger"
	"github.com/jetsetilly/pokeycore/modalflag"
	"github.com/jetsetilly/pokeycore/pitch"
	"github.com/jetsetilly/pokeycore/pitchcheck"
	"github.com/jetsetilly/pokeycore/prefs"
	"github.com/jetsetilly/pokeycore/statsview"
	"github.com/jetsetilly/pokeycore/version"
	"github.com/jetsetilly/pokeycore/wavwriter"
)

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch the mode indicated by the arguments. returns the value to be used
// with os.Exit()
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("TABLE", "INIT", "VERIFY", "GENERATE", "NOTE", "RENDER", "CHECK", "PREFS", "VERSION")

	log := md.AddBool("log", false, "echo debugging log to stdout")
	prefsOverride := md.AddString("prefs", "", "override preferences (eg. \"pokey.playRate::4000; pokey.audctl::0x01\")")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *log {
		logger.SetEcho(output)
		defer logger.SetEcho(nil)
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		defer prefs.PopCommandLineStack()
	}

	sty := newStyles()

	switch md.Mode() {
	case "TABLE":
		err = table(md, sty)

	case "INIT":
		err = initialise(md, sty)

	case "VERIFY":
		err = verify(md)

	case "GENERATE":
		err = generate(md)

	case "NOTE":
		err = note(md, sty)

	case "RENDER":
		err = render(md)

	case "CHECK":
		err = check(md)

	case "PREFS":
		err = showPrefs(md)

	case "VERSION":
		fmt.Fprintln(output, version.Banner())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

func table(md *modalflag.Modes, sty styles) error {
	md.NewMode()

	bytes := md.AddBool("bytes", false, "show the stored byte pairs")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	fmt.Fprintln(md.Output, sty.heading.Render(" note name  mult  factor "))
	for n, m := range pitch.Stored() {
		nt := pitch.Note(n)

		f := sty.value
		if nt == pitch.UnityNote {
			f = sty.unity
		}

		s := fmt.Sprintf("%s %s $%04x %s", sty.note.Render(fmt.Sprintf("%4d", n)),
			fmt.Sprintf("%-5s", nt), uint16(m), f.Render(m.String()))
		if *bytes {
			s = fmt.Sprintf("%s  .byte $%02x,$%02x", s, m.Fraction(), m.Integer())
		}
		fmt.Fprintln(md.Output, s)
	}

	return nil
}

func initialise(md *modalflag.Modes, sty styles) error {
	md.NewMode()

	randomise := md.AddBool("random", false, "randomise the simulated chip at power-on")
	seed := md.AddInt("seed", 0, "seed for the power-on state. a non-zero value gives the same state every time")
	viz := md.AddString("memviz", "", "write a graph of the simulated chip to file (graphviz format)")
	step := md.AddInt("run", 0, "number of scanlines to run the chip after initialisation")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, uint64(*seed), nil)
	if err != nil {
		return err
	}
	env.Random.ZeroSeed = *seed != 0

	cfg, err := env.Config()
	if err != nil {
		return err
	}

	pk := pokey.NewPokey()
	if *randomise || *seed != 0 {
		pk.Randomise(env.Random)
	}

	rec := pokey.NewRecorder(pk)
	startup.Initialise(env, rec, cfg, &startup.State{})

	fmt.Fprintln(md.Output, sty.heading.Render(fmt.Sprintf(" %s ", cfg)))
	for _, l := range strings.Split(strings.TrimSpace(rec.String()), "\n") {
		if strings.HasPrefix(l, "wait") {
			fmt.Fprintln(md.Output, sty.silent.Render(l))
			continue
		}
		fmt.Fprintln(md.Output, sty.reg.Render(l))
	}

	if *step > 0 {
		pk.WaitScanlines(*step)
		fmt.Fprintf(md.Output, "IRQ pending after %d scanlines: %02x\n", *step, pk.IRQ())
	}

	fmt.Fprintln(md.Output, pk.State().String())

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, pk)
	}

	return nil
}

func verify(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	err = pitch.Verify()
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "stored table matches formula (%s)\n", pitch.EqualTemperament)
	return nil
}

func generate(md *modalflag.Modes) error {
	md.NewMode()

	octave := md.AddInt("octave", pitch.NotesPerOctave, "number of notes per octave")
	unity := md.AddInt("unity", int(pitch.UnityNote), "index of the unity note")
	size := md.AddInt("size", pitch.NumNotes, "number of notes in table")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	tab, err := pitch.Generate(pitch.Tuning{
		NotesPerOctave: *octave,
		UnityNote:      *unity,
		Size:           *size,
	})
	if err != nil {
		return err
	}

	for n, m := range tab {
		fmt.Fprintf(md.Output, "\t.byte $%02x,$%02x ; %d %s\n", m.Fraction(), m.Integer(), n, m)
	}

	return nil
}

func note(md *modalflag.Modes, sty styles) error {
	md.NewMode()

	audf := md.AddInt("audf", -1, "AUDF value of the instrument at its base note")

	md.AdditionalHelp("NOTE mode requires two arguments: the exported note and the instrument's base note")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("%s mode requires an export note and a base note", md)
	}

	export, err := strconv.Atoi(md.GetArg(0))
	if err != nil {
		return fmt.Errorf("export note: %w", err)
	}
	base, err := strconv.Atoi(md.GetArg(1))
	if err != nil {
		return fmt.Errorf("base note: %w", err)
	}

	m, n, clamped := pitch.Effective(pitch.Note(export), pitch.Note(base))
	fmt.Fprintf(md.Output, "table index %s (%s) multiplier $%04x %s\n", sty.note.Render(strconv.Itoa(int(n))), n, uint16(m), sty.value.Render(m.String()))
	if clamped {
		fmt.Fprintln(md.Output, sty.warning.Render(" note clamped to table range "))
	}

	if *audf >= 0 {
		if *audf > 255 {
			return fmt.Errorf("AUDF value out of range: %d", *audf)
		}
		d, ok := pitch.Divisor(uint8(*audf), m)
		fmt.Fprintf(md.Output, "AUDF $%02x -> $%02x\n", *audf, d)
		if !ok {
			fmt.Fprintln(md.Output, sty.warning.Render(" AUDF clamped to register range "))
		}
	}

	return nil
}

func render(md *modalflag.Modes) error {
	md.NewMode()

	audf := md.AddInt("audf", 100, "AUDF value of the instrument at its base note")
	base := md.AddInt("base", int(pitch.UnityNote), "base note of the instrument")
	from := md.AddInt("from", int(pitch.MinNote), "first note to audition")
	to := md.AddInt("to", int(pitch.MaxNote), "last note to audition")
	volume := md.AddInt("volume", 8, "volume of the instrument")
	poly := md.AddBool("poly4", false, "use the 4-bit polynomial distortion instead of a pure tone")
	length := md.AddString("length", "250ms", "length of each note")
	rate := md.AddInt("rate", wavwriter.SampleFreq, "sample rate of the WAV file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (available: %v)", statsview.Available()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("%s mode requires a WAV filename", md)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	if *audf < 0 || *audf > 255 {
		return fmt.Errorf("AUDF value out of range: %d", *audf)
	}

	dur, err := time.ParseDuration(*length)
	if err != nil {
		return err
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, 0, nil)
	if err != nil {
		return err
	}

	cfg, err := env.Config()
	if err != nil {
		return err
	}

	pk := pokey.NewPokey()
	startup.Initialise(env, pk, cfg, nil)

	aw, err := wavwriter.New(env, md.GetArg(0), *rate)
	if err != nil {
		return err
	}

	dist := pokey.DistPure
	if *poly {
		dist = pokey.DistPoly4
	}

	ins := wavwriter.Instrument{
		AUDF: uint8(*audf),
		Base: pitch.Note(*base),
		AUDC: pokey.NewAUDC(dist, uint8(*volume)),
	}

	var notes []pitch.Note
	for n := *from; n <= *to; n++ {
		notes = append(notes, pitch.Note(n))
	}

	err = aw.Audition(pk, pk, ins, notes, dur)
	if err != nil {
		return err
	}

	err = aw.EndMixing()
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%d notes written to %s (digest %s)\n", len(notes), md.GetArg(0), aw.Digest())
	return nil
}

func check(md *modalflag.Modes) error {
	md.NewMode()

	slow := md.AddBool("15khz", false, "channel was clocked by the 15kHz clock")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("%s mode requires a recording and an AUDF value", md)
	}

	audf, err := strconv.ParseUint(md.GetArg(1), 0, 8)
	if err != nil {
		return fmt.Errorf("AUDF value: %w", err)
	}

	rec, err := pitchcheck.Load(logger.Allow, md.GetArg(0))
	if err != nil {
		return err
	}

	clock := pokey.Clock64kHz
	if *slow {
		clock = pokey.Clock15kHz
	}

	r, err := pitchcheck.Check(rec, clock, uint8(audf))
	if err != nil {
		return err
	}

	fmt.Fprintln(md.Output, r)
	return nil
}

func showPrefs(md *modalflag.Modes) error {
	md.NewMode()

	save := md.AddBool("save", false, "save preferences to disk")
	defaults := md.AddBool("defaults", false, "revert to default values")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := preferences.NewPreferences()
	if err != nil {
		return err
	}

	if *defaults {
		prf.SetDefaults()
	}

	if *save {
		err = prf.Save()
		if err != nil {
			return err
		}
	}

	fmt.Fprint(md.Output, prf.String())
	return nil
}
