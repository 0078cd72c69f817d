// This file is part of Painting64.
//
// Painting64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Painting64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Painting64.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Chlorobite/B3313tools-Painting64/confirm"
	"github.com/Chlorobite/B3313tools-Painting64/digest"
	"github.com/Chlorobite/B3313tools-Painting64/logger"
	"github.com/Chlorobite/B3313tools-Painting64/modalflag"
	"github.com/Chlorobite/B3313tools-Painting64/painting"
	"github.com/Chlorobite/B3313tools-Painting64/paintingcfg"
	"github.com/Chlorobite/B3313tools-Painting64/paths"
	"github.com/Chlorobite/B3313tools-Painting64/preview"
	"github.com/Chlorobite/B3313tools-Painting64/prefs"
	"github.com/Chlorobite/B3313tools-Painting64/rom"
	"github.com/Chlorobite/B3313tools-Painting64/version"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

// console is where the user is talked to.
type console struct {
	output io.Writer
	input  io.Reader

	// answer confirmations with a single key press if the controlling
	// terminal can be put into cbreak mode
	keypress bool
}

func main() {
	c := console{
		output:   os.Stdout,
		input:    os.Stdin,
		keypress: true,
	}
	os.Exit(launch(c, os.Args[1:]))
}

// launch parses the command line and runs the selected mode. returns the
// value to use with os.Exit().
func launch(c console, args []string) int {
	md := &modalflag.Modes{Output: c.output}
	md.NewArgs(args)
	md.AddSubModes("WRITE", "DUMP", "LEVELS", "PREVIEW", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(c.output, "* error: %v\n", err)
		return exitParseError
	}

	pref, err := loadPreferences()
	if err != nil {
		fmt.Fprintf(c.output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "WRITE":
		err = write(md, c, pref)
	case "DUMP":
		err = dump(md, c, pref)
	case "LEVELS":
		err = levels(md, c)
	case "PREVIEW":
		err = draw(md, c, pref)
	case "VERSION":
		fmt.Fprintln(c.output, version.String())
	}

	// the echo is set by the -log flag of every mode
	logger.SetEcho(nil)

	if err != nil {
		fmt.Fprintf(c.output, "* error in %s mode: %v\n", md, err)
		return exitModeError
	}

	return exitOK
}

func loadPreferences() (*prefs.Preferences, error) {
	fn, err := paths.ResourcePath("", "preferences.ini")
	if err != nil {
		return nil, err
	}
	return prefs.NewPreferences(fn)
}

// setLog echoes the central log to the console if the -log flag was given.
func setLog(c console, log bool) {
	if log {
		logger.SetEcho(c.output)
	} else {
		logger.SetEcho(nil)
	}
}

// loadConfig reads the painting configuration file and commits every painting
// in it.
func loadConfig(filename string) (*painting.List, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	l := painting.NewList(painting.DefaultTemplate())
	if err := paintingcfg.Parse(f, l); err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "paintingcfg", "%d paintings in %s", l.Len(), filename)

	return l, nil
}

// romFilename returns the ROM file named on the command line. The user is
// asked for it if it was not given.
func romFilename(md *modalflag.Modes, c console) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return confirm.Line(c.output, c.input, "ROM file: ")
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

type yesReader struct{}

func (*yesReader) Read(p []byte) (n int, err error) {
	p[0] = 'y'
	return 1, nil
}

func write(md *modalflag.Modes, c console, pref *prefs.Preferences) error {
	md.NewMode()

	config := md.AddString("config", pref.Config.String(), "painting configuration file")
	answerYes := md.AddBool("yes", !pref.Confirm.Get().(bool), "do not ask before writing to the ROM")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	save := md.AddBool("save", false, "save -config and -yes as the new defaults")

	md.AdditionalHelp(
		`The paintings in the configuration file are written to the ROM file and the
painting pointer table is updated. If no ROM file is given then it will be
asked for.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLog(c, *log)

	if *save {
		if err := pref.Config.Set(*config); err != nil {
			return err
		}
		if err := pref.Confirm.Set(!*answerYes); err != nil {
			return err
		}
		if err := pref.Save(); err != nil {
			return err
		}
	}

	l, err := loadConfig(*config)
	if err != nil {
		return err
	}

	romFile, err := romFilename(md, c)
	if err != nil {
		return err
	}

	if err := rom.Exists(romFile); err != nil {
		return err
	}

	entries := l.Entries()
	if err := rom.ResolveFile(romFile, entries); err != nil {
		return err
	}

	for _, e := range entries {
		fmt.Fprintf(c.output, "%s\n", e)
	}
	fmt.Fprintf(c.output, "digest: %s\n", digest.Entries(entries).Hash())

	// use the terminal for confirmation unless the "yes" flag has been given
	var confirmation io.Reader
	if *answerYes {
		confirmation = &yesReader{}
	} else {
		confirmation = c.input
		if c.keypress {
			kp, err := confirm.NewKeypress()
			if err == nil {
				defer kp.Close()
				confirmation = kp
			} else {
				logger.Log(logger.Allow, "painting64", err)
			}
		}
	}

	ok, err := confirm.Confirm(c.output, confirmation, fmt.Sprintf("write %d paintings to %s? (y/n): ", len(entries), romFile))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(c.output, "nothing written")
		return nil
	}

	if err := rom.WriteFile(romFile, entries); err != nil {
		return err
	}

	fmt.Fprintf(c.output, "%d paintings written to %s\n", len(entries), romFile)

	return nil
}

func dump(md *modalflag.Modes, c console, pref *prefs.Preferences) error {
	md.NewMode()

	config := md.AddString("config", pref.Config.String(), "painting configuration file")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	md.AdditionalHelp(
		`The rendered paintings are printed as hex. If a ROM file is given then paintings
placed by level and area are resolved to their ROM address. Nothing is written.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLog(c, *log)

	l, err := loadConfig(*config)
	if err != nil {
		return err
	}

	entries := l.Entries()

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		if err := rom.ResolveFile(md.GetArg(0), entries); err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	for _, e := range entries {
		fmt.Fprintf(c.output, "%s (runtime %08x)\n", e, e.RuntimeAddress())
		e.Dump(c.output)
	}

	fmt.Fprintf(c.output, "pointer table at %08x\n", rom.PointerTableAddress)
	for i, e := range entries {
		fmt.Fprintf(c.output, "%3d: %08X\n", i, e.RuntimeAddress())
	}

	fmt.Fprintf(c.output, "digest: %s\n", digest.Entries(entries).Hash())

	return nil
}

func levels(md *modalflag.Modes, c console) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLog(c, *log)

	romFile, err := romFilename(md, c)
	if err != nil {
		return err
	}

	lt, err := rom.ReadLevelTableFile(romFile)
	if err != nil {
		return err
	}

	lv := lt.Levels()
	for _, l := range lv {
		fmt.Fprintln(c.output, l)
	}
	fmt.Fprintf(c.output, "%d levels\n", len(lv))

	return nil
}

func draw(md *modalflag.Modes, c console, pref *prefs.Preferences) error {
	md.NewMode()

	config := md.AddString("config", pref.Config.String(), "painting configuration file")
	width := md.AddInt("width", pref.PreviewWidth.Get().(int), "width of preview image")
	height := md.AddInt("height", pref.PreviewHeight.Get().(int), "height of preview image")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	save := md.AddBool("save", false, "save -config, -width and -height as the new defaults")

	md.AdditionalHelp(
		`A map of the painting positions is drawn to the image file. The format of the
image is PNG or WebP depending on the file extension. If no image file is given
then a unique PNG filename is used.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLog(c, *log)

	if *save {
		if err := pref.Config.Set(*config); err != nil {
			return err
		}
		if err := pref.PreviewWidth.Set(*width); err != nil {
			return err
		}
		if err := pref.PreviewHeight.Set(*height); err != nil {
			return err
		}
		if err := pref.Save(); err != nil {
			return err
		}
	}

	var imageFile string
	switch len(md.RemainingArgs()) {
	case 0:
		imageFile = paths.UniqueFilename("preview", *config, "png")
	case 1:
		imageFile = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	l, err := loadConfig(*config)
	if err != nil {
		return err
	}

	img, err := preview.Draw(l.Entries(), *width, *height)
	if err != nil {
		return err
	}

	if err := preview.Save(imageFile, img); err != nil {
		return err
	}

	fmt.Fprintf(c.output, "preview of %d paintings saved to %s\n", l.Len(), imageFile)

	return nil
}
