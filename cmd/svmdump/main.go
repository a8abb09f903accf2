// seehuhn.de/go/svm - a library for reading StarView metafiles
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Svmdump lists the actions in a StarView metafile.
//
// Usage:
//
//	svmdump [options] file.svm
//
// Each action is printed on one line, followed by a count of the actions
// of each type.  Actions inside embedded metafiles are indented.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/slices"
	"golang.org/x/term"

	"seehuhn.de/go/svm"
	"seehuhn.de/go/svm/dib"
	"seehuhn.de/go/svm/textenc"
)

func main() {
	verbose := flag.Bool("v", false, "show diagnostic messages")
	strict := flag.Bool("strict", false, "fail on inconsistent data")
	charSet := flag.Uint("charset", uint(textenc.UTF8), "numeric text encoding of the stream")
	pngDir := flag.String("png", "", "write the bitmaps as PNG files into this directory")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] file.svm\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	fd, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer fd.Close()

	opt := &svm.Options{
		CharSet: textenc.CharSet(*charSet),
		Logger:  logger,
		Strict:  *strict,
	}
	mtf, err := svm.Read(fd, opt)
	if err != nil {
		log.Fatal(err)
	}

	d := &dumper{
		width:  terminalWidth(),
		counts: make(map[svm.ActionType]int),
		pngDir: *pngDir,
	}
	box := mtf.PrefBox()
	fmt.Printf("size %s (%s), %.1fx%.1f pt, %d actions\n",
		mtf.PrefSize, mtf.PrefMapMode.Unit, box.URx-box.LLx, box.URy-box.LLy, mtf.Len())
	if mtf.UseCanvas {
		fmt.Println("uses EMF+ canvas")
	}
	err = d.dump(mtf, 0)
	if err != nil {
		log.Fatal(err)
	}
	d.histogram()
}

// terminalWidth returns the width of stdout, or 0 if stdout is not a
// terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}

type dumper struct {
	width  int
	counts map[svm.ActionType]int
	pngDir string
	nImg   int
}

func (d *dumper) dump(mtf *svm.Metafile, level int) error {
	indent := strings.Repeat("  ", level)
	for i, a := range mtf.Actions {
		d.counts[a.Type()]++

		line := fmt.Sprintf("%s%5d %-16s %s", indent, i, a.Type(), describe(a))
		if d.width > 0 && utf8.RuneCountInString(line) > d.width {
			line = string([]rune(line)[:d.width-1]) + "…"
		}
		fmt.Println(line)

		if d.pngDir != "" {
			for _, bm := range bitmaps(a) {
				err := d.writePNG(bm)
				if err != nil {
					return err
				}
			}
		}

		var inner *svm.Metafile
		switch a := a.(type) {
		case *svm.EPS:
			inner = a.Subst
		case *svm.FloatTransparent:
			inner = a.Content
		}
		if inner != nil {
			err := d.dump(inner, level+1)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *dumper) writePNG(bm *dib.Bitmap) error {
	img, err := bm.Image()
	if errors.Is(err, dib.ErrUnsupported) {
		log.Printf("skipping bitmap: %s", bm)
		return nil
	} else if err != nil {
		return err
	}

	d.nImg++
	name := filepath.Join(d.pngDir, fmt.Sprintf("bitmap%04d.png", d.nImg))
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	err = png.Encode(out, img)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func (d *dumper) histogram() {
	types := make([]svm.ActionType, 0, len(d.counts))
	for tp := range d.counts {
		types = append(types, tp)
	}
	slices.SortFunc(types, func(a, b svm.ActionType) int {
		if d.counts[a] != d.counts[b] {
			return d.counts[b] - d.counts[a]
		}
		return int(a) - int(b)
	})

	fmt.Println()
	for _, tp := range types {
		fmt.Printf("%7d %s\n", d.counts[tp], tp)
	}
}
